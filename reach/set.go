// SPDX-License-Identifier: MIT

package reach

import (
	"fmt"
	"sort"
	"strings"
)

// Pair is one (start, end) answer.
type Pair struct {
	Start int
	End   int
}

// String renders (start,end).
func (p Pair) String() string { return fmt.Sprintf("(%d,%d)", p.Start, p.End) }

// Set is a set of pairs. The zero value is not usable; use NewSet.
type Set struct {
	m map[Pair]struct{}
}

// NewSet returns a set holding ps.
func NewSet(ps ...Pair) *Set {
	s := &Set{m: make(map[Pair]struct{}, len(ps))}
	for _, p := range ps {
		s.m[p] = struct{}{}
	}

	return s
}

// Add inserts p and reports whether it was new.
func (s *Set) Add(p Pair) bool {
	if _, ok := s.m[p]; ok {
		return false
	}
	s.m[p] = struct{}{}

	return true
}

// Contains reports membership.
func (s *Set) Contains(p Pair) bool {
	_, ok := s.m[p]

	return ok
}

// Len returns the number of pairs.
func (s *Set) Len() int { return len(s.m) }

// Sorted returns the pairs ordered by Start, then End.
func (s *Set) Sorted() []Pair {
	out := make([]Pair, 0, len(s.m))
	for p := range s.m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})

	return out
}

// Equal reports whether both sets hold the same pairs.
func (s *Set) Equal(o *Set) bool {
	if s.Len() != o.Len() {
		return false
	}
	for p := range s.m {
		if !o.Contains(p) {
			return false
		}
	}

	return true
}

// Diff returns pairs of s missing from o.
func (s *Set) Diff(o *Set) []Pair {
	var out []Pair
	for _, p := range s.Sorted() {
		if !o.Contains(p) {
			out = append(out, p)
		}
	}

	return out
}

// String renders {(a,b) (c,d)} in sorted order.
func (s *Set) String() string {
	parts := make([]string, 0, s.Len())
	for _, p := range s.Sorted() {
		parts = append(parts, p.String())
	}

	return "{" + strings.Join(parts, " ") + "}"
}
