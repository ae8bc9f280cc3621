// SPDX-License-Identifier: MIT

// Package matrix - Bool storage (row-major bit words) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly bit buffer with the explicit offset formula
//     i*words + j/64, bit j%64.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep the per-row word slice reachable for fast kernels (row()).

package matrix

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"

	wordBits = 64
)

// boolErrorf wraps an error with a uniform Bool context and callsite indices.
func boolErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Bool.%s(%d,%d): %w", method, row, col, err)
}

// Bool is a rows×cols boolean matrix.
//   - r,c hold dimensions (zero is legal: automata may have no states).
//   - words is the number of uint64 words per row (⌈c/64⌉).
//   - data holds r*words words in row-major order.
type Bool struct {
	r, c  int
	words int
	data  []uint64
}

var _ fmt.Stringer = (*Bool)(nil)

// NewBool creates an r×c all-false matrix.
//
// Errors:
//   - ErrInvalidDimensions if rows or cols is negative.
//
// Complexity: Time O(r·⌈c/64⌉), Space O(r·⌈c/64⌉).
func NewBool(rows, cols int) (*Bool, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	words := (cols + wordBits - 1) / wordBits

	return &Bool{r: rows, c: cols, words: words, data: make([]uint64, rows*words)}, nil
}

// NewBoolIdentity returns the n×n identity (true on the diagonal only).
func NewBoolIdentity(n int) (*Bool, error) {
	m, err := NewBool(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.set(i, i)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Bool) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Bool) Cols() int { return m.c }

// At reports the cell (row, col).
// Errors: ErrOutOfRange (wrapped with coordinates).
func (m *Bool) At(row, col int) (bool, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return false, boolErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.get(row, col), nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange (wrapped with coordinates).
func (m *Bool) Set(row, col int, v bool) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return boolErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if v {
		m.set(row, col)
	} else {
		m.data[row*m.words+col/wordBits] &^= 1 << uint(col%wordBits)
	}

	return nil
}

// Has is the panic-free shorthand for At that reports false outside bounds.
func (m *Bool) Has(row, col int) bool {
	if m == nil || row < 0 || row >= m.r || col < 0 || col >= m.c {
		return false
	}

	return m.get(row, col)
}

// Clone returns a deep copy.
func (m *Bool) Clone() *Bool {
	data := make([]uint64, len(m.data))
	copy(data, m.data)

	return &Bool{r: m.r, c: m.c, words: m.words, data: data}
}

// Equal reports whether both matrices have the same shape and cells.
func (m *Bool) Equal(o *Bool) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Count returns the number of true cells.
func (m *Bool) Count() int {
	n := 0
	for _, w := range m.data {
		n += bits.OnesCount64(w)
	}

	return n
}

// IsZero reports whether no cell is set.
func (m *Bool) IsZero() bool {
	for _, w := range m.data {
		if w != 0 {
			return false
		}
	}

	return true
}

// Each calls fn for every true cell in row-major order.
func (m *Bool) Each(fn func(row, col int)) {
	for i := 0; i < m.r; i++ {
		row := m.row(i)
		for wi, w := range row {
			for w != 0 {
				b := bits.TrailingZeros64(w)
				fn(i, wi*wordBits+b)
				w &= w - 1
			}
		}
	}
}

// NonZero returns the coordinates of all true cells in row-major order.
func (m *Bool) NonZero() [][2]int {
	out := make([][2]int, 0, m.Count())
	m.Each(func(i, j int) { out = append(out, [2]int{i, j}) })

	return out
}

// String renders rows of 0/1 for debugging.
func (m *Bool) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if m.get(i, j) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// row exposes the word slice of row i (no copy).
func (m *Bool) row(i int) []uint64 {
	return m.data[i*m.words : (i+1)*m.words]
}

func (m *Bool) get(i, j int) bool {
	return m.data[i*m.words+j/wordBits]&(1<<uint(j%wordBits)) != 0
}

func (m *Bool) set(i, j int) {
	m.data[i*m.words+j/wordBits] |= 1 << uint(j%wordBits)
}
