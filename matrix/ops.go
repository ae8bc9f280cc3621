// SPDX-License-Identifier: MIT

// Package matrix - Boolean semiring kernels.
//
// Contract:
//   - Operands are validated first (nil, shape); violations return sentinels.
//   - Results are fresh matrices unless the name says InPlace.
//   - Mul/Power accept Option values; WithWorkers(n>1) fans rows out via errgroup.

package matrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Or returns a ∨ b (element-wise). Shapes must match.
func Or(a, b *Bool) (*Bool, error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, fmt.Errorf("Or: %w", err)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] |= b.data[i]
	}

	return out, nil
}

// OrInPlace sets dst |= src and reports whether any cell of dst changed.
func OrInPlace(dst, src *Bool) (bool, error) {
	if err := validateSameShape(dst, src); err != nil {
		return false, fmt.Errorf("OrInPlace: %w", err)
	}
	changed := false
	for i, w := range src.data {
		if nw := dst.data[i] | w; nw != dst.data[i] {
			dst.data[i] = nw
			changed = true
		}
	}

	return changed, nil
}

// AndNot returns a ∧ ¬b (cells of a absent from b).
func AndNot(a, b *Bool) (*Bool, error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, fmt.Errorf("AndNot: %w", err)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] &^= b.data[i]
	}

	return out, nil
}

// Mul returns the boolean product a·b: out[i][j] = ∨_k a[i][k] ∧ b[k][j].
//
// Algorithm: for every set bit k in row i of a, OR row k of b into row i of
// out. Rows are independent, so with WithWorkers(n>1) and enough rows the
// row range is split into chunks processed by an errgroup limited to n.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(nnz(a)·⌈b.Cols/64⌉).
func Mul(a, b *Bool, opts ...Option) (*Bool, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out, err := NewBool(a.r, b.c)
	if err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)
	if o.workers <= 1 || a.r < parallelRowThreshold {
		mulRows(a, b, out, 0, a.r)

		return out, nil
	}

	chunk := (a.r + o.workers - 1) / o.workers
	var g errgroup.Group
	g.SetLimit(o.workers)
	for lo := 0; lo < a.r; lo += chunk {
		lo, hi := lo, min(lo+chunk, a.r)
		g.Go(func() error {
			mulRows(a, b, out, lo, hi)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// mulRows computes rows [lo,hi) of out = a·b.
func mulRows(a, b, out *Bool, lo, hi int) {
	for i := lo; i < hi; i++ {
		dst := out.row(i)
		for wi, w := range a.row(i) {
			for w != 0 {
				k := wi*wordBits + trailingZeros(w)
				w &= w - 1
				for x, bw := range b.row(k) {
					dst[x] |= bw
				}
			}
		}
	}
}

// Kron returns the Kronecker product a ⊗ b of shape (a.r·b.r)×(a.c·b.c):
// out[i·b.r+k][j·b.c+l] = a[i][j] ∧ b[k][l].
func Kron(a, b *Bool) (*Bool, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, fmt.Errorf("Kron: %w", err)
	}
	out, err := NewBool(a.r*b.r, a.c*b.c)
	if err != nil {
		return nil, err
	}
	if a.IsZero() || b.IsZero() {
		return out, nil
	}
	bCells := b.NonZero()
	a.Each(func(i, j int) {
		for _, kl := range bCells {
			out.set(i*b.r+kl[0], j*b.c+kl[1])
		}
	})

	return out, nil
}

// Power returns m^k for a square m by repeated squaring; m^0 is the identity.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (k < 0).
func Power(m *Bool, k int, opts ...Option) (*Bool, error) {
	if err := validateSquare(m); err != nil {
		return nil, fmt.Errorf("Power: %w", err)
	}
	if k < 0 {
		return nil, fmt.Errorf("Power: exponent %d: %w", k, ErrInvalidDimensions)
	}
	result, err := NewBoolIdentity(m.r)
	if err != nil {
		return nil, err
	}
	base := m.Clone()
	for k > 0 {
		if k&1 == 1 {
			if result, err = Mul(result, base, opts...); err != nil {
				return nil, err
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(base, base, opts...); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// Closure returns the reflexive-transitive closure (m ∨ I)^n of a square m,
// computed by squaring until a fixpoint (at most ⌈log2 n⌉ squarings).
func Closure(m *Bool, opts ...Option) (*Bool, error) {
	if err := validateSquare(m); err != nil {
		return nil, fmt.Errorf("Closure: %w", err)
	}
	id, err := NewBoolIdentity(m.r)
	if err != nil {
		return nil, err
	}
	cur, err := Or(m, id)
	if err != nil {
		return nil, err
	}
	for span := 1; span < m.r; span *= 2 {
		next, err := Mul(cur, cur, opts...)
		if err != nil {
			return nil, err
		}
		if next.Equal(cur) {
			break
		}
		cur = next
	}

	return cur, nil
}
