// SPDX-License-Identifier: MIT

// Package matrix - operand validators shared by every kernel.

package matrix

import "math/bits"

func validateNotNil(ms ...*Bool) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

func validateSameShape(a, b *Bool) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

func validateSquare(m *Bool) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}

func trailingZeros(w uint64) int { return bits.TrailingZeros64(w) }
