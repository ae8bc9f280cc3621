// Package matrix_test contains unit tests for the Bool storage and accessors.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cfpq/matrix"
	"github.com/stretchr/testify/require"
)

// mustBool builds an r×c matrix with the given true cells.
func mustBool(t testing.TB, r, c int, cells ...[2]int) *matrix.Bool {
	t.Helper()
	m, err := matrix.NewBool(r, c)
	require.NoError(t, err)
	for _, rc := range cells {
		require.NoError(t, m.Set(rc[0], rc[1], true))
	}

	return m
}

// TestNewBoolDimensions checks that zero sizes are legal and negative sizes are rejected.
func TestNewBoolDimensions(t *testing.T) {
	m, err := matrix.NewBool(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.True(t, m.IsZero())

	_, err = matrix.NewBool(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewBool(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfRange ensures At and Set report ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := mustBool(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, true), matrix.ErrOutOfRange)
	require.False(t, m.Has(5, 5))
}

// TestSetClearAcrossWords exercises columns that straddle the 64-bit word boundary.
func TestSetClearAcrossWords(t *testing.T) {
	m := mustBool(t, 3, 130, [2]int{0, 63}, [2]int{0, 64}, [2]int{2, 129})
	require.Equal(t, 3, m.Count())
	require.True(t, m.Has(0, 63))
	require.True(t, m.Has(0, 64))
	require.False(t, m.Has(1, 64))

	require.NoError(t, m.Set(0, 64, false))
	v, err := m.At(0, 64)
	require.NoError(t, err)
	require.False(t, v)
	require.Equal(t, [][2]int{{0, 63}, {2, 129}}, m.NonZero())
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := mustBool(t, 2, 2, [2]int{0, 0})
	c := m.Clone()
	require.True(t, m.Equal(c))

	require.NoError(t, c.Set(1, 1, true))
	require.False(t, m.Has(1, 1))
	require.False(t, m.Equal(c))
}

// TestIdentityAndString checks the identity layout and debug rendering.
func TestIdentityAndString(t *testing.T) {
	id, err := matrix.NewBoolIdentity(3)
	require.NoError(t, err)
	require.Equal(t, 3, id.Count())
	require.Equal(t, "[100]\n[010]\n[001]\n", id.String())
}

// TestEqualShapes verifies Equal distinguishes shapes and nil.
func TestEqualShapes(t *testing.T) {
	a := mustBool(t, 2, 3)
	b := mustBool(t, 3, 2)
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))

	var n *matrix.Bool
	require.True(t, n.Equal(nil))
}
