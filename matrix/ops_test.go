package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cfpq/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomBool fills an r×c matrix with density p from a seeded source.
func randomBool(t testing.TB, r, c int, p float64, seed int64) *matrix.Bool {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustBool(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Float64() < p {
				require.NoError(t, m.Set(i, j, true))
			}
		}
	}

	return m
}

// naiveMul is the triple-loop reference product.
func naiveMul(a, b *matrix.Bool) [][2]int {
	var out [][2]int
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			for k := 0; k < a.Cols(); k++ {
				if a.Has(i, k) && b.Has(k, j) {
					out = append(out, [2]int{i, j})
					break
				}
			}
		}
	}

	return out
}

func TestOrAndNot(t *testing.T) {
	a := mustBool(t, 2, 2, [2]int{0, 0}, [2]int{0, 1})
	b := mustBool(t, 2, 2, [2]int{0, 1}, [2]int{1, 1})

	or, err := matrix.Or(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 1}}, or.NonZero())

	diff, err := matrix.AndNot(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 0}}, diff.NonZero())

	_, err = matrix.Or(a, mustBool(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AndNot(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestOrInPlaceReportsChange(t *testing.T) {
	dst := mustBool(t, 2, 2, [2]int{0, 0})
	src := mustBool(t, 2, 2, [2]int{0, 0})

	changed, err := matrix.OrInPlace(dst, src)
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, src.Set(1, 0, true))
	changed, err = matrix.OrInPlace(dst, src)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, dst.Has(1, 0))
}

func TestMulMatchesNaive(t *testing.T) {
	a := randomBool(t, 70, 90, 0.05, 1)
	b := randomBool(t, 90, 65, 0.05, 2)

	seq, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, naiveMul(a, b), nonNil(seq.NonZero()))

	par, err := matrix.Mul(a, b, matrix.WithWorkers(4))
	require.NoError(t, err)
	assert.True(t, seq.Equal(par), "parallel product must equal sequential product")

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestKron(t *testing.T) {
	a := mustBool(t, 2, 2, [2]int{0, 1})
	b := mustBool(t, 2, 2, [2]int{1, 0}, [2]int{1, 1})

	k, err := matrix.Kron(a, b)
	require.NoError(t, err)
	require.Equal(t, 4, k.Rows())
	require.Equal(t, 4, k.Cols())
	// a[0][1] places b in block (0,1): rows 0..1, cols 2..3
	assert.Equal(t, [][2]int{{1, 2}, {1, 3}}, k.NonZero())

	empty, err := matrix.Kron(mustBool(t, 0, 0), b)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
}

func TestPowerAndClosure(t *testing.T) {
	// chain 0→1→2→3
	m := mustBool(t, 4, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})

	p0, err := matrix.Power(m, 0)
	require.NoError(t, err)
	id, _ := matrix.NewBoolIdentity(4)
	assert.True(t, p0.Equal(id))

	p3, err := matrix.Power(m, 3)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 3}}, p3.NonZero())

	cl, err := matrix.Closure(m)
	require.NoError(t, err)
	assert.Equal(t, 10, cl.Count()) // 4 reflexive + 6 forward pairs
	assert.True(t, cl.Has(0, 3))
	assert.False(t, cl.Has(3, 0))

	_, err = matrix.Power(mustBool(t, 2, 3), 2)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Power(m, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestWithWorkersPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithWorkers(0) })
}

func nonNil(xs [][2]int) [][2]int {
	if len(xs) == 0 {
		return nil
	}

	return xs
}
