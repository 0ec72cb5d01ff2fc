package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/littletsp/matrix"
)

func TestNewDense_BadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSetBounds(t *testing.T) {
	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, d.Set(1, 0, 7))
	v, err := d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = d.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestNewCostMatrix_DiagonalIsInf(t *testing.T) {
	d, err := matrix.NewCostMatrix(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := d.At(i, j)
			if i == j {
				assert.True(t, math.IsInf(v, 1), "diagonal (%d,%d)", i, j)
			} else {
				assert.Zero(t, v)
			}
		}
	}
}

func TestDense_CloneIsIndependent(t *testing.T) {
	d, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := d.Clone()
	require.NoError(t, c.Set(0, 0, 99))

	v, _ := d.At(0, 0)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, d.ToRows())
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestValidateCosts(t *testing.T) {
	inf := math.Inf(1)

	n, err := matrix.ValidateCosts(mustRows(t, [][]float64{{inf, 1}, {inf, inf}}))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = matrix.ValidateCosts(mustRows(t, [][]float64{{inf, -1}, {1, inf}}))
	require.ErrorIs(t, err, matrix.ErrNegativeCost)

	_, err = matrix.ValidateCosts(mustRows(t, [][]float64{{inf, math.NaN()}, {1, inf}}))
	require.ErrorIs(t, err, matrix.ErrNegativeCost)

	_, err = matrix.ValidateSquare(mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.ValidateSquare(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilDense *matrix.Dense
	_, err = matrix.ValidateSquare(nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return d
}
