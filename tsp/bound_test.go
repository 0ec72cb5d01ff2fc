package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/littletsp/tsp"
)

func TestEdgeSumEstimate(t *testing.T) {
	m := dense(t, [][]float64{
		{inf, 4, 7, 9},
		{6, inf, 3, 8},
		{5, 2, inf, 1},
		{inf, inf, inf, inf},
	})

	// Row minima: 4, 3, 1; the two smallest are 1 and 3.
	assert.Equal(t, 4.0, tsp.EdgeSumEstimate(m, []int{0, 1, 2}))
	// Row 3 has no finite entry and is skipped.
	assert.Equal(t, 4.0, tsp.EdgeSumEstimate(m, []int{0, 3}))
	assert.Zero(t, tsp.EdgeSumEstimate(m, []int{3}))
	assert.Zero(t, tsp.EdgeSumEstimate(m, nil))
}

func TestCombinedEstimate_TakesTheMinimum(t *testing.T) {
	disconnected := dense(t, [][]float64{
		{inf, 1, inf, inf},
		{1, inf, inf, inf},
		{inf, inf, inf, 4},
		{inf, inf, 4, inf},
	})
	cities := []int{0, 1, 2, 3}
	require.True(t, math.IsInf(tsp.MSTEstimate(disconnected, cities), 1))
	assert.Equal(t, 2.0, tsp.CombinedEstimate(disconnected, cities))

	path := dense(t, [][]float64{
		{inf, 1, 9},
		{1, inf, 2},
		{9, 2, inf},
	})
	// MST = 3, edge sum = 1+1 = 2.
	assert.Equal(t, 2.0, tsp.CombinedEstimate(path, []int{0, 1, 2}))
	assert.Zero(t, tsp.CombinedEstimate(path, nil))
}

func TestEdgeSumEstimate_ZeroOnReducedMatrix(t *testing.T) {
	reduced, _, err := tsp.Reduce(randomDense(t, 8, 3, false))
	require.NoError(t, err)
	assert.Zero(t, tsp.EdgeSumEstimate(reduced, []int{1, 2, 3, 4, 5, 6, 7}))
}
