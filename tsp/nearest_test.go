package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/littletsp/tsp"
)

func TestNearestNeighbor_Fixture(t *testing.T) {
	m := dense(t, fixture4())
	res, err := tsp.NearestNeighbor(m)
	require.NoError(t, err)
	requireTour(t, m, res)
	assert.Equal(t, []int{0, 1, 3, 2, 0}, res.Tour)
	assert.Equal(t, 80.0, res.Cost)
	assert.Zero(t, res.Stats)
}

func TestNearestNeighbor_TiesPickLowestIndex(t *testing.T) {
	m := dense(t, [][]float64{
		{inf, 5, 5, 5},
		{1, inf, 2, 2},
		{1, 3, inf, 3},
		{1, 4, 4, inf},
	})
	res, err := tsp.NearestNeighbor(m)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
	assert.Equal(t, 5.0+2+3+1, res.Cost)
}

func TestNearestNeighbor_GreedyIsNotOptimal(t *testing.T) {
	// The cheap first hop forces two expensive edges afterwards.
	m := dense(t, [][]float64{
		{inf, 1, 2},
		{1, inf, 100},
		{100, 1, inf},
	})
	greedy, err := tsp.NearestNeighbor(m)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0}, greedy.Tour)
	assert.Equal(t, 201.0, greedy.Cost)

	exact, err := tsp.Little(m)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 0}, exact.Tour)
	assert.Equal(t, 4.0, exact.Cost)
}

func TestNearestNeighbor_Failures(t *testing.T) {
	// Dead end: from 1 only 0 is reachable.
	stuck := dense(t, [][]float64{
		{inf, 1, 5},
		{1, inf, inf},
		{1, 1, inf},
	})
	res, err := tsp.NearestNeighbor(stuck)
	require.NoError(t, err)
	requireNoTour(t, res)

	// Missing closing edge.
	noReturn := dense(t, [][]float64{
		{inf, 1, 5},
		{9, inf, 1},
		{inf, 9, inf},
	})
	res, err = tsp.NearestNeighbor(noReturn)
	require.NoError(t, err)
	requireNoTour(t, res)
}

func TestNearestNeighbor_SingleCityAndErrors(t *testing.T) {
	res, err := tsp.NearestNeighbor(dense(t, [][]float64{{inf}}))
	require.NoError(t, err)
	assert.Zero(t, res.Cost)
	assert.Equal(t, []int{0, 0}, res.Tour)

	_, err = tsp.NearestNeighbor(dense(t, [][]float64{{inf, 1, 2}, {1, inf, 3}}))
	require.ErrorIs(t, err, tsp.ErrNonSquare)
}
