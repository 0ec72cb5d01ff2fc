package tsp

import "github.com/katalvlaran/littletsp/matrix"

// Test-only accessors for the private lower-bound estimators.

func MSTEstimate(m matrix.Matrix, cities []int) float64 {
	return prefetch(m, m.Rows()).mstEstimate(cities)
}

func EdgeSumEstimate(m matrix.Matrix, cities []int) float64 {
	return prefetch(m, m.Rows()).edgeSumEstimate(cities)
}

func CombinedEstimate(m matrix.Matrix, cities []int) float64 {
	return prefetch(m, m.Rows()).combinedEstimate(cities)
}
