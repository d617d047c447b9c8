package hac

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DistanceMetric computes the distance between two points of equal
// dimensionality. ClusterPoints uses it to build the distance matrix.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 { return floats.Distance(a, b, 2) }

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 { return floats.Distance(a, b, 1) }

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 { return floats.Distance(a, b, math.Inf(1)) }

// MinkowskiMetric computes the Minkowski distance parameterized by P.
// P must be >= 1; validateConfig rejects smaller values before any
// distances are computed.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b []float64) float64 { return floats.Distance(a, b, m.P) }

// CosineMetric computes 1 - cosine similarity, clamped at 0 so rounding
// never produces a negative distance. Two zero vectors give NaN, which
// matrix validation rejects.
type CosineMetric struct{}

func (CosineMetric) Distance(a, b []float64) float64 {
	d := 1.0 - floats.Dot(a, b)/(floats.Norm(a, 2)*floats.Norm(b, 2))
	if d < 0 {
		return 0
	}
	return d
}

// PairwiseDistances builds the distance matrix of points under metric,
// spreading rows across workers goroutines. Every point must have the same
// dimensionality.
func PairwiseDistances(points [][]float64, metric DistanceMetric, workers int) (*DistanceMatrix, error) {
	n := len(points)
	if n == 0 {
		return nil, fmt.Errorf("hac: %w: no points", ErrEmptyInput)
	}
	dims := len(points[0])
	for i, p := range points {
		if len(p) != dims {
			return nil, fmt.Errorf("hac: %w: point %d has %d dimensions, want %d", ErrInvalidMatrixShape, i, len(p), dims)
		}
	}
	if metric == nil {
		metric = EuclideanMetric{}
	}

	data := computePairwiseParallel(points, metric, workers)
	return newValidated(data, n)
}

// computePairwise fills the flat n×n matrix on the calling goroutine.
func computePairwise(points [][]float64, metric DistanceMetric) []float64 {
	n := len(points)
	result := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := metric.Distance(points[i], points[j])
			result[i*n+j] = d
			result[j*n+i] = d
		}
	}
	return result
}
