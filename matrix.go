package hac

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix is a validated n×n pairwise distance matrix: symmetric,
// zero on the diagonal, no negative or NaN entries. +Inf is allowed and
// means the two points are never joined at a finite distance.
//
// Values are stored flat in row-major order, data[i*n+j].
type DistanceMatrix struct {
	data []float64
	n    int
}

// NewDistanceMatrix copies rows into a DistanceMatrix and validates it.
func NewDistanceMatrix(rows [][]float64) (*DistanceMatrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("hac: %w: distance matrix has no rows", ErrEmptyInput)
	}
	data := make([]float64, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("hac: %w: row %d has %d columns, want %d", ErrInvalidMatrixShape, i, len(row), n)
		}
		copy(data[i*n:], row)
	}
	return newValidated(data, n)
}

// FromFlat wraps a flat row-major matrix of length n*n. data is copied.
func FromFlat(data []float64, n int) (*DistanceMatrix, error) {
	if n == 0 {
		return nil, fmt.Errorf("hac: %w: distance matrix has no rows", ErrEmptyInput)
	}
	if n < 0 || len(data) != n*n {
		return nil, fmt.Errorf("hac: %w: data length %d does not match n*n (n=%d)", ErrInvalidMatrixShape, len(data), n)
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return newValidated(buf, n)
}

// FromMatrix copies any gonum matrix, such as *mat.Dense or *mat.SymDense,
// into a DistanceMatrix.
func FromMatrix(m mat.Matrix) (*DistanceMatrix, error) {
	r, c := m.Dims()
	if r == 0 {
		return nil, fmt.Errorf("hac: %w: distance matrix has no rows", ErrEmptyInput)
	}
	if r != c {
		return nil, fmt.Errorf("hac: %w: matrix is %d×%d", ErrInvalidMatrixShape, r, c)
	}
	data := make([]float64, r*r)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			data[i*r+j] = m.At(i, j)
		}
	}
	return newValidated(data, r)
}

func newValidated(data []float64, n int) (*DistanceMatrix, error) {
	if err := validateDistances(data, n); err != nil {
		return nil, err
	}
	return &DistanceMatrix{data: data, n: n}, nil
}

// validateDistances checks the flat n×n matrix and reports the first
// offending position.
func validateDistances(data []float64, n int) error {
	for i := 0; i < n; i++ {
		if d := data[i*n+i]; d != 0 {
			return fmt.Errorf("hac: %w: diagonal (%d,%d) is %g, want 0", ErrInvalidMatrixShape, i, i, d)
		}
		for j := i + 1; j < n; j++ {
			a, b := data[i*n+j], data[j*n+i]
			if math.IsNaN(a) || math.IsNaN(b) {
				return fmt.Errorf("hac: %w: NaN at (%d,%d)", ErrInvalidMatrixShape, i, j)
			}
			if a < 0 {
				return fmt.Errorf("hac: %w: negative distance %g at (%d,%d)", ErrInvalidMatrixShape, a, i, j)
			}
			if a != b {
				return fmt.Errorf("hac: %w: matrix not symmetric at (%d,%d): %g != %g", ErrInvalidMatrixShape, i, j, a, b)
			}
		}
	}
	return nil
}

// N returns the number of points.
func (d *DistanceMatrix) N() int { return d.n }

// At returns the distance between points i and j.
func (d *DistanceMatrix) At(i, j int) float64 { return d.data[i*d.n+j] }

// SymDense returns a gonum copy of the matrix.
func (d *DistanceMatrix) SymDense() *mat.SymDense {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)
	return mat.NewSymDense(d.n, buf)
}
