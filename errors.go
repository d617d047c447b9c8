package hac

import "errors"

// Sentinel errors. Every error returned by this package for bad input wraps
// exactly one of these, so callers can test with errors.Is.
var (
	// ErrInvalidMatrixShape reports a matrix that is not square, not
	// symmetric, has a non-zero diagonal, or holds a negative or NaN entry.
	// It also covers a label list whose length differs from the matrix.
	ErrInvalidMatrixShape = errors.New("invalid matrix shape")

	// ErrInvalidClusterCount reports a requested cluster count outside
	// [1, n], or more clusters than labels.
	ErrInvalidClusterCount = errors.New("invalid cluster count")

	// ErrEmptyInput reports zero points.
	ErrEmptyInput = errors.New("empty input")

	// ErrLeafOutOfRange reports a leaf or dendrogram id outside the range
	// of the points it is being mapped onto.
	ErrLeafOutOfRange = errors.New("leaf out of range")
)
