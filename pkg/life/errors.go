package life

import "errors"

var (
	// ErrEmptyInput is returned when there is nothing to build a grid from.
	ErrEmptyInput = errors.New("life: empty input")
	// ErrDimensionMismatch is returned for non-rectangular or non-positive dimensions.
	ErrDimensionMismatch = errors.New("life: dimension mismatch")
	// ErrOutOfBounds is returned by Get for coordinates outside the grid.
	ErrOutOfBounds = errors.New("life: coordinates out of bounds")
)
