package board

import "errors"

var (
	// ErrInvalidDimension is returned when a grid is requested with rows or columns below 1.
	ErrInvalidDimension = errors.New("grid dimensions must be positive")
	// ErrOutOfRange is returned when a cell position lies outside the current grid.
	ErrOutOfRange = errors.New("cell position out of range")
)
