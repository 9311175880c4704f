package core

import "errors"

var (
	// ErrInvalidDimensions reports a grid constructed with a zero or
	// negative width or height.
	ErrInvalidDimensions = errors.New("core: grid dimensions must be positive")

	// ErrOutOfBounds reports a coordinate outside [0,W)x[0,H).
	ErrOutOfBounds = errors.New("core: coordinate out of bounds")
)
