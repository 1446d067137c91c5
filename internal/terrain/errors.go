package terrain

import "errors"

var (
	// ErrInvalidResolution indicates non-positive grid dimensions.
	ErrInvalidResolution = errors.New("terrain: resolution must have positive rows and columns")
)
