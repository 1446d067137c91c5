package render

import "errors"

var (
	// ErrInvalidConfiguration indicates an out-of-range Config field.
	ErrInvalidConfiguration = errors.New("render: invalid configuration")
	// ErrUnknownMode indicates a visualization mode outside the fixed set.
	ErrUnknownMode = errors.New("render: unknown visualization mode")
)
