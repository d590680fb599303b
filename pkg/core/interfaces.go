package core

import "errors"

// Logger interface for raymarcher logging
type Logger interface {
	Printf(format string, args ...interface{})
}

var (
	// ErrInvalidParameter is returned when a shape, operator or render parameter is out of range
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNonFinite is returned when shading produces a NaN or infinite color
	ErrNonFinite = errors.New("non-finite color")
)
