package bridge

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTarget is returned by New when no callback target is given.
	ErrNilTarget = errors.New("bridge: nil notification target")

	// ErrClosed is returned for deliveries after Close.
	ErrClosed = errors.New("bridge: closed")

	// ErrUnsupportedMeasurement is returned for range data of a
	// measurement type without an encoder.
	ErrUnsupportedMeasurement = errors.New("bridge: unsupported measurement type")
)

// InteropError is a failure crossing into the host runtime: a class or
// method that could not be resolved, an argument that could not be
// converted, or a callback that threw.
type InteropError struct {
	Method string
	Class  string
	Err    error
}

func (e *InteropError) Error() string {
	if e.Class != "" {
		return fmt.Sprintf("bridge: %s (%s): %v", e.Method, e.Class, e.Err)
	}
	return fmt.Sprintf("bridge: %s: %v", e.Method, e.Err)
}

func (e *InteropError) Unwrap() error {
	return e.Err
}
