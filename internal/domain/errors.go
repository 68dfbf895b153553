package domain

import "fmt"

// DirectionFieldError names the spot field whose direction range failed to
// parse. The wrapped error is a *geometry.InvalidDirectionError.
type DirectionFieldError struct {
	Field string // "swell" or "wind"
	Err   error
}

func (e *DirectionFieldError) Error() string {
	return fmt.Sprintf("parse %s direction: %v", e.Field, e.Err)
}

func (e *DirectionFieldError) Unwrap() error {
	return e.Err
}
