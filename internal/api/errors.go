package api

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch marks responses that parsed as JSON but do not match the
// expected shape. Never coerced into a usable value.
var ErrShapeMismatch = errors.New("response shape mismatch")

// StatusError is returned for a non-success HTTP status, or for a success
// status that is not the specific code an operation requires (201 for
// create, 204 for delete).
type StatusError struct {
	Op     string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
}

// ShapeError wraps the validation failure for a malformed response body
type ShapeError struct {
	Op    string
	Cause error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrShapeMismatch, e.Cause)
}

func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
