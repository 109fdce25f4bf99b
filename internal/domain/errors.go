package domain

import "errors"

// Domain errors shared across the client, sync layer and handlers.
var (
	ErrInvalidItem     = errors.New("invalid language item")
	ErrInvalidExercise = errors.New("invalid guess exercise")
	ErrInvalidEvent    = errors.New("invalid calendar event")
	ErrEventNotFound   = errors.New("calendar event not found")
)
