package store

import "errors"

// Sentinel errors for the API boundary to translate into status codes.
var (
	// ErrValidation marks malformed input (empty firstname, missing ids).
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a reference to an entity that does not exist.
	ErrNotFound = errors.New("record not found")
)
