package domain

import "errors"

// Sentinel errors shared across persistence and transport layers.
var (
	// ErrRunNotFound is returned when a generation run does not exist.
	ErrRunNotFound = errors.New("generation run not found")

	// ErrKindNotFound is returned when an artifact record references a
	// base kind that is missing from the kind table.
	ErrKindNotFound = errors.New("base kind not found")
)
