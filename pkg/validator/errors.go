package validator

import "errors"

// Usage errors. Failed rules never produce these; they are recorded in Errors instead.
var (
	// ErrValidationFailed is returned by Err when at least one rule failed.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownRule is returned when a rule identifier has no template.
	ErrUnknownRule = errors.New("unknown rule identifier")
)
