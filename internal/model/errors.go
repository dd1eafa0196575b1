package model

import "errors"

var (
	// ErrInvalidParameter reports a non-positive frequency or tenor, or any
	// other input that would make a schedule or formula undefined.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrScheduleMismatch reports two period series that do not share the
	// same period key set.
	ErrScheduleMismatch = errors.New("schedule mismatch")
)
