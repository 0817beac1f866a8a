package shift

import "errors"

// Shift domain errors
var (
	// Validation errors
	ErrMissingField    = errors.New("required shift field is missing")
	ErrPastDate        = errors.New("shift date cannot be in the past")
	ErrInvalidRange    = errors.New("invalid shift time range")
	ErrDurationTooLong = errors.New("shift duration cannot exceed 24 hours")

	// General errors
	ErrShiftNotFound  = errors.New("shift not found")
	ErrNameTaken      = errors.New("a shift with this name already exists for that date")
	ErrCodeGeneration = errors.New("failed to generate a unique shift code")
	ErrShiftFull      = errors.New("shift has no available slots")
)
