package assignment

import (
	"errors"
	"fmt"
)

// Assignment domain errors
var (
	// Assignment and booking errors
	ErrAssignmentNotFound = errors.New("shift assignment not found")
	ErrAlreadyAssigned    = errors.New("worker is already assigned to this shift")
	ErrAlreadyBooked      = errors.New("you have already booked this shift")
	ErrNotBooked          = errors.New("you have not booked this shift")
	ErrCrossAgency        = errors.New("worker and shift belong to different agencies")
	ErrStaffOnly          = errors.New("only agency staff can book shifts")
	ErrLocationUnset      = errors.New("booking requires both your location and the shift location to be set")
	ErrInvalidWorkRole    = errors.New("invalid work role for assignment")

	// Completion errors
	ErrShiftInFuture          = errors.New("cannot complete a shift before its date")
	ErrNotPermitted           = errors.New("you are not permitted to perform this action")
	ErrShiftAlreadyCompleted  = errors.New("shift has already been completed")
	ErrAlreadySignedOff       = errors.New("this assignment has already been signed off")
	ErrInvalidSignature       = errors.New("signature payload is not a valid base64 image data URL")
	ErrInvalidAttendanceState = errors.New("invalid attendance status")
)

// OutOfRangeError is returned when a worker books a shift outside their
// travel radius. It carries the computed distance so callers can show it.
type OutOfRangeError struct {
	DistanceMiles float64
	RadiusMiles   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf(
		"shift is %.2f miles away, outside your %.1f mile travel radius",
		e.DistanceMiles, e.RadiusMiles,
	)
}

// TooFarError is returned when a worker tries to complete a shift from too
// far away from its location.
type TooFarError struct {
	DistanceMiles float64
	MaxMiles      float64
}

func (e *TooFarError) Error() string {
	return fmt.Sprintf(
		"you are %.2f miles from the shift location, completion requires being within %.1f miles",
		e.DistanceMiles, e.MaxMiles,
	)
}
