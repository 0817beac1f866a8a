package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/agency"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/assignment"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/auth"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/performance"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Geofencing failures carry the computed distance
	var outOfRange *assignment.OutOfRangeError
	if errors.As(err, &outOfRange) {
		UnprocessableEntity(w, outOfRange.Error(), map[string]string{
			"distance_miles": fmt.Sprintf("%.2f", outOfRange.DistanceMiles),
			"travel_radius":  fmt.Sprintf("%.1f", outOfRange.RadiusMiles),
		})
		return
	}
	var tooFar *assignment.TooFarError
	if errors.As(err, &tooFar) {
		UnprocessableEntity(w, tooFar.Error(), map[string]string{
			"distance_miles": fmt.Sprintf("%.2f", tooFar.DistanceMiles),
			"max_miles":      fmt.Sprintf("%.1f", tooFar.MaxMiles),
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, auth.ErrAgencyNotFound):
		NotFound(w, "Agency not found")

	// Agency domain errors
	case errors.Is(err, agency.ErrAgencyNotFound):
		NotFound(w, "Agency not found")
	case errors.Is(err, agency.ErrNameAlreadyUsed):
		Conflict(w, "Agency name is already taken")
	case errors.Is(err, agency.ErrCodeGeneration):
		InternalServerError(w, "Failed to generate agency code")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrEmailAlreadyUsed):
		Conflict(w, "Email is already registered")
	case errors.Is(err, worker.ErrWorkerInactive):
		Unauthorized(w, err.Error())
	case errors.Is(err, worker.ErrSelfDeactivation):
		UnprocessableEntity(w, err.Error(), nil)
	case errors.Is(err, worker.ErrNoAgency):
		BadRequest(w, "Worker is not associated with an agency", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrNameTaken):
		Conflict(w, "A shift with this name already exists for that date")
	case errors.Is(err, shift.ErrCodeGeneration):
		InternalServerError(w, "Failed to generate shift code")
	case errors.Is(err, shift.ErrShiftFull):
		Conflict(w, "Shift has no available slots")
	case errors.Is(err, shift.ErrMissingField),
		errors.Is(err, shift.ErrPastDate),
		errors.Is(err, shift.ErrInvalidRange),
		errors.Is(err, shift.ErrDurationTooLong):
		UnprocessableEntity(w, err.Error(), nil)

	// Assignment domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, assignment.ErrAlreadyAssigned):
		Conflict(w, "Worker is already assigned to this shift")
	case errors.Is(err, assignment.ErrAlreadyBooked):
		Conflict(w, "You have already booked this shift")
	case errors.Is(err, assignment.ErrNotBooked):
		NotFound(w, "You have not booked this shift")
	case errors.Is(err, assignment.ErrCrossAgency):
		Forbidden(w, "Worker and shift belong to different agencies")
	case errors.Is(err, assignment.ErrStaffOnly):
		Forbidden(w, "Only agency staff can book shifts")
	case errors.Is(err, assignment.ErrNotPermitted):
		Forbidden(w, "You are not permitted to perform this action")
	case errors.Is(err, assignment.ErrLocationUnset):
		UnprocessableEntity(w, err.Error(), nil)
	case errors.Is(err, assignment.ErrShiftInFuture):
		UnprocessableEntity(w, err.Error(), nil)
	case errors.Is(err, assignment.ErrShiftAlreadyCompleted):
		Conflict(w, "Shift has already been completed")
	case errors.Is(err, assignment.ErrAlreadySignedOff):
		Conflict(w, "This assignment has already been signed off")
	case errors.Is(err, assignment.ErrInvalidSignature):
		UnprocessableEntity(w, err.Error(), nil)
	case errors.Is(err, assignment.ErrInvalidWorkRole):
		UnprocessableEntity(w, err.Error(), nil)
	case errors.Is(err, assignment.ErrInvalidAttendanceState):
		UnprocessableEntity(w, err.Error(), nil)

	// Performance domain errors
	case errors.Is(err, performance.ErrReviewNotFound):
		NotFound(w, "Performance review not found")
	case errors.Is(err, performance.ErrDuplicateReview):
		Conflict(w, "Worker already has a review for this shift")
	case errors.Is(err, performance.ErrNotAssigned):
		BadRequest(w, "Worker is not assigned to this shift", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
