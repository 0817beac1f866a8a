package assignment

import (
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

type AssignRequest struct {
	ShiftID  string `json:"-"`
	WorkerID string `json:"worker_id"`
	Role     string `json:"role"`
}

func (r *AssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UnassignRequest struct {
	ShiftID  string `json:"-"`
	WorkerID string `json:"worker_id"`
}

// CompleteShiftRequest carries a completion submission. WorkerID is empty
// when a worker completes their own shift; elevated actors set it to sign
// off on someone else's behalf.
type CompleteShiftRequest struct {
	ShiftID          string   `json:"-"`
	WorkerID         string   `json:"-"`
	SignatureDataURL *string  `json:"signature"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	AttendanceStatus *string  `json:"attendance_status"`
}

func (r *CompleteShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}
	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	ID               string   `json:"id"`
	ShiftID          string   `json:"shift_id"`
	WorkerID         string   `json:"worker_id"`
	WorkerName       *string  `json:"worker_name,omitempty"`
	Role             string   `json:"role"`
	Status           string   `json:"status"`
	AttendanceStatus *string  `json:"attendance_status,omitempty"`
	CompletionTime   *string  `json:"completion_time,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

func ToAssignmentResponse(a ShiftAssignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:         a.ID,
		ShiftID:    a.ShiftID,
		WorkerID:   a.WorkerID,
		WorkerName: a.WorkerName,
		Role:       a.Role,
		Status:     string(a.Status),
		Latitude:   a.Latitude,
		Longitude:  a.Longitude,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
	if a.AttendanceStatus != nil {
		s := string(*a.AttendanceStatus)
		resp.AttendanceStatus = &s
	}
	if a.CompletionTime != nil {
		t := a.CompletionTime.Format(time.RFC3339)
		resp.CompletionTime = &t
	}
	return resp
}

// BookingResponse is returned by booking operations; it pairs the created
// assignment with the distance that was checked against the travel radius.
type BookingResponse struct {
	Assignment    AssignmentResponse `json:"assignment"`
	DistanceMiles float64            `json:"distance_miles"`
}

// CompletionResponse reports the result of a completion submission,
// including whether the whole shift was promoted to completed.
type CompletionResponse struct {
	Assignment     AssignmentResponse `json:"assignment"`
	ShiftCompleted bool               `json:"shift_completed"`
}

type ListAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	TotalCount  int                  `json:"total_count"`
}
