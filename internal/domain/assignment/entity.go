package assignment

import "time"

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

type AttendanceStatus string

const (
	AttendanceAttended AttendanceStatus = "attended"
	AttendanceLate     AttendanceStatus = "late"
	AttendanceNoShow   AttendanceStatus = "no_show"
)

var ValidAttendanceStatuses = []string{
	string(AttendanceAttended),
	string(AttendanceLate),
	string(AttendanceNoShow),
}

// ShiftAssignment links a worker to a shift. At most one row exists per
// (worker, shift) pair, enforced by a database unique constraint.
type ShiftAssignment struct {
	ID       string
	ShiftID  string
	WorkerID string
	Role     string
	Status   Status

	AttendanceStatus *AttendanceStatus

	// Completion fields, set when the worker's participation in the shift
	// is signed off.
	CompletionTime *time.Time
	Latitude       *float64
	Longitude      *float64
	SignaturePath  *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated by repository joins.
	WorkerName  *string
	WorkerEmail *string
	ShiftName   *string
}

// IsConfirmed reports whether the assignment counts against shift capacity.
func (a *ShiftAssignment) IsConfirmed() bool {
	return a.Status == StatusConfirmed
}

// IsCompleted reports whether this assignment has been signed off.
func (a *ShiftAssignment) IsCompleted() bool {
	return a.CompletionTime != nil
}
