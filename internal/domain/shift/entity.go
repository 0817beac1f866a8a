package shift

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

var ValidStatuses = []string{
	string(StatusPending),
	string(StatusOpen),
	string(StatusClosed),
	string(StatusCompleted),
	string(StatusCanceled),
}

type Type string

const (
	TypeRegular   Type = "regular"
	TypeOvertime  Type = "overtime"
	TypeHoliday   Type = "holiday"
	TypeEmergency Type = "emergency"
)

var ValidTypes = []string{
	string(TypeRegular),
	string(TypeOvertime),
	string(TypeHoliday),
	string(TypeEmergency),
}

// Work roles a shift can call for. Assignments reuse the same vocabulary.
var ValidWorkRoles = []string{
	"Staff",
	"Team Leader",
	"Supervisor",
	"Cleaner",
	"Security",
}

const DefaultWorkRole = "Staff"

// Shifts longer than this are considered data entry errors.
const MaxDurationHours = 24.0

type Shift struct {
	ID       string
	AgencyID string
	Name     string
	Code     string

	// ShiftDate and EndDate carry calendar dates at midnight UTC.
	// StartTime and EndTime carry a time of day on an arbitrary date.
	ShiftDate time.Time
	EndDate   time.Time
	StartTime time.Time
	EndTime   time.Time

	// IsOvernight marks shifts that intentionally cross midnight, so an
	// end time at or before the start time rolls to the next day instead
	// of being rejected.
	IsOvernight   bool
	DurationHours float64

	ShiftRole  string
	ShiftType  Type
	Status     Status
	Capacity   int
	HourlyRate *float64

	Address   *string
	Latitude  *float64
	Longitude *float64

	Notes *string

	IsCompleted    bool
	CompletionTime *time.Time
	SignaturePath  *string

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated by repository joins, not stored on the shifts table.
	ConfirmedCount int
	AgencyName     *string
}

// StartsAt combines the shift date with the start time of day.
func (s *Shift) StartsAt() time.Time {
	return combine(s.ShiftDate, s.StartTime)
}

// EndsAt combines the end date with the end time of day, rolling overnight
// shifts to the following day.
func (s *Shift) EndsAt() time.Time {
	end := combine(s.EndDate, s.EndTime)
	if s.IsOvernight && !end.After(s.StartsAt()) {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

// AvailableSlots returns how many confirmed assignments the shift can still
// take. Never negative.
func (s *Shift) AvailableSlots() int {
	slots := s.Capacity - s.ConfirmedCount
	if slots < 0 {
		return 0
	}
	return slots
}

// IsFull reports whether every slot is taken by a confirmed assignment.
func (s *Shift) IsFull() bool {
	return s.AvailableSlots() <= 0
}

// HasLocation reports whether the shift has both coordinates set.
func (s *Shift) HasLocation() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// Validate checks the shift's temporal fields and caches the resulting
// duration in DurationHours. Past shift dates are rejected unless
// skipPastDateCheck is set, which update paths use so historical shifts
// can still be saved.
func (s *Shift) Validate(skipPastDateCheck bool) error {
	if s.ShiftDate.IsZero() {
		return fmt.Errorf("%w: shift_date", ErrMissingField)
	}
	if s.EndDate.IsZero() {
		return fmt.Errorf("%w: end_date", ErrMissingField)
	}
	if s.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time", ErrMissingField)
	}
	if s.EndTime.IsZero() {
		return fmt.Errorf("%w: end_time", ErrMissingField)
	}

	if !skipPastDateCheck {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		if s.ShiftDate.Before(today) {
			return ErrPastDate
		}
	}

	if s.EndDate.Before(s.ShiftDate) {
		return fmt.Errorf("%w: end date is before shift date", ErrInvalidRange)
	}

	start := combine(s.ShiftDate, s.StartTime)
	end := combine(s.EndDate, s.EndTime)

	if s.IsOvernight {
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}
	} else if !end.After(start) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidRange)
	}

	duration := end.Sub(start).Hours()
	if duration > MaxDurationHours {
		return ErrDurationTooLong
	}

	s.DurationHours = duration
	return nil
}

func combine(date, timeOfDay time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), 0, 0,
		time.UTC,
	)
}
