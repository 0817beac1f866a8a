package performance

import "time"

type Status string

const (
	StatusExcellent Status = "Excellent"
	StatusGood      Status = "Good"
	StatusAverage   Status = "Average"
	StatusPoor      Status = "Poor"
)

var ValidStatuses = []string{
	string(StatusExcellent),
	string(StatusGood),
	string(StatusAverage),
	string(StatusPoor),
}

// StaffPerformance records a review of a worker's performance on a single
// shift. One review per (worker, shift) pair, enforced by a database
// unique constraint.
type StaffPerformance struct {
	ID       string
	WorkerID string
	ShiftID  string

	// WellnessScore is a 0-100 percentage, Rating a 0-5 score.
	WellnessScore float64
	Rating        float64
	Status        Status
	Comments      *string

	ReviewedBy string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Populated by repository joins.
	WorkerName *string
	ShiftName  *string
}
