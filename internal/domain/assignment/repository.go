package assignment

import "context"

// Repository defines data access methods for shift assignments.
type Repository interface {
	// Create creates a new assignment. A unique violation on the
	// (worker, shift) pair is mapped to ErrAlreadyAssigned.
	Create(ctx context.Context, assignment ShiftAssignment) (ShiftAssignment, error)

	// GetByID retrieves an assignment by ID
	GetByID(ctx context.Context, id string) (ShiftAssignment, error)

	// GetByShiftAndWorker retrieves the assignment for a worker on a shift,
	// or nil when none exists
	GetByShiftAndWorker(ctx context.Context, shiftID, workerID string) (*ShiftAssignment, error)

	// ListByShift retrieves all assignments for a shift with worker details
	ListByShift(ctx context.Context, shiftID string) ([]ShiftAssignment, error)

	// ListByWorker retrieves all assignments for a worker
	ListByWorker(ctx context.Context, workerID string) ([]ShiftAssignment, error)

	// Update updates an existing assignment
	Update(ctx context.Context, assignment ShiftAssignment) error

	// Delete removes an assignment
	Delete(ctx context.Context, id string) error
}
