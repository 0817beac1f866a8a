package performance

import "context"

// Repository defines data access methods for performance reviews.
type Repository interface {
	// Create creates a new review. A unique violation on the
	// (worker, shift) pair is mapped to ErrDuplicateReview.
	Create(ctx context.Context, review StaffPerformance) (StaffPerformance, error)

	// GetByID retrieves a review by ID
	GetByID(ctx context.Context, id string) (StaffPerformance, error)

	// ListByShift retrieves all reviews for a shift
	ListByShift(ctx context.Context, shiftID string) ([]StaffPerformance, error)

	// ListByWorker retrieves all reviews for a worker
	ListByWorker(ctx context.Context, workerID string) ([]StaffPerformance, error)
}
