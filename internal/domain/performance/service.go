package performance

import (
	"context"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
)

// Service defines business logic for performance reviews
type Service interface {
	// CreateReview records a review for a worker's shift (elevated only).
	// The worker must be assigned to the shift.
	CreateReview(ctx context.Context, actor worker.Actor, req CreateReviewRequest) (ReviewResponse, error)

	// ListByShift retrieves reviews for a shift, tenant scoped
	ListByShift(ctx context.Context, actor worker.Actor, shiftID string) (ListReviewsResponse, error)

	// ListByWorker retrieves reviews for a worker, tenant scoped
	ListByWorker(ctx context.Context, actor worker.Actor, workerID string) (ListReviewsResponse, error)
}
