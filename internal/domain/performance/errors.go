package performance

import "errors"

// Performance domain errors
var (
	ErrReviewNotFound  = errors.New("performance review not found")
	ErrDuplicateReview = errors.New("worker already has a review for this shift")
	ErrNotAssigned     = errors.New("worker is not assigned to this shift")
)
