package assignment

import (
	"context"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
)

// Service defines manager-driven assignment operations
type Service interface {
	// Assign places a worker on a shift (elevated only). Capacity and
	// duplicate checks run under the shift row lock.
	Assign(ctx context.Context, actor worker.Actor, req AssignRequest) (AssignmentResponse, error)

	// Unassign removes a worker from a shift (elevated only)
	Unassign(ctx context.Context, actor worker.Actor, req UnassignRequest) error

	// ListByShift retrieves all assignments on a shift, tenant scoped
	ListByShift(ctx context.Context, actor worker.Actor, shiftID string) (ListAssignmentsResponse, error)
}

// BookingService defines worker-driven booking operations
type BookingService interface {
	// Book books the actor onto a shift after geofencing and capacity checks
	Book(ctx context.Context, actor worker.Actor, shiftID string) (BookingResponse, error)

	// Unbook cancels the actor's own booking
	Unbook(ctx context.Context, actor worker.Actor, shiftID string) error
}

// CompletionService defines shift sign-off operations
type CompletionService interface {
	// Complete signs off a worker's participation in a shift and promotes
	// the shift to completed once every assignment is signed off
	Complete(ctx context.Context, actor worker.Actor, req CompleteShiftRequest) (CompletionResponse, error)
}
