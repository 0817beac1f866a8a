package shift

import (
	"context"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
)

// Service defines business logic for shift lifecycle operations
type Service interface {
	// CreateShift creates a shift under the actor's agency with a generated
	// code (elevated only)
	CreateShift(ctx context.Context, actor worker.Actor, req CreateShiftRequest) (ShiftResponse, error)

	// GetShift retrieves a single shift, tenant scoped
	GetShift(ctx context.Context, actor worker.Actor, id string) (ShiftResponse, error)

	// ListShifts retrieves shifts for the actor's agency
	ListShifts(ctx context.Context, actor worker.Actor, filter Filter) (ListShiftsResponse, error)

	// UpdateShift updates shift details (elevated only)
	UpdateShift(ctx context.Context, actor worker.Actor, req UpdateShiftRequest) (ShiftResponse, error)

	// DeleteShift soft deletes a shift (elevated only)
	DeleteShift(ctx context.Context, actor worker.Actor, id string) error
}
