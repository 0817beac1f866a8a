package shift

import (
	"context"
	"time"
)

// Repository defines data access methods for shifts. Listing and mutation
// methods take agencyID to keep queries tenant scoped; GetByID does not, the
// service layer decides whether a cross-agency read is allowed.
type Repository interface {
	// Create creates a new shift
	Create(ctx context.Context, shift Shift) (Shift, error)

	// GetByID retrieves a shift by ID including its confirmed count
	GetByID(ctx context.Context, id string) (Shift, error)

	// GetByIDForUpdate retrieves a shift and locks its row for the duration
	// of the surrounding transaction. Booking and completion use it to
	// serialize capacity and state checks.
	GetByIDForUpdate(ctx context.Context, id string) (Shift, error)

	// List retrieves shifts for an agency with filters and pagination
	List(ctx context.Context, filter Filter, agencyID string) ([]Shift, int64, error)

	// Update updates an existing shift
	Update(ctx context.Context, shift Shift) error

	// Deactivate soft deletes a shift
	Deactivate(ctx context.Context, id string, agencyID string) error

	// CodeExists reports whether a shift with the given code exists
	CodeExists(ctx context.Context, code string) (bool, error)

	// CloseEnded moves open shifts whose end timestamp is before now to the
	// closed status and returns how many rows changed.
	CloseEnded(ctx context.Context, now time.Time) (int64, error)
}
