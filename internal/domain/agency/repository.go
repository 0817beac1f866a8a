package agency

import "context"

// Repository defines data access methods for agencies.
type Repository interface {
	// Create creates a new agency
	Create(ctx context.Context, agency Agency) (Agency, error)

	// GetByID retrieves an agency by ID
	GetByID(ctx context.Context, id string) (Agency, error)

	// GetByCode retrieves an agency by its public code
	GetByCode(ctx context.Context, code string) (Agency, error)

	// CodeExists reports whether an agency with the given code exists
	CodeExists(ctx context.Context, code string) (bool, error)

	// Update updates an existing agency
	Update(ctx context.Context, agency Agency) error
}
