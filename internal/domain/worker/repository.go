package worker

import "context"

// Repository defines data access methods for workers. Listing methods take
// agencyID to keep queries tenant scoped.
type Repository interface {
	// Create creates a new worker
	Create(ctx context.Context, worker Worker) (Worker, error)

	// GetByID retrieves a worker by ID
	GetByID(ctx context.Context, id string) (Worker, error)

	// GetByEmail retrieves a worker by email, used for login
	GetByEmail(ctx context.Context, email string) (Worker, error)

	// Update updates an existing worker
	Update(ctx context.Context, worker Worker) error

	// Deactivate marks a worker inactive, keeping their history
	Deactivate(ctx context.Context, id string) error

	// List retrieves workers for an agency with pagination
	List(ctx context.Context, filter Filter, agencyID string) ([]Worker, int64, error)
}
