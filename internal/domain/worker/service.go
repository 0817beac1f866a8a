package worker

import "context"

// Service defines business logic for worker management
type Service interface {
	// CreateWorker registers a worker under the actor's agency (elevated only)
	CreateWorker(ctx context.Context, actor Actor, req CreateWorkerRequest) (WorkerResponse, error)

	// GetWorker retrieves a single worker, tenant scoped
	GetWorker(ctx context.Context, actor Actor, id string) (WorkerResponse, error)

	// ListWorkers retrieves workers for the actor's agency
	ListWorkers(ctx context.Context, actor Actor, filter Filter) (ListWorkersResponse, error)

	// DeactivateWorker marks a worker inactive (owner or admin only)
	DeactivateWorker(ctx context.Context, actor Actor, id string) error
}
