package worker

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/assignment"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type WorkerServiceImpl struct {
	tx         database.TxRunner
	workerRepo worker.Repository
}

func NewWorkerService(tx database.TxRunner, workerRepo worker.Repository) worker.Service {
	return &WorkerServiceImpl{
		tx:         tx,
		workerRepo: workerRepo,
	}
}

// CreateWorker implements worker.Service.
func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, actor worker.Actor, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if !actor.IsElevated() {
		return worker.WorkerResponse{}, assignment.ErrNotPermitted
	}

	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	role := worker.Role(req.Role)
	if role == "" {
		role = worker.RoleStaff
	}
	// Only owners can mint other elevated accounts.
	if role.IsElevated() && actor.Role != worker.RoleOwner && !actor.IsAdmin() {
		return worker.WorkerResponse{}, assignment.ErrNotPermitted
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	var created worker.Worker
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err = s.workerRepo.Create(txCtx, worker.Worker{
			AgencyID:     actor.AgencyID,
			Email:        req.Email,
			PasswordHash: string(hash),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Role:         role,
			Phone:        req.Phone,
			Latitude:     req.Latitude,
			Longitude:    req.Longitude,
			TravelRadius: req.TravelRadius,
		})
		return err
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.ToWorkerResponse(created), nil
}

// GetWorker implements worker.Service.
func (s *WorkerServiceImpl) GetWorker(ctx context.Context, actor worker.Actor, id string) (worker.WorkerResponse, error) {
	workerData, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if !actor.IsAdmin() && workerData.AgencyID != actor.AgencyID {
		return worker.WorkerResponse{}, worker.ErrWorkerNotFound
	}

	return worker.ToWorkerResponse(workerData), nil
}

// ListWorkers implements worker.Service.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context, actor worker.Actor, filter worker.Filter) (worker.ListWorkersResponse, error) {
	filter.Normalize()

	workers, total, err := s.workerRepo.List(ctx, filter, actor.AgencyID)
	if err != nil {
		return worker.ListWorkersResponse{}, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.ToWorkerResponse(w))
	}

	return worker.ListWorkersResponse{
		Workers:    responses,
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

// DeactivateWorker implements worker.Service. Managers cannot deactivate
// accounts; that stays with the agency owner.
func (s *WorkerServiceImpl) DeactivateWorker(ctx context.Context, actor worker.Actor, id string) error {
	if actor.Role != worker.RoleOwner && !actor.IsAdmin() {
		return assignment.ErrNotPermitted
	}
	if id == actor.WorkerID {
		return worker.ErrSelfDeactivation
	}

	workerData, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && workerData.AgencyID != actor.AgencyID {
		return worker.ErrWorkerNotFound
	}

	return s.workerRepo.Deactivate(ctx, workerData.ID)
}
