package assignment

import (
	"context"
	"fmt"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/assignment"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

type AssignmentServiceImpl struct {
	tx             database.TxRunner
	shiftRepo      shift.Repository
	assignmentRepo assignment.Repository
	workerRepo     worker.Repository
}

func NewAssignmentService(
	tx database.TxRunner,
	shiftRepo shift.Repository,
	assignmentRepo assignment.Repository,
	workerRepo worker.Repository,
) assignment.Service {
	return &AssignmentServiceImpl{
		tx:             tx,
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
		workerRepo:     workerRepo,
	}
}

// Assign implements assignment.Service.
func (s *AssignmentServiceImpl) Assign(ctx context.Context, actor worker.Actor, req assignment.AssignRequest) (assignment.AssignmentResponse, error) {
	if !actor.IsElevated() {
		return assignment.AssignmentResponse{}, assignment.ErrNotPermitted
	}

	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	workerData, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if workerData.AgencyID == "" {
		return assignment.AssignmentResponse{}, worker.ErrNoAgency
	}

	role := req.Role
	if role == "" {
		role = shift.DefaultWorkRole
	}
	if !validator.IsInSlice(role, shift.ValidWorkRoles) {
		return assignment.AssignmentResponse{}, assignment.ErrInvalidWorkRole
	}

	var created assignment.ShiftAssignment
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		shiftData, err := s.shiftRepo.GetByIDForUpdate(txCtx, req.ShiftID)
		if err != nil {
			return err
		}

		if !actor.IsAdmin() && shiftData.AgencyID != actor.AgencyID {
			return shift.ErrShiftNotFound
		}
		if workerData.AgencyID != shiftData.AgencyID {
			return assignment.ErrCrossAgency
		}

		existing, err := s.assignmentRepo.GetByShiftAndWorker(txCtx, shiftData.ID, workerData.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return assignment.ErrAlreadyAssigned
		}

		if shiftData.IsFull() {
			return shift.ErrShiftFull
		}

		created, err = s.assignmentRepo.Create(txCtx, assignment.ShiftAssignment{
			ShiftID:  shiftData.ID,
			WorkerID: workerData.ID,
			Role:     role,
			Status:   assignment.StatusConfirmed,
		})
		return err
	})
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	name := workerData.FullName()
	created.WorkerName = &name

	return assignment.ToAssignmentResponse(created), nil
}

// Unassign implements assignment.Service.
func (s *AssignmentServiceImpl) Unassign(ctx context.Context, actor worker.Actor, req assignment.UnassignRequest) error {
	if !actor.IsElevated() {
		return assignment.ErrNotPermitted
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		shiftData, err := s.shiftRepo.GetByIDForUpdate(txCtx, req.ShiftID)
		if err != nil {
			return err
		}

		if !actor.IsAdmin() && shiftData.AgencyID != actor.AgencyID {
			return shift.ErrShiftNotFound
		}

		existing, err := s.assignmentRepo.GetByShiftAndWorker(txCtx, shiftData.ID, req.WorkerID)
		if err != nil {
			return err
		}
		if existing == nil {
			return assignment.ErrAssignmentNotFound
		}

		if err := s.assignmentRepo.Delete(txCtx, existing.ID); err != nil {
			return fmt.Errorf("failed to remove assignment: %w", err)
		}
		return nil
	})
}

// ListByShift implements assignment.Service.
func (s *AssignmentServiceImpl) ListByShift(ctx context.Context, actor worker.Actor, shiftID string) (assignment.ListAssignmentsResponse, error) {
	shiftData, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return assignment.ListAssignmentsResponse{}, err
	}

	if !actor.IsAdmin() && shiftData.AgencyID != actor.AgencyID {
		return assignment.ListAssignmentsResponse{}, shift.ErrShiftNotFound
	}

	assignments, err := s.assignmentRepo.ListByShift(ctx, shiftID)
	if err != nil {
		return assignment.ListAssignmentsResponse{}, err
	}

	responses := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, assignment.ToAssignmentResponse(a))
	}

	return assignment.ListAssignmentsResponse{
		Assignments: responses,
		TotalCount:  len(responses),
	}, nil
}
