package booking

import (
	"context"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/assignment"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/utils"
)

type BookingServiceImpl struct {
	tx             database.TxRunner
	shiftRepo      shift.Repository
	assignmentRepo assignment.Repository
	workerRepo     worker.Repository
}

func NewBookingService(
	tx database.TxRunner,
	shiftRepo shift.Repository,
	assignmentRepo assignment.Repository,
	workerRepo worker.Repository,
) assignment.BookingService {
	return &BookingServiceImpl{
		tx:             tx,
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
		workerRepo:     workerRepo,
	}
}

// Book implements assignment.BookingService. Capacity, duplicate and
// geofencing checks all run under the shift row lock so two workers racing
// for the last slot cannot both get it.
func (s *BookingServiceImpl) Book(ctx context.Context, actor worker.Actor, shiftID string) (assignment.BookingResponse, error) {
	if actor.Role != worker.RoleStaff {
		return assignment.BookingResponse{}, assignment.ErrStaffOnly
	}

	workerData, err := s.workerRepo.GetByID(ctx, actor.WorkerID)
	if err != nil {
		return assignment.BookingResponse{}, err
	}
	if workerData.AgencyID == "" {
		return assignment.BookingResponse{}, worker.ErrNoAgency
	}

	var created assignment.ShiftAssignment
	var distance float64

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		shiftData, err := s.shiftRepo.GetByIDForUpdate(txCtx, shiftID)
		if err != nil {
			return err
		}

		if shiftData.AgencyID != workerData.AgencyID {
			return assignment.ErrCrossAgency
		}

		if shiftData.IsFull() {
			return shift.ErrShiftFull
		}

		existing, err := s.assignmentRepo.GetByShiftAndWorker(txCtx, shiftData.ID, workerData.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return assignment.ErrAlreadyBooked
		}

		if !workerData.HasLocation() || !shiftData.HasLocation() {
			return assignment.ErrLocationUnset
		}

		distance = utils.HaversineDistance(
			*workerData.Latitude, *workerData.Longitude,
			*shiftData.Latitude, *shiftData.Longitude,
			utils.UnitMiles,
		)
		if distance > workerData.TravelRadius {
			return &assignment.OutOfRangeError{
				DistanceMiles: distance,
				RadiusMiles:   workerData.TravelRadius,
			}
		}

		created, err = s.assignmentRepo.Create(txCtx, assignment.ShiftAssignment{
			ShiftID:  shiftData.ID,
			WorkerID: workerData.ID,
			Role:     shiftData.ShiftRole,
			Status:   assignment.StatusConfirmed,
		})
		return err
	})
	if err != nil {
		return assignment.BookingResponse{}, err
	}

	name := workerData.FullName()
	created.WorkerName = &name

	return assignment.BookingResponse{
		Assignment:    assignment.ToAssignmentResponse(created),
		DistanceMiles: distance,
	}, nil
}

// Unbook implements assignment.BookingService.
func (s *BookingServiceImpl) Unbook(ctx context.Context, actor worker.Actor, shiftID string) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		shiftData, err := s.shiftRepo.GetByIDForUpdate(txCtx, shiftID)
		if err != nil {
			return err
		}

		existing, err := s.assignmentRepo.GetByShiftAndWorker(txCtx, shiftData.ID, actor.WorkerID)
		if err != nil {
			return err
		}
		if existing == nil {
			return assignment.ErrNotBooked
		}

		if existing.IsCompleted() || shiftData.IsCompleted {
			return assignment.ErrShiftAlreadyCompleted
		}

		return s.assignmentRepo.Delete(txCtx, existing.ID)
	})
}
