package performance

import (
	"context"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/assignment"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/performance"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type PerformanceServiceImpl struct {
	tx              database.TxRunner
	performanceRepo performance.Repository
	shiftRepo       shift.Repository
	assignmentRepo  assignment.Repository
	workerRepo      worker.Repository
}

func NewPerformanceService(
	tx database.TxRunner,
	performanceRepo performance.Repository,
	shiftRepo shift.Repository,
	assignmentRepo assignment.Repository,
	workerRepo worker.Repository,
) performance.Service {
	return &PerformanceServiceImpl{
		tx:              tx,
		performanceRepo: performanceRepo,
		shiftRepo:       shiftRepo,
		assignmentRepo:  assignmentRepo,
		workerRepo:      workerRepo,
	}
}

// CreateReview implements performance.Service.
func (s *PerformanceServiceImpl) CreateReview(ctx context.Context, actor worker.Actor, req performance.CreateReviewRequest) (performance.ReviewResponse, error) {
	if !actor.IsElevated() {
		return performance.ReviewResponse{}, assignment.ErrNotPermitted
	}

	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}

	shiftData, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	if !actor.IsAdmin() && shiftData.AgencyID != actor.AgencyID {
		return performance.ReviewResponse{}, shift.ErrShiftNotFound
	}

	workerData, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	if workerData.AgencyID != shiftData.AgencyID {
		return performance.ReviewResponse{}, assignment.ErrCrossAgency
	}

	existing, err := s.assignmentRepo.GetByShiftAndWorker(ctx, req.ShiftID, req.WorkerID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	if existing == nil {
		return performance.ReviewResponse{}, performance.ErrNotAssigned
	}

	var created performance.StaffPerformance
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err = s.performanceRepo.Create(txCtx, performance.StaffPerformance{
			WorkerID:      req.WorkerID,
			ShiftID:       req.ShiftID,
			WellnessScore: req.WellnessScore,
			Rating:        req.Rating,
			Status:        performance.Status(req.Status),
			Comments:      req.Comments,
			ReviewedBy:    actor.WorkerID,
		})
		return err
	})
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	name := workerData.FullName()
	created.WorkerName = &name
	created.ShiftName = &shiftData.Name

	return performance.ToReviewResponse(created), nil
}

// ListByShift implements performance.Service.
func (s *PerformanceServiceImpl) ListByShift(ctx context.Context, actor worker.Actor, shiftID string) (performance.ListReviewsResponse, error) {
	shiftData, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return performance.ListReviewsResponse{}, err
	}
	if !actor.IsAdmin() && shiftData.AgencyID != actor.AgencyID {
		return performance.ListReviewsResponse{}, shift.ErrShiftNotFound
	}

	reviews, err := s.performanceRepo.ListByShift(ctx, shiftID)
	if err != nil {
		return performance.ListReviewsResponse{}, err
	}

	return toListResponse(reviews), nil
}

// ListByWorker implements performance.Service.
func (s *PerformanceServiceImpl) ListByWorker(ctx context.Context, actor worker.Actor, workerID string) (performance.ListReviewsResponse, error) {
	workerData, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return performance.ListReviewsResponse{}, err
	}
	if !actor.IsAdmin() && workerData.AgencyID != actor.AgencyID {
		return performance.ListReviewsResponse{}, worker.ErrWorkerNotFound
	}
	// Staff can see their own reviews but not anyone else's.
	if !actor.IsElevated() && workerID != actor.WorkerID {
		return performance.ListReviewsResponse{}, assignment.ErrNotPermitted
	}

	reviews, err := s.performanceRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return performance.ListReviewsResponse{}, err
	}

	return toListResponse(reviews), nil
}

func toListResponse(reviews []performance.StaffPerformance) performance.ListReviewsResponse {
	responses := make([]performance.ReviewResponse, 0, len(reviews))
	for _, p := range reviews {
		responses = append(responses, performance.ToReviewResponse(p))
	}
	return performance.ListReviewsResponse{
		Reviews:    responses,
		TotalCount: len(responses),
	}
}
