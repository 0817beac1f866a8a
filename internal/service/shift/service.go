package shift

import (
	"context"
	"fmt"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/agency"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/assignment"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/utils"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

const (
	// Shift codes carry the agency code as prefix plus a short random
	// segment, e.g. AG-3F9A01BC-7B2E01.
	shiftCodeLength = 6

	codeGenerationAttempts = 5
)

type ShiftServiceImpl struct {
	tx         database.TxRunner
	shiftRepo  shift.Repository
	agencyRepo agency.Repository
}

func NewShiftService(
	tx database.TxRunner,
	shiftRepo shift.Repository,
	agencyRepo agency.Repository,
) shift.Service {
	return &ShiftServiceImpl{
		tx:         tx,
		shiftRepo:  shiftRepo,
		agencyRepo: agencyRepo,
	}
}

// generateShiftCode returns a code prefixed with the agency code that does
// not collide with an existing shift.
func (s *ShiftServiceImpl) generateShiftCode(ctx context.Context, agencyCode string) (string, error) {
	for i := 0; i < codeGenerationAttempts; i++ {
		code := utils.GenerateUniqueCode(agencyCode+"-", shiftCodeLength)
		exists, err := s.shiftRepo.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check shift code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", shift.ErrCodeGeneration
}

// CreateShift implements shift.Service.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, actor worker.Actor, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if !actor.IsElevated() {
		return shift.ShiftResponse{}, assignment.ErrNotPermitted
	}

	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	agencyData, err := s.agencyRepo.GetByID(ctx, actor.AgencyID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	shiftDate, _ := validator.IsValidDate(req.ShiftDate)
	endDate, _ := validator.IsValidDate(req.EndDate)
	startTime, _ := validator.IsValidTime(req.StartTime)
	endTime, _ := validator.IsValidTime(req.EndTime)

	newShift := shift.Shift{
		AgencyID:    agencyData.ID,
		Name:        req.Name,
		ShiftDate:   shiftDate,
		EndDate:     endDate,
		StartTime:   startTime,
		EndTime:     endTime,
		IsOvernight: req.IsOvernight,
		ShiftRole:   req.ShiftRole,
		ShiftType:   shift.Type(req.ShiftType),
		Status:      shift.StatusOpen,
		Capacity:    req.Capacity,
		HourlyRate:  req.HourlyRate,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Notes:       req.Notes,
	}
	if newShift.ShiftRole == "" {
		newShift.ShiftRole = shift.DefaultWorkRole
	}
	if newShift.ShiftType == "" {
		newShift.ShiftType = shift.TypeRegular
	}

	if err := newShift.Validate(false); err != nil {
		return shift.ShiftResponse{}, err
	}

	var created shift.Shift
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		code, err := s.generateShiftCode(txCtx, agencyData.Code)
		if err != nil {
			return err
		}
		newShift.Code = code

		created, err = s.shiftRepo.Create(txCtx, newShift)
		return err
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToShiftResponse(created), nil
}

// GetShift implements shift.Service.
func (s *ShiftServiceImpl) GetShift(ctx context.Context, actor worker.Actor, id string) (shift.ShiftResponse, error) {
	shiftData, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if !actor.IsAdmin() && shiftData.AgencyID != actor.AgencyID {
		return shift.ShiftResponse{}, shift.ErrShiftNotFound
	}

	return shift.ToShiftResponse(shiftData), nil
}

// ListShifts implements shift.Service.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context, actor worker.Actor, filter shift.Filter) (shift.ListShiftsResponse, error) {
	filter.Normalize()

	shifts, total, err := s.shiftRepo.List(ctx, filter, actor.AgencyID)
	if err != nil {
		return shift.ListShiftsResponse{}, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.ToShiftResponse(sh))
	}

	return shift.ListShiftsResponse{
		Shifts:     responses,
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

// UpdateShift implements shift.Service.
func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, actor worker.Actor, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if !actor.IsElevated() {
		return shift.ShiftResponse{}, assignment.ErrNotPermitted
	}

	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	var updated shift.Shift
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		shiftData, err := s.shiftRepo.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}

		if !actor.IsAdmin() && shiftData.AgencyID != actor.AgencyID {
			return shift.ErrShiftNotFound
		}

		if shiftData.IsCompleted {
			return assignment.ErrShiftAlreadyCompleted
		}

		applyUpdate(&shiftData, req)

		// Past dates stay valid when editing an existing shift.
		if err := shiftData.Validate(true); err != nil {
			return err
		}

		if err := s.shiftRepo.Update(txCtx, shiftData); err != nil {
			return err
		}

		updated = shiftData
		return nil
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToShiftResponse(updated), nil
}

func applyUpdate(sh *shift.Shift, req shift.UpdateShiftRequest) {
	if req.Name != nil {
		sh.Name = *req.Name
	}
	if req.ShiftDate != nil {
		sh.ShiftDate, _ = validator.IsValidDate(*req.ShiftDate)
	}
	if req.EndDate != nil {
		sh.EndDate, _ = validator.IsValidDate(*req.EndDate)
	}
	if req.StartTime != nil {
		sh.StartTime, _ = validator.IsValidTime(*req.StartTime)
	}
	if req.EndTime != nil {
		sh.EndTime, _ = validator.IsValidTime(*req.EndTime)
	}
	if req.IsOvernight != nil {
		sh.IsOvernight = *req.IsOvernight
	}
	if req.ShiftRole != nil {
		sh.ShiftRole = *req.ShiftRole
	}
	if req.ShiftType != nil {
		sh.ShiftType = shift.Type(*req.ShiftType)
	}
	if req.Status != nil {
		sh.Status = shift.Status(*req.Status)
	}
	if req.Capacity != nil {
		sh.Capacity = *req.Capacity
	}
	if req.HourlyRate != nil {
		sh.HourlyRate = req.HourlyRate
	}
	if req.Address != nil {
		sh.Address = req.Address
	}
	if req.Latitude != nil {
		sh.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		sh.Longitude = req.Longitude
	}
	if req.Notes != nil {
		sh.Notes = req.Notes
	}
}

// DeleteShift implements shift.Service.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, actor worker.Actor, id string) error {
	if !actor.IsElevated() {
		return assignment.ErrNotPermitted
	}

	return s.shiftRepo.Deactivate(ctx, id, actor.AgencyID)
}
