package completion

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/assignment"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/utils"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
	"github.com/shiftwise/shiftwise-backend-go/internal/service/file"
)

type CompletionServiceImpl struct {
	tx             database.TxRunner
	shiftRepo      shift.Repository
	assignmentRepo assignment.Repository
	workerRepo     worker.Repository
	fileService    file.FileService

	// maxDistanceMiles is the trust boundary for self completion: workers
	// signing off their own shift must be within this distance of it.
	maxDistanceMiles float64
}

func NewCompletionService(
	tx database.TxRunner,
	shiftRepo shift.Repository,
	assignmentRepo assignment.Repository,
	workerRepo worker.Repository,
	fileService file.FileService,
	maxDistanceMiles float64,
) assignment.CompletionService {
	return &CompletionServiceImpl{
		tx:               tx,
		shiftRepo:        shiftRepo,
		assignmentRepo:   assignmentRepo,
		workerRepo:       workerRepo,
		fileService:      fileService,
		maxDistanceMiles: maxDistanceMiles,
	}
}

// decodeSignature parses a base64 data URL like
// "data:image/png;base64,iVBOR..." into raw bytes and an extension.
func decodeSignature(dataURL string) ([]byte, string, error) {
	header, payload, found := strings.Cut(dataURL, ";base64,")
	if !found {
		return nil, "", assignment.ErrInvalidSignature
	}

	mime := strings.TrimPrefix(header, "data:")
	typ, ext, found := strings.Cut(mime, "/")
	if !found || typ != "image" || ext == "" {
		return nil, "", assignment.ErrInvalidSignature
	}
	if ext == "jpeg" {
		ext = "jpg"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", assignment.ErrInvalidSignature
	}

	return data, ext, nil
}

// Complete implements assignment.CompletionService.
func (s *CompletionServiceImpl) Complete(ctx context.Context, actor worker.Actor, req assignment.CompleteShiftRequest) (assignment.CompletionResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.CompletionResponse{}, err
	}

	targetWorkerID := req.WorkerID
	if targetWorkerID == "" {
		targetWorkerID = actor.WorkerID
	}

	elevated := actor.IsElevated()
	if !elevated && targetWorkerID != actor.WorkerID {
		return assignment.CompletionResponse{}, assignment.ErrNotPermitted
	}

	if req.AttendanceStatus != nil && !validator.IsInSlice(*req.AttendanceStatus, assignment.ValidAttendanceStatuses) {
		return assignment.CompletionResponse{}, assignment.ErrInvalidAttendanceState
	}

	workerData, err := s.workerRepo.GetByID(ctx, targetWorkerID)
	if err != nil {
		return assignment.CompletionResponse{}, err
	}

	var signatureData []byte
	var signatureExt string
	if req.SignatureDataURL != nil {
		signatureData, signatureExt, err = decodeSignature(*req.SignatureDataURL)
		if err != nil {
			return assignment.CompletionResponse{}, err
		}
	}

	var result assignment.ShiftAssignment
	var shiftCompleted bool

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

		today := time.Now().UTC().Truncate(24 * time.Hour)
		if shiftData.ShiftDate.After(today) {
			return assignment.ErrShiftInFuture
		}

		if shiftData.IsCompleted {
			return assignment.ErrShiftAlreadyCompleted
		}

		existing, err := s.assignmentRepo.GetByShiftAndWorker(txCtx, shiftData.ID, workerData.ID)
		if err != nil {
			return err
		}
		// Workers can only sign off shifts they are assigned to. Elevated
		// actors may sign off an unassigned worker, which creates the
		// assignment on the fly without capacity checks.
		if existing == nil && !elevated {
			return assignment.ErrNotPermitted
		}
		if existing != nil && existing.IsCompleted() {
			return assignment.ErrAlreadySignedOff
		}

		lat, lon := req.Latitude, req.Longitude
		if elevated && lat == nil {
			// Elevated sign-offs without coordinates fall back to the
			// shift location.
			lat, lon = shiftData.Latitude, shiftData.Longitude
		}

		if !elevated && lat != nil && shiftData.HasLocation() {
			distance := utils.HaversineDistance(
				*lat, *lon,
				*shiftData.Latitude, *shiftData.Longitude,
				utils.UnitMiles,
			)
			if distance > s.maxDistanceMiles {
				return &assignment.TooFarError{
					DistanceMiles: distance,
					MaxMiles:      s.maxDistanceMiles,
				}
			}
		}

		var signaturePath *string
		if signatureData != nil {
			path, err := s.fileService.UploadSignature(txCtx, shiftData.ID, bytes.NewReader(signatureData), signatureExt)
			if err != nil {
				return err
			}
			signaturePath = &path
		}

		now := time.Now().UTC()
		attendance := assignment.AttendanceAttended
		if req.AttendanceStatus != nil {
			attendance = assignment.AttendanceStatus(*req.AttendanceStatus)
		}

		if existing == nil {
			created, err := s.assignmentRepo.Create(txCtx, assignment.ShiftAssignment{
				ShiftID:          shiftData.ID,
				WorkerID:         workerData.ID,
				Role:             shiftData.ShiftRole,
				Status:           assignment.StatusConfirmed,
				AttendanceStatus: &attendance,
				CompletionTime:   &now,
				Latitude:         lat,
				Longitude:        lon,
				SignaturePath:    signaturePath,
			})
			if err != nil {
				return err
			}
			result = created
		} else {
			existing.AttendanceStatus = &attendance
			existing.CompletionTime = &now
			existing.Latitude = lat
			existing.Longitude = lon
			if signaturePath != nil {
				existing.SignaturePath = signaturePath
			}
			if err := s.assignmentRepo.Update(txCtx, *existing); err != nil {
				return err
			}
			result = *existing
		}

		// Promote the shift once every assignment has been signed off. The
		// row lock makes the triggering completer deterministic, so their
		// signature becomes the shift signature.
		all, err := s.assignmentRepo.ListByShift(txCtx, shiftData.ID)
		if err != nil {
			return err
		}

		allSignedOff := len(all) > 0
		for _, a := range all {
			if a.ID == result.ID {
				continue
			}
			if !a.IsCompleted() {
				allSignedOff = false
				break
			}
		}

		if allSignedOff {
			shiftData.IsCompleted = true
			shiftData.CompletionTime = &now
			shiftData.Status = shift.StatusCompleted
			if signaturePath != nil {
				shiftData.SignaturePath = signaturePath
			}

			// Historical dates are expected here.
			if err := shiftData.Validate(true); err != nil {
				return err
			}
			if err := s.shiftRepo.Update(txCtx, shiftData); err != nil {
				return err
			}
			shiftCompleted = true
		}

		return nil
	})
	if err != nil {
		return assignment.CompletionResponse{}, err
	}

	name := workerData.FullName()
	result.WorkerName = &name

	return assignment.CompletionResponse{
		Assignment:     assignment.ToAssignmentResponse(result),
		ShiftCompleted: shiftCompleted,
	}, nil
}
