package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
)

type ShiftJobs struct {
	shiftRepo     shift.Repository
	closeInterval time.Duration
}

func NewShiftJobs(shiftRepo shift.Repository, closeInterval time.Duration) *ShiftJobs {
	return &ShiftJobs{
		shiftRepo:     shiftRepo,
		closeInterval: closeInterval,
	}
}

func (j *ShiftJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_ended_shifts", j.closeInterval, j.CloseEndedShifts)
}

// CloseEndedShifts moves open shifts whose end timestamp has passed to the
// closed status so they stop accepting bookings.
func (j *ShiftJobs) CloseEndedShifts(ctx context.Context) error {
	closed, err := j.shiftRepo.CloseEnded(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to close ended shifts: %w", err)
	}

	if closed > 0 {
		slog.Info("Cron: Closed ended shifts", "count", closed)
	}
	return nil
}
