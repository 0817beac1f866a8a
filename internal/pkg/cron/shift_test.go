package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
)

type shiftRepoStub struct {
	shift.Repository
	closeEnded func(ctx context.Context, now time.Time) (int64, error)
}

func (s *shiftRepoStub) CloseEnded(ctx context.Context, now time.Time) (int64, error) {
	return s.closeEnded(ctx, now)
}

func TestCloseEndedShifts(t *testing.T) {
	var gotNow time.Time
	repo := &shiftRepoStub{closeEnded: func(ctx context.Context, now time.Time) (int64, error) {
		gotNow = now
		return 3, nil
	}}

	jobs := NewShiftJobs(repo, 15*time.Minute)
	if err := jobs.CloseEndedShifts(context.Background()); err != nil {
		t.Fatalf("CloseEndedShifts: %v", err)
	}
	if time.Since(gotNow) > time.Minute {
		t.Errorf("CloseEnded called with stale timestamp %v", gotNow)
	}
}

func TestCloseEndedShifts_Error(t *testing.T) {
	boom := errors.New("db down")
	repo := &shiftRepoStub{closeEnded: func(ctx context.Context, now time.Time) (int64, error) {
		return 0, boom
	}}

	jobs := NewShiftJobs(repo, 15*time.Minute)
	if err := jobs.CloseEndedShifts(context.Background()); !errors.Is(err, boom) {
		t.Errorf("CloseEndedShifts error = %v, want wrapped %v", err, boom)
	}
}

func TestSchedulerRunOnce(t *testing.T) {
	repo := &shiftRepoStub{closeEnded: func(ctx context.Context, now time.Time) (int64, error) {
		return 0, nil
	}}

	calls := 0
	s := NewScheduler()
	s.AddJob("count_calls", time.Hour, func(ctx context.Context) error {
		calls++
		return nil
	})
	NewShiftJobs(repo, time.Hour).RegisterJobs(s)

	s.RunOnce(context.Background())
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
