package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

type janitorFacadeStub struct {
	purgeCalls int32
	err        error
}

func (s *janitorFacadeStub) PurgeExpiredPasscodes(ctx context.Context) (int64, error) {
	atomic.AddInt32(&s.purgeCalls, 1)
	if s.err != nil {
		return 0, s.err
	}
	return 2, nil
}

func TestNewPasscodeJanitorDefaultInterval(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	janitor := NewPasscodeJanitor(&janitorFacadeStub{}, 0, logger)
	if janitor.interval != time.Minute {
		t.Fatalf("expected default interval of one minute, got %v", janitor.interval)
	}
}

func TestPasscodeJanitorPurges(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &janitorFacadeStub{}
	janitor := NewPasscodeJanitor(facade, 10*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	janitor.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for atomic.LoadInt32(&facade.purgeCalls) == 0 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for purge")
		case <-time.After(10 * time.Millisecond):
		}
	}

	janitor.Stop()
	if atomic.LoadInt32(&facade.purgeCalls) == 0 {
		t.Fatalf("expected at least one purge call")
	}
}

func TestPasscodeJanitorSurvivesErrors(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &janitorFacadeStub{err: errors.New("db down")}
	janitor := NewPasscodeJanitor(facade, 10*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	janitor.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for atomic.LoadInt32(&facade.purgeCalls) < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for repeated purges")
		case <-time.After(10 * time.Millisecond):
		}
	}

	janitor.Stop()
}

func TestPasscodeJanitorStopIdempotent(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	janitor := NewPasscodeJanitor(&janitorFacadeStub{}, 10*time.Millisecond, logger)

	janitor.Start(context.Background())
	janitor.Stop()
	janitor.Stop()
}
