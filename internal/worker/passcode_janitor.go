package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// StorefrontFacade exposes the subset of application functionality required by the janitor.
type StorefrontFacade interface {
	PurgeExpiredPasscodes(ctx context.Context) (int64, error)
}

// PasscodeJanitor periodically deletes expired one-time code challenges so
// unredeemed signup and reset attempts do not accumulate.
type PasscodeJanitor struct {
	facade   StorefrontFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPasscodeJanitor constructs the janitor.
func NewPasscodeJanitor(facade StorefrontFacade, interval time.Duration, logger *slog.Logger) *PasscodeJanitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PasscodeJanitor{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background purging.
func (j *PasscodeJanitor) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	j.wg.Add(1)
	go j.run(runCtx)
}

// Stop waits for the purge loop to finish.
func (j *PasscodeJanitor) Stop() {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.mu.Unlock()

	j.wg.Wait()
}

func (j *PasscodeJanitor) run(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.purge(ctx)
		}
	}
}

func (j *PasscodeJanitor) purge(ctx context.Context) {
	purged, err := j.facade.PurgeExpiredPasscodes(ctx)
	if err != nil {
		j.logger.Error("passcode purge failed", slog.String("error", err.Error()))
		return
	}
	if purged > 0 {
		j.logger.Info("expired passcodes purged", slog.Int64("count", purged))
	}
}
