package session

import (
	"context"
	"time"

	"github.com/kioskworks/roulette-go/internal/logger"
	"github.com/kioskworks/roulette-go/internal/metrics"
)

// Reaper periodically closes sessions whose operators walked away without
// releasing the lock. It only runs when an idle TTL is configured.
type Reaper struct {
	svc      Service
	interval time.Duration
}

// NewReaper creates a reaper sweeping at the given interval
func NewReaper(svc Service, interval time.Duration) *Reaper {
	return &Reaper{svc: svc, interval: interval}
}

// Run sweeps until the context is cancelled. Intended to be launched as a
// goroutine from main.
func (r *Reaper) Run(ctx context.Context) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgReaperStarted, "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info(LogMsgReaperStopped)
			return
		case <-ticker.C:
			closed, err := r.svc.CloseIdle(ctx)
			if err != nil {
				log.Error(LogMsgReaperSweepFailed, "error", err)
				continue
			}
			if closed > 0 {
				metrics.SessionsReaped.Add(float64(closed))
			}
		}
	}
}
