package service

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Sweeper periodically deactivates expired share links. It runs once on Start
// and then every interval until Stop or the context ends.
type Sweeper struct {
	shares   ShareService
	interval time.Duration
	log      *slog.Logger

	mu     sync.Mutex // serializes RunOnce
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a sweeper. A non-positive interval defaults to one hour.
func NewSweeper(shares ShareService, interval time.Duration, log *slog.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Sweeper{
		shares:   shares,
		interval: interval,
		log:      log.With(slog.String("component", "sweeper")),
	}
}

// Start launches the background loop. Calling Start on a running sweeper is a no-op.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	go s.run(runCtx, done)
	s.log.Info("sweeper_started", slog.String("interval", s.interval.String()))
}

// Stop cancels the loop and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.log.Info("sweeper_stopped")
}

func (s *Sweeper) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	_, _ = s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep and returns the number of links deactivated.
func (s *Sweeper) RunOnce(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	n, err := s.shares.SweepExpired(ctx)
	elapsed := time.Since(start)
	sweepDurationSeconds.Observe(elapsed.Seconds())

	if err != nil {
		sweepRunsTotal.WithLabelValues("error").Inc()
		s.log.Error("sweep_failed",
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", elapsed.Milliseconds()),
		)
		return 0, err
	}

	sweepRunsTotal.WithLabelValues("success").Inc()
	sweepLinksExpiredTotal.Add(float64(n))
	s.log.Info("sweep_completed",
		slog.Int64("expired", n),
		slog.Int64("duration_ms", elapsed.Milliseconds()),
	)
	return n, nil
}
