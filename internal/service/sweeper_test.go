package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filevault/internal/logger"
)

// sweepOnly counts SweepExpired calls; every other ShareService method is unused.
type sweepOnly struct {
	ShareService
	calls atomic.Int64
	n     int64
	err   error
}

func (s *sweepOnly) SweepExpired(context.Context) (int64, error) {
	s.calls.Add(1)
	return s.n, s.err
}

func TestSweeper_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		shares := &sweepOnly{n: 4}
		s := NewSweeper(shares, time.Minute, logger.Discard())

		runs := testutil.ToFloat64(sweepRunsTotal.WithLabelValues("success"))
		expired := testutil.ToFloat64(sweepLinksExpiredTotal)

		n, err := s.RunOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
		assert.Equal(t, runs+1, testutil.ToFloat64(sweepRunsTotal.WithLabelValues("success")))
		assert.Equal(t, expired+4, testutil.ToFloat64(sweepLinksExpiredTotal))
	})

	t.Run("failure", func(t *testing.T) {
		shares := &sweepOnly{err: ErrStorageFault}
		s := NewSweeper(shares, time.Minute, logger.Discard())

		runs := testutil.ToFloat64(sweepRunsTotal.WithLabelValues("error"))

		n, err := s.RunOnce(ctx)

		assert.True(t, errors.Is(err, ErrStorageFault))
		assert.Zero(t, n)
		assert.Equal(t, runs+1, testutil.ToFloat64(sweepRunsTotal.WithLabelValues("error")))
	})
}

func TestSweeper_StartStop(t *testing.T) {
	shares := &sweepOnly{}
	s := NewSweeper(shares, 10*time.Millisecond, logger.Discard())

	s.Start(context.Background())
	s.Start(context.Background())

	assert.Eventually(t, func() bool { return shares.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	s.Stop()
	after := shares.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, shares.calls.Load(), "no sweeps after Stop")

	s.Stop()
}

func TestSweeper_StopsWithContext(t *testing.T) {
	shares := &sweepOnly{}
	s := NewSweeper(shares, time.Hour, logger.Discard())
	ctx, cancel := context.WithCancel(context.Background())

	s.Start(ctx)
	assert.Eventually(t, func() bool { return shares.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	s.Stop()
	assert.Equal(t, int64(1), shares.calls.Load())
}

func TestNewSweeper_DefaultInterval(t *testing.T) {
	s := NewSweeper(&sweepOnly{}, 0, logger.Discard())
	assert.Equal(t, time.Hour, s.interval)
}
