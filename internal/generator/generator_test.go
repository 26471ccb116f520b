package generator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStopsOnCancel(t *testing.T) {
	var batches int32
	g := New(Options{
		Name:     "test",
		Interval: time.Millisecond,
	}, func() bool { return true }, func(ctx context.Context) (int, error) {
		atomic.AddInt32(&batches, 1)
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := g.Run(ctx)
	require.NoError(t, err)
	assert.Greater(t, atomic.LoadInt32(&batches), int32(0), "expected at least one batch")
}

func TestRunWaitsForGate(t *testing.T) {
	var open atomic.Bool
	var batches int32

	g := New(Options{
		Name:     "gated",
		Interval: time.Millisecond,
		GateWait: time.Millisecond,
	}, open.Load, func(ctx context.Context) (int, error) {
		atomic.AddInt32(&batches, 1)
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	// Gate closed: no batches should run.
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&batches), "batch ran before gate opened")

	open.Store(true)
	time.Sleep(20 * time.Millisecond)
	cancel()

	require.NoError(t, <-done)
	assert.Greater(t, atomic.LoadInt32(&batches), int32(0), "expected batches after gate opened")
}

func TestRunCircuitBreaks(t *testing.T) {
	boom := errors.New("insert failed")
	var batches int32

	g := New(Options{
		Name:                   "failing",
		Interval:               time.Millisecond,
		MaxConsecutiveFailures: 3,
	}, func() bool { return true }, func(ctx context.Context) (int, error) {
		atomic.AddInt32(&batches, 1)
		return 0, boom
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := g.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.EqualValues(t, 3, atomic.LoadInt32(&batches))
}

func TestRunResetsFailureCountOnSuccess(t *testing.T) {
	var calls int32

	// Fail twice, succeed once, then fail until the breaker trips.
	g := New(Options{
		Name:                   "flaky",
		Interval:               time.Millisecond,
		MaxConsecutiveFailures: 3,
	}, func() bool { return true }, func(ctx context.Context) (int, error) {
		n := atomic.AddInt32(&calls, 1)
		if n == 3 {
			return 1, nil
		}
		return 0, errors.New("transient")
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	err := g.Run(ctx)
	require.Error(t, err)
	// 2 failures, 1 success, then 3 more failures to trip.
	assert.EqualValues(t, 6, atomic.LoadInt32(&calls))
}

func TestDefaultsApplied(t *testing.T) {
	opts := Options{Name: "x", Interval: time.Second}
	got := opts.withDefaults()

	assert.Equal(t, 5*time.Second, got.GateWait)
	assert.Equal(t, 10, got.MaxConsecutiveFailures)
}
