// Package generator runs the real-time insertion tasks. Each generator
// owns one database connection for its entire lifetime and ticks on a
// fixed interval; the only state shared with the rest of the process is
// the ID registry.
package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fatih/color"
)

// Options configure one repeating task. The batch size lives in the
// BatchFunc closure, not here.
type Options struct {
	Name     string
	Interval time.Duration

	// GateWait is how long to wait before re-checking dependency lists
	// that are still empty.
	GateWait time.Duration

	// MaxConsecutiveFailures stops the generator after this many batch
	// failures in a row. A successful batch resets the count.
	MaxConsecutiveFailures int
}

func (o *Options) withDefaults() Options {
	out := *o
	if out.GateWait <= 0 {
		out.GateWait = 5 * time.Second
	}
	if out.MaxConsecutiveFailures <= 0 {
		out.MaxConsecutiveFailures = 10
	}
	return out
}

// BatchFunc inserts one batch and reports how many rows made it in. The
// batch is committed or rolled back as a unit by the implementation.
type BatchFunc func(ctx context.Context) (int, error)

// Generator repeats a batch on a timer. Batches from one generator never
// overlap; batches from different generators may interleave freely.
type Generator struct {
	opts  Options
	ready func() bool
	batch BatchFunc
}

func New(opts Options, ready func() bool, batch BatchFunc) *Generator {
	return &Generator{opts: opts.withDefaults(), ready: ready, batch: batch}
}

// Run loops until the context is cancelled or the failure budget is spent.
// A failed batch is rolled back by the BatchFunc; the loop backs off
// exponentially between consecutive failures instead of retrying hot.
func (g *Generator) Run(ctx context.Context) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0

	failures := 0
	for {
		if ctx.Err() != nil {
			return nil
		}

		if !g.ready() {
			color.Yellow("[%s] waiting for initial data...", g.opts.Name)
			if !sleep(ctx, g.opts.GateWait) {
				return nil
			}
			continue
		}

		n, err := g.batch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			failures++
			color.Red("[%s] batch failed (%d consecutive): %v", g.opts.Name, failures, err)
			if failures >= g.opts.MaxConsecutiveFailures {
				return fmt.Errorf("%s generator stopped after %d consecutive batch failures: %w",
					g.opts.Name, failures, err)
			}
			if !sleep(ctx, bo.NextBackOff()) {
				return nil
			}
			continue
		}

		failures = 0
		bo.Reset()
		color.Green("[%s] generated %d new rows at %s", g.opts.Name, n, time.Now().Format(time.RFC3339))

		if !sleep(ctx, g.opts.Interval) {
			return nil
		}
	}
}

// sleep waits for d, returning false when the context ends first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
