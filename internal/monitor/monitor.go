// Package monitor runs one health pass over job containers.
package monitor

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/health"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/runtime"
)

// Result holds the outcome of a single pass.
type Result struct {
	// CheckedAt is the instant classification was measured against.
	CheckedAt time.Time
	Engine    string
	Records   []health.Record
	Status    health.Status
}

// Monitor checks job containers selected by name prefix.
type Monitor struct {
	engine      runtime.Engine
	prefix      string
	window      time.Duration
	concurrency int
	now         func() time.Time
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithConcurrency sets how many containers are inspected at once.
// Values below 1 mean sequential inspection.
func WithConcurrency(n int) Option {
	return func(m *Monitor) {
		if n < 1 {
			n = 1
		}
		m.concurrency = n
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) {
		m.now = now
	}
}

// New creates a new Monitor.
func New(engine runtime.Engine, prefix string, window time.Duration, opts ...Option) *Monitor {
	m := &Monitor{
		engine:      engine,
		prefix:      prefix,
		window:      window,
		concurrency: 1,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunOnce lists containers, inspects those matching the prefix, and
// classifies each one. A failed listing or a context that ends before
// inspection completes is an error; other inspection problems show up as
// unknown records.
func (m *Monitor) RunOnce(ctx context.Context) (*Result, error) {
	logging.Debug("starting health pass", "engine", m.engine.Name(), "prefix", m.prefix,
		"window", m.window, "concurrency", m.concurrency)

	summaries, err := m.engine.List(ctx)
	if err != nil {
		return nil, err
	}

	targets := FilterByPrefix(summaries, m.prefix)
	logging.Debug("listed containers", "total", len(summaries), "matched", len(targets))

	now := m.now().UTC()
	records := m.inspectAll(ctx, targets, now)
	if err := ctx.Err(); err != nil {
		return nil, errors.Interrupted(err)
	}

	return &Result{
		CheckedAt: now,
		Engine:    m.engine.Name(),
		Records:   records,
		Status:    health.Summarize(records),
	}, nil
}

// inspectAll classifies targets, preserving their order regardless of
// how many inspections run in parallel.
func (m *Monitor) inspectAll(ctx context.Context, targets []Target, now time.Time) []health.Record {
	records := make([]health.Record, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			records[i] = m.check(gctx, target, now)
			return nil
		})
	}
	_ = g.Wait()

	return records
}

func (m *Monitor) check(ctx context.Context, target Target, now time.Time) health.Record {
	detail := m.engine.Inspect(ctx, target.ID)
	at, ok := health.LastActivity(detail)
	record := health.Classify(target.Name, at, ok, now, m.window)

	logging.Debug("classified container", "name", target.Name, "id", target.ID,
		"outcome", record.Outcome)
	return record
}
