// Package bootstrap runs the one-time application startup work: managed
// logger initialization and first-start seeding of the default metric-type
// table. Both run as detached background tasks; neither blocks the caller and
// no failure in either propagates past its task boundary.
package bootstrap

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/orbitscale/orbitscale/internal/metric"
	"github.com/orbitscale/orbitscale/internal/xslog"
)

// SettingsStore is the durable-flag surface the coordinator depends on.
type SettingsStore interface {
	FirstAppStart(ctx context.Context) (bool, error)
	SetFirstAppStart(ctx context.Context, v bool) error
	FileLoggingEnabled(ctx context.Context) (bool, error)
}

// MetricTypeStore receives the seeded definitions as one logical write.
type MetricTypeStore interface {
	BulkInsert(ctx context.Context, types []metric.MetricType) error
}

// LoggerInit builds the managed logger once the file-logging flag is
// resolved. It must not be called before the flag read settles.
type LoggerInit func(ctx context.Context, fileLogging bool) (*slog.Logger, error)

type Coordinator struct {
	settings   SettingsStore
	types      MetricTypeStore
	initLogger LoggerInit
	defaults   func() []metric.MetricType
	fallback   *slog.Logger

	// logger holds the fallback channel until the managed logger is ready.
	// The seeding task may observe either, depending on how the two tasks
	// interleave.
	logger atomic.Pointer[slog.Logger]

	once  sync.Once
	group errgroup.Group
}

type Option func(*Coordinator)

// WithDefaults overrides the dataset provider. Tests use this; production
// always seeds metric.DefaultTypes.
func WithDefaults(provider func() []metric.MetricType) Option {
	return func(c *Coordinator) {
		c.defaults = provider
	}
}

func New(settings SettingsStore, types MetricTypeStore, initLogger LoggerInit, fallback *slog.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		settings:   settings,
		types:      types,
		initLogger: initLogger,
		defaults:   metric.DefaultTypes,
		fallback:   fallback,
	}
	c.logger.Store(fallback)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run launches the two startup tasks and returns immediately. Calling Run
// again, including concurrently, is a no-op: the work runs at most once per
// process.
func (c *Coordinator) Run(ctx context.Context) {
	c.once.Do(func() {
		c.group.Go(func() error {
			c.guard(ctx, "logging init", c.initLogging)
			return nil
		})
		c.group.Go(func() error {
			c.guard(ctx, "metric type seeding", c.seedDefaults)
			return nil
		})
	})
}

// Wait blocks until both startup tasks settle. The app shell never calls
// this; tests and the maintenance CLI do.
func (c *Coordinator) Wait() {
	_ = c.group.Wait()
}

// guard is the task failure boundary: a panicking task is logged and
// swallowed so it cannot take down the process or its sibling task.
func (c *Coordinator) guard(ctx context.Context, name string, task func(context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			c.log().ErrorContext(ctx, "startup task panicked",
				slog.String("task", name),
				xslog.ErrorGroupWithStack(r))
		}
	}()
	task(ctx)
}

func (c *Coordinator) initLogging(ctx context.Context) {
	enabled, err := c.settings.FileLoggingEnabled(ctx)
	if err != nil {
		// The managed logger is not up yet; the fallback channel always is.
		c.fallback.ErrorContext(ctx, "failed to read file logging flag, defaulting to disabled", xslog.Error(err))
		enabled = false
	}

	logger, err := c.initLogger(ctx, enabled)
	if err != nil {
		c.fallback.ErrorContext(ctx, "failed to initialize managed logger", xslog.Error(err))
		return
	}

	c.logger.Store(logger)
	logger.InfoContext(ctx, "logging initialized", slog.Bool("file_logging", enabled))
}

func (c *Coordinator) seedDefaults(ctx context.Context) {
	first, err := c.settings.FirstAppStart(ctx)
	if err != nil {
		c.log().ErrorContext(ctx, "failed to read first start flag", xslog.Error(err))
		return
	}
	if !first {
		c.log().DebugContext(ctx, "metric types already seeded, skipping")
		return
	}

	types := c.defaults()
	if err := c.types.BulkInsert(ctx, types); err != nil {
		// The flag stays raised so the next start retries the whole seed.
		c.log().ErrorContext(ctx, "failed to seed default metric types", xslog.Error(err))
		return
	}

	// Cleared only after the bulk insert reported success. If this write
	// fails, the next start redundantly re-seeds, which the conflict-tolerant
	// insert absorbs.
	if err := c.settings.SetFirstAppStart(ctx, false); err != nil {
		c.log().ErrorContext(ctx, "failed to clear first start flag", xslog.Error(err))
		return
	}

	c.log().InfoContext(ctx, "seeded default metric types", xslog.Count(len(types)))
}

func (c *Coordinator) log() *slog.Logger {
	return c.logger.Load()
}
