// Package scheduler runs background jobs of the signage admin service
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Warmer refreshes cached daypart definitions
type Warmer interface {
	WarmDaypartCache(ctx context.Context) (int, error)
}

// CacheWarmer periodically refreshes the daypart cache of every store
type CacheWarmer struct {
	warmer  Warmer
	spec    string
	timeout time.Duration
	logger  *zerolog.Logger

	mu      sync.Mutex
	running bool
}

func NewCacheWarmer(warmer Warmer, spec string, timeout time.Duration, logger *zerolog.Logger) *CacheWarmer {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &CacheWarmer{
		warmer:  warmer,
		spec:    spec,
		timeout: timeout,
		logger:  logger,
	}
}

// Start runs one warm-up immediately, then on the cron schedule, and returns a stop function
// that waits for a running job to finish
func (w *CacheWarmer) Start(parent context.Context) (func(), error) {
	ctx, cancel := context.WithCancel(parent)

	c := cron.New(cron.WithParser(cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)))
	if _, err := c.AddFunc(w.spec, func() { w.RunOnce(ctx) }); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid cache warm schedule %q: %w", w.spec, err)
	}

	go w.RunOnce(ctx)
	c.Start()
	w.logger.Info().Str("schedule", w.spec).Msg("daypart cache warmer started")

	return func() {
		cancel()
		<-c.Stop().Done()
	}, nil
}

// RunOnce warms the cache unless a previous run is still in progress
func (w *CacheWarmer) RunOnce(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		w.logger.Debug().Msg("daypart cache warm-up already running, skipping")
		return
	}
	w.running = true
	w.mu.Unlock()
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	if ctx.Err() != nil {
		return
	}
	runCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	n, err := w.warmer.WarmDaypartCache(runCtx)
	if err != nil {
		w.logger.Error().Err(err).Int("stores", n).Msg("daypart cache warm-up failed")
		return
	}
	w.logger.Info().Int("stores", n).Dur("took", time.Since(start)).Msg("daypart cache warmed")
}
