package snapshot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"restaurant-deals/internal/domain/restaurant"
	"restaurant-deals/internal/pkg/config"
	"restaurant-deals/internal/pkg/errs"
)

// Refresher loads the first snapshot at start and, when an interval is
// configured, reloads it in the background. A failed reload leaves the
// previously published snapshot in place.
type Refresher struct {
	source   Source
	store    *Store
	interval time.Duration
	logger   *slog.Logger

	mu        sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
	onReplace []func(prev *restaurant.Snapshot)
}

func NewRefresher(cfg config.Config, source Source, store *Store, logger *slog.Logger) *Refresher {
	return &Refresher{
		source:   source,
		store:    store,
		interval: cfg.Upstream.RefreshInterval,
		logger:   logger,
	}
}

// OnReplace registers fn to run after a load replaces a published snapshot.
// It is not called for the first load.
func (r *Refresher) OnReplace(fn func(prev *restaurant.Snapshot)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onReplace = append(r.onReplace, fn)
}

// Load fetches one snapshot and publishes it.
func (r *Refresher) Load(ctx context.Context) error {
	start := time.Now()
	snap, err := r.source.FetchSnapshot(ctx)
	if err != nil {
		return errs.Wrap(err, "load snapshot from "+r.source.Name())
	}

	prev := r.store.Publish(snap)
	args := []any{
		"source", r.source.Name(),
		"version", snap.Version().String(),
		"restaurants", snap.Len(),
		"deals", snap.DealCount(),
		"duration", time.Since(start),
	}
	if prev != nil {
		args = append(args, "previous_version", prev.Version().String())
	}
	r.logger.Info("snapshot loaded", args...)

	if prev != nil && prev != snap {
		r.mu.Lock()
		hooks := r.onReplace
		r.mu.Unlock()
		for _, fn := range hooks {
			fn(prev)
		}
	}
	return nil
}

// Start performs the initial load, failing if it does, and then starts the
// periodic reload loop.
func (r *Refresher) Start(ctx context.Context) error {
	if err := r.Load(ctx); err != nil {
		return err
	}
	if r.interval <= 0 {
		r.logger.Info("periodic snapshot refresh disabled")
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return nil
	}
	loopCtx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})
	go r.loop(loopCtx, r.done)

	r.logger.Info("periodic snapshot refresh started", "interval", r.interval)
	return nil
}

// Stop ends the reload loop and waits for an in-flight reload to finish or for
// ctx to expire.
func (r *Refresher) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Refresher) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Load(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				r.logger.Warn("snapshot refresh failed, keeping previous snapshot", "error", err)
			}
		}
	}
}
