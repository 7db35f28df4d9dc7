package bootstrap

import (
	"context"

	"restaurant-deals/internal/domain/restaurant"
	"restaurant-deals/internal/infra/cache"
	"restaurant-deals/internal/infra/snapshot"

	"go.uber.org/fx"
)

var SnapshotModule = fx.Module("snapshot",
	fx.Invoke(
		EvictReplacedPeaks,
		RegisterRefresher,
	),
)

// RegisterRefresher ties the first snapshot load to application start, so
// the server never begins listening without data.
func RegisterRefresher(lc fx.Lifecycle, r *snapshot.Refresher) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return r.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return r.Stop(ctx)
		},
	})
}

// EvictReplacedPeaks drops the cached peak window of a snapshot once a reload
// replaces it, since no query reads that version again.
func EvictReplacedPeaks(r *snapshot.Refresher, peaks *cache.PeakCache) {
	r.OnReplace(func(prev *restaurant.Snapshot) {
		peaks.Invalidate(prev.Version())
	})
}
