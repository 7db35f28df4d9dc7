package components

import (
	"restaurant-deals/internal/infra/cache"
	"restaurant-deals/internal/infra/snapshot"
	"restaurant-deals/internal/infra/upstream"
	"restaurant-deals/internal/usecase/queries"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	upstreamModule,
	snapshotModule,
	cacheModule,
)

var upstreamModule = fx.Module("infra/upstream",
	fx.Provide(
		fx.Annotate(
			upstream.NewClient,
			fx.As(new(snapshot.Source)),
		),
	),
)

var snapshotModule = fx.Module("infra/snapshot",
	fx.Provide(
		snapshot.NewStore,
		func(s *snapshot.Store) queries.SnapshotReader {
			return s
		},
		snapshot.NewRefresher,
	),
)

var cacheModule = fx.Module("infra/cache",
	fx.Provide(
		fx.Annotate(
			cache.NewPeakCache,
			fx.As(fx.Self()),
			fx.As(new(queries.PeakWindowCache)),
		),
	),
)
