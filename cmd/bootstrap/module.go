package bootstrap

import (
	"restaurant-deals/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.UseCaseModule,
	components.InfraModule,
	SnapshotModule,
	components.HandlerModule,
)
