package components

import (
	"restaurant-deals/internal/handler"
	"restaurant-deals/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRestaurantHandler,
		api.NewHealthHandler,
	),
	fx.Invoke(handler.NewRouter),
)
