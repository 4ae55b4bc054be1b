package components

import (
	"hotel-booking-core/internal/handler"
	"hotel-booking-core/internal/handler/api"
	"hotel-booking-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewInventoryHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
