package components

import (
	"smart-parking/internal/handler"
	"smart-parking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewReservationHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(handler.NewRouter),
)
