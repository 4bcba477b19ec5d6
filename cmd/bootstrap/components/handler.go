package components

import (
	"gongsil-api/internal/handler"
	"gongsil-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHealthHandler,
		api.NewLocationHandler,
		fx.Annotate(
			api.NewOriginHandler,
			fx.ParamTags(`name:"origin-proxy"`),
		),
		api.NewSpaceHandler,
		api.NewReservationHandler,
		api.NewTimetableHandler,
	),
	fx.Invoke(handler.NewRouter),
)
