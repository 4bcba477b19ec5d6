package components

import (
	"log/slog"
	"net/http"

	"gongsil-api/internal/infra/cache"
	"gongsil-api/internal/infra/naver"
	"gongsil-api/internal/infra/origin"
	"gongsil-api/internal/infra/originproxy"
	"gongsil-api/internal/pkg/config"
	"gongsil-api/internal/usecase/commands"
	"gongsil-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	upstreamModule,
	cacheModule,
)

var upstreamModule = fx.Module("infra/upstream",
	fx.Provide(
		// Naver
		fx.Annotate(
			naver.NewClient,
			fx.ParamTags(``, `name:"naver"`),
			fx.As(new(queries.LocalSearcher)),
			fx.As(new(queries.ReverseGeocoder)),
		),
		// Origin API
		fx.Annotate(
			origin.NewClient,
			fx.ParamTags(``, `name:"origin"`),
			fx.As(fx.Self()),
			fx.As(new(commands.SpaceGateway)),
			fx.As(new(commands.ReservationGateway)),
			fx.As(new(queries.TimeTableSource)),
		),
		// Origin proxy
		fx.Annotate(
			NewOriginProxy,
			fx.ParamTags(``, `name:"upstream"`),
			fx.ResultTags(`name:"origin-proxy"`),
		),
	),
)

var cacheModule = fx.Module("infra/cache",
	fx.Provide(
		fx.Annotate(
			cache.NewRedisCache,
			fx.As(fx.Self()),
			fx.As(new(queries.Cache)),
			fx.As(new(commands.CacheInvalidator)),
		),
	),
)

func NewOriginProxy(cfg config.Config, transport http.RoundTripper, logger *slog.Logger) (http.Handler, error) {
	return originproxy.New(cfg.Origin, transport, logger)
}
