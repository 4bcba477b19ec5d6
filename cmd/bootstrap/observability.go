package bootstrap

import (
	"context"
	"log/slog"

	"gongsil-api/internal/handler/api"
	"gongsil-api/internal/infra/cache"
	"gongsil-api/internal/infra/origin"
	"gongsil-api/internal/pkg/config"
	"gongsil-api/internal/pkg/metrics"
	"gongsil-api/internal/pkg/readiness"

	"go.uber.org/fx"
)

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		metrics.NewService,
		fx.Annotate(
			NewReadinessGate,
			fx.As(fx.Self()),
			fx.As(new(api.ReadinessGate)),
		),
	),
)

// NewReadinessGate polls the origin (and Redis when configured) in the background after start.
func NewReadinessGate(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger, originClient *origin.Client, redisCache *cache.RedisCache) *readiness.Gate {
	checks := []readiness.Check{
		{Name: "origin", Check: originClient.Ping},
	}
	if redisCache.Enabled() {
		checks = append(checks, readiness.Check{Name: "redis", Check: redisCache.Ping})
	}

	gate := readiness.NewGate(cfg.Readiness, logger, checks...)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gate.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})

	return gate
}
