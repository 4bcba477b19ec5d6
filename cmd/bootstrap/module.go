package bootstrap

import (
	"gongsil-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	fx.WithLogger(NewFxLogger),
	ObservabilityModule,
	RedisModule,
	UpstreamModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
