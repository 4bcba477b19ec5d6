package bootstrap

import (
	"log/slog"

	"gongsil-api/internal/handler/middleware"
	"gongsil-api/internal/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

const serviceName = "gongsil-api"

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewRequestLogger,
		NewLogger,
	),
)

// NewRequestLogger also installs the configured handler as the slog default.
func NewRequestLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger().With(slog.String("service", serviceName))
}

// NewFxLogger routes container events through the service logger, at debug so
// startup noise stays out of info-level output.
func NewFxLogger(l *slog.Logger) fxevent.Logger {
	fxl := &fxevent.SlogLogger{Logger: l.With(slog.String("component", "fx"))}
	fxl.UseLogLevel(slog.LevelDebug)
	return fxl
}
