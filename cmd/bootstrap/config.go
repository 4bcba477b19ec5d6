package bootstrap

import (
	"net/url"

	"gongsil-api/internal/pkg/config"
	"gongsil-api/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(ValidateConfig),
)

// ValidateConfig rejects settings envconfig accepts but the service cannot run with.
func ValidateConfig(cfg config.Config) error {
	u, err := url.Parse(cfg.Origin.URL)
	if err != nil {
		return errs.Wrapf(err, "ORIGIN_URL %q", cfg.Origin.URL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.Newf("ORIGIN_URL %q must be an absolute http(s) URL", cfg.Origin.URL)
	}
	if cfg.RateLimit.PerMinute <= 0 || cfg.RateLimit.Burst <= 0 {
		return errs.Newf("rate limit must be positive, got %d/min burst %d", cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
	}
	if cfg.Cache.KeyPrefix == "" {
		return errs.New("CACHE_KEY_PREFIX must not be empty")
	}
	return nil
}
