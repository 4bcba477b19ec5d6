package bootstrap

import (
	"net/http"
	"time"

	"gongsil-api/internal/pkg/config"
	"gongsil-api/internal/pkg/metrics"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
)

// UpstreamClients share one transport; only the timeouts differ.
type UpstreamClients struct {
	fx.Out

	Naver  *http.Client `name:"naver"`
	Origin *http.Client `name:"origin"`
}

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		fx.Annotate(
			NewUpstreamTransport,
			fx.ResultTags(`name:"upstream"`),
		),
		fx.Annotate(
			NewUpstreamClients,
			fx.ParamTags(``, `name:"upstream"`),
		),
	),
)

func NewUpstreamTransport(m *metrics.Service) http.RoundTripper {
	base := http.DefaultTransport.(*http.Transport).Clone()
	base.MaxIdleConnsPerHost = 32
	base.IdleConnTimeout = 90 * time.Second
	return otelhttp.NewTransport(m.InstrumentTransport(base))
}

func NewUpstreamClients(cfg config.Config, transport http.RoundTripper) UpstreamClients {
	return UpstreamClients{
		Naver:  &http.Client{Transport: transport, Timeout: cfg.Naver.Timeout},
		Origin: &http.Client{Transport: transport, Timeout: cfg.Origin.Timeout},
	}
}
