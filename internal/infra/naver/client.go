package naver

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"gongsil-api/internal/infra"
	"gongsil-api/internal/pkg/config"
	"gongsil-api/internal/usecase/queries"
)

const maxBodyBytes = 4 << 20

// Client calls Naver with credentials that never leave the server.
type Client struct {
	cfg    config.NaverConfig
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg config.Config, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{cfg: cfg.Naver, http: httpClient, logger: logger}
}

func (c *Client) SearchLocal(ctx context.Context, p queries.LocalSearchParams) (*queries.Passthrough, error) {
	if c.cfg.SearchClientID == "" || c.cfg.SearchClientSecret == "" {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindMissingCredentials, 0, "naver search credentials are not set", nil)
	}

	q := url.Values{}
	setIfPresent(q, "query", p.Query)
	setIfPresent(q, "display", p.Display)
	setIfPresent(q, "start", p.Start)
	setIfPresent(q, "sort", p.Sort)

	return c.get(ctx, c.cfg.SearchURL, q, http.Header{
		"X-Naver-Client-Id":     {c.cfg.SearchClientID},
		"X-Naver-Client-Secret": {c.cfg.SearchClientSecret},
	})
}

func (c *Client) ReverseGeocode(ctx context.Context, p queries.ReverseGeocodeParams) (*queries.Passthrough, error) {
	if c.cfg.MapKeyID == "" || c.cfg.MapKey == "" {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindMissingCredentials, 0, "naver map credentials are not set", nil)
	}

	q := url.Values{}
	setIfPresent(q, "coords", p.Coords)
	setIfPresent(q, "orders", p.Orders)
	setIfPresent(q, "output", p.Output)

	return c.get(ctx, c.cfg.ReverseGeocodeURL, q, http.Header{
		"X-NCP-APIGW-API-KEY-ID": {c.cfg.MapKeyID},
		"X-NCP-APIGW-API-KEY":    {c.cfg.MapKey},
	})
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values, header http.Header) (*queries.Passthrough, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, 0, "invalid naver endpoint", err)
	}
	u.RawQuery = q.Encode()

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, 0, "build naver request", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, 0, "call naver", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, res.StatusCode, "read naver response", err)
	}

	contentType := res.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	if res.StatusCode >= http.StatusBadRequest {
		c.logger.Warn("naver answered with an error status",
			slog.String("host", u.Host),
			slog.Int("status", res.StatusCode))
	}

	return &queries.Passthrough{Status: res.StatusCode, ContentType: contentType, Body: body}, nil
}

func setIfPresent(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
