package originproxy

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"gongsil-api/internal/pkg/config"
	"gongsil-api/internal/pkg/errs"
)

// Prefix is the path segment the router mounts the proxy under. It is stripped before forwarding.
const Prefix = "/origin"

// New returns a reverse proxy to the backend origin. Method, query, body and headers pass
// through; the response streams back with the origin's CORS headers removed.
func New(cfg config.OriginConfig, transport http.RoundTripper, logger *slog.Logger) (http.Handler, error) {
	target, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, errs.Wrapf(err, "parse origin url %q", cfg.URL)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, errs.Newf("origin url %q must be absolute", cfg.URL)
	}

	return &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.Out.URL.Path = stripPrefix(r.In.URL.Path)
			r.Out.URL.RawPath = ""
			r.SetURL(target)
			r.Out.Host = target.Host
			r.SetXForwarded()
		},
		Transport:     transport,
		FlushInterval: -1,
		ModifyResponse: func(res *http.Response) error {
			for name := range res.Header {
				if strings.HasPrefix(http.CanonicalHeaderKey(name), "Access-Control-") {
					res.Header.Del(name)
				}
			}
			return nil
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error("origin proxy failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("error", err.Error()))
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("Proxy error: " + err.Error()))
		},
	}, nil
}

func stripPrefix(path string) string {
	rest := strings.TrimPrefix(path, Prefix)
	if rest == "" || rest[0] != '/' {
		rest = "/" + rest
	}
	return rest
}
