package queries

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gongsil-api/internal/infra"
	"gongsil-api/internal/pkg/config"
	"gongsil-api/internal/pkg/errs"
)

// LocalSearchParams mirrors the Naver Local Search query string. Empty values are left out.
type LocalSearchParams struct {
	Query   string
	Display string
	Start   string
	Sort    string
}

type ReverseGeocodeParams struct {
	Coords string
	Orders string
	Output string
}

type LocationQueries interface {
	SearchLocal(ctx context.Context, params LocalSearchParams) (*Passthrough, error)
	ReverseGeocode(ctx context.Context, params ReverseGeocodeParams) (*Passthrough, error)
}

type locationQueriesImpl struct {
	searcher  LocalSearcher
	geocoder  ReverseGeocoder
	cache     Cache
	ttl       time.Duration
	keyPrefix string
	logger    *slog.Logger
}

func NewLocationQueries(
	searcher LocalSearcher,
	geocoder ReverseGeocoder,
	cache Cache,
	cfg config.Config,
	logger *slog.Logger,
) LocationQueries {
	return &locationQueriesImpl{
		searcher:  searcher,
		geocoder:  geocoder,
		cache:     cache,
		ttl:       cfg.Cache.LocalSearchTTL,
		keyPrefix: cfg.Cache.KeyPrefix,
		logger:    logger,
	}
}

// SearchLocal relays the upstream answer as is. Only 200 answers are cached.
func (q *locationQueriesImpl) SearchLocal(ctx context.Context, params LocalSearchParams) (*Passthrough, error) {
	key := q.localSearchKey(params)

	var cached Passthrough
	if err := q.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	} else if !errs.Is(err, errs.ErrCacheMiss) {
		q.logger.Warn("local search cache read failed", slog.String("error", err.Error()))
	}

	res, err := q.searcher.SearchLocal(ctx, params)
	if err != nil {
		return nil, infra.MarkUpstream(err)
	}

	if res.Status == http.StatusOK {
		if err := q.cache.Set(ctx, key, res, q.ttl); err != nil {
			q.logger.Warn("local search cache write failed", slog.String("error", err.Error()))
		}
	}
	return res, nil
}

func (q *locationQueriesImpl) ReverseGeocode(ctx context.Context, params ReverseGeocodeParams) (*Passthrough, error) {
	res, err := q.geocoder.ReverseGeocode(ctx, params)
	if err != nil {
		return nil, infra.MarkUpstream(err)
	}
	return res, nil
}

// localSearchKey normalizes the query so that "  Cafe " and "cafe" share an entry.
func (q *locationQueriesImpl) localSearchKey(p LocalSearchParams) string {
	normalized := strings.Join([]string{
		strings.ToLower(strings.Join(strings.Fields(p.Query), " ")),
		strings.TrimSpace(p.Display),
		strings.TrimSpace(p.Start),
		strings.ToLower(strings.TrimSpace(p.Sort)),
	}, "|")
	sum := sha256.Sum256([]byte(normalized))
	return q.keyPrefix + ":local-search:" + hex.EncodeToString(sum[:])
}
