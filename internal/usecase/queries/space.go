package queries

import (
	"context"
	"log/slog"
	"time"

	"gongsil-api/internal/domain/reservation"
	"gongsil-api/internal/domain/slot"
	"gongsil-api/internal/infra"
	"gongsil-api/internal/pkg/config"
	"gongsil-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type SpaceQueries interface {
	Availability(ctx context.Context, spaceID uuid.UUID, from, to slot.DateKey) (*AvailabilityView, error)
}

type spaceQueriesImpl struct {
	source          TimeTableSource
	cache           Cache
	priceCalculator reservation.PriceCalculator
	ttl             time.Duration
	keyPrefix       string
	logger          *slog.Logger
}

func NewSpaceQueries(
	source TimeTableSource,
	cache Cache,
	priceCalculator reservation.PriceCalculator,
	cfg config.Config,
	logger *slog.Logger,
) SpaceQueries {
	return &spaceQueriesImpl{
		source:          source,
		cache:           cache,
		priceCalculator: priceCalculator,
		ttl:             cfg.Cache.AvailabilityTTL,
		keyPrefix:       cfg.Cache.KeyPrefix,
		logger:          logger,
	}
}

func (q *spaceQueriesImpl) Availability(ctx context.Context, spaceID uuid.UUID, from, to slot.DateKey) (*AvailabilityView, error) {
	if from != "" && to != "" && to.Before(from) {
		return nil, errs.Mark(errs.Newf("range %s..%s is reversed", from, to), errs.ErrDomainValidation)
	}

	key := q.keyPrefix + ":availability:" + spaceID.String() + ":" + from.String() + ":" + to.String()

	var snapshot SpaceSnapshot
	err := q.cache.Get(ctx, key, &snapshot)
	switch {
	case err == nil:
	case errs.Is(err, errs.ErrCacheMiss):
		fetched, fetchErr := q.source.FetchTimeTable(ctx, spaceID, from, to)
		if fetchErr != nil {
			return nil, infra.MarkUpstream(fetchErr)
		}
		snapshot = *fetched
		if setErr := q.cache.Set(ctx, key, snapshot, q.ttl); setErr != nil {
			q.logger.Warn("failed to cache availability", slog.String("key", key), slog.String("error", setErr.Error()))
		}
	default:
		return nil, errs.Wrap(err, "read availability cache")
	}

	published, err := slot.FromEntries(clipEntries(snapshot.TimeTable, from, to), nil)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "origin returned an invalid timetable"), errs.ErrUpstreamUnavailable)
	}

	return &AvailabilityView{
		SpaceID:      spaceID,
		Name:         snapshot.Name,
		MaxPeople:    snapshot.MaxPeople,
		PricePerHour: snapshot.PricePerHour,
		TimeTable:    published.Entries(),
		Summary:      Summarize(published, snapshot.PricePerHour, q.priceCalculator),
	}, nil
}

// clipEntries keeps entries dated within [from, to]; empty bounds are open.
func clipEntries(entries []slot.Entry, from, to slot.DateKey) []slot.Entry {
	out := make([]slot.Entry, 0, len(entries))
	for _, e := range entries {
		if from != "" && e.Date.Before(from) {
			continue
		}
		if to != "" && to.Before(e.Date) {
			continue
		}
		out = append(out, e)
	}
	return out
}
