package queries

import (
	"context"
	"log/slog"

	"gongsil-api/internal/domain/reservation"
	"gongsil-api/internal/domain/slot"
	"gongsil-api/internal/infra"
	"gongsil-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type QuoteInput struct {
	People    int
	TimeTable []slot.Entry
}

type ReservationQueries interface {
	Quote(ctx context.Context, spaceID uuid.UUID, in QuoteInput) (*QuoteView, error)
}

type reservationQueriesImpl struct {
	source   TimeTableSource
	services *reservation.Services
	logger   *slog.Logger
}

func NewReservationQueries(source TimeTableSource, services *reservation.Services, logger *slog.Logger) ReservationQueries {
	return &reservationQueriesImpl{
		source:   source,
		services: services,
		logger:   logger,
	}
}

// Quote prices the requested slots against the space's current availability without submitting anything.
func (q *reservationQueriesImpl) Quote(ctx context.Context, spaceID uuid.UUID, in QuoteInput) (*QuoteView, error) {
	spec, err := LoadSpec(ctx, q.source, spaceID, in.TimeTable)
	if err != nil {
		return nil, err
	}

	sel, err := reservation.NewSelection(q.services, spec, in.People, in.TimeTable)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	q.logger.Debug("reservation quoted",
		slog.String("space_id", spaceID.String()),
		slog.Int64("price", sel.Price().Won()))

	return &QuoteView{
		SpaceID: spaceID,
		People:  in.People,
		Summary: Summarize(sel.Slots(), spec.PricePerHour, q.services.PriceCalculator),
	}, nil
}

// LoadSpec fetches the published timetable covering the requested dates, uncached.
func LoadSpec(ctx context.Context, source TimeTableSource, spaceID uuid.UUID, requested []slot.Entry) (reservation.SpaceSpec, error) {
	var from, to slot.DateKey
	for _, e := range requested {
		if from == "" || e.Date.Before(from) {
			from = e.Date
		}
		if to == "" || to.Before(e.Date) {
			to = e.Date
		}
	}

	snapshot, err := source.FetchTimeTable(ctx, spaceID, from, to)
	if err != nil {
		return reservation.SpaceSpec{}, infra.MarkUpstream(err)
	}
	published, err := slot.FromEntries(snapshot.TimeTable, nil)
	if err != nil {
		return reservation.SpaceSpec{}, errs.Mark(errs.Wrap(err, "origin returned an invalid timetable"), errs.ErrUpstreamUnavailable)
	}

	return reservation.SpaceSpec{
		ID:           spaceID,
		MaxPeople:    snapshot.MaxPeople,
		PricePerHour: snapshot.PricePerHour,
		Availability: published,
	}, nil
}
