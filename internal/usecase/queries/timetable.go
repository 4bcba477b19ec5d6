package queries

import (
	"context"
	"log/slog"

	"gongsil-api/internal/domain/reservation"
	"gongsil-api/internal/domain/slot"
	"gongsil-api/internal/pkg/errs"
)

type EventKind string

const (
	EventDown  EventKind = "down"
	EventEnter EventKind = "enter"
	EventUp    EventKind = "up"
)

// PointerEvent is one recorded pointer action over the grid. Up events carry no cell.
type PointerEvent struct {
	Kind EventKind
	Date string
	Slot int
}

type ReplayInput struct {
	Mask         []slot.Entry // nil leaves every cell enabled
	Initial      []slot.Entry
	Events       []PointerEvent
	PricePerHour int64
}

type ReplayResult struct {
	TimeTable []slot.Entry     `json:"time_table"`
	Summary   TimeTableSummary `json:"summary"`
	Dragging  bool             `json:"dragging"`
	Mode      string           `json:"mode"`
	Applied   int              `json:"applied"`
}

type TimetableQueries interface {
	Summarize(ctx context.Context, entries []slot.Entry, pricePerHour int64) (*TimeTableSummary, error)
	Replay(ctx context.Context, in ReplayInput) (*ReplayResult, error)
}

type timetableQueriesImpl struct {
	priceCalculator reservation.PriceCalculator
	logger          *slog.Logger
}

func NewTimetableQueries(priceCalculator reservation.PriceCalculator, logger *slog.Logger) TimetableQueries {
	return &timetableQueriesImpl{
		priceCalculator: priceCalculator,
		logger:          logger,
	}
}

func (q *timetableQueriesImpl) Summarize(_ context.Context, entries []slot.Entry, pricePerHour int64) (*TimeTableSummary, error) {
	if pricePerHour < 0 {
		return nil, errs.Mark(reservation.ErrNegativePrice, errs.ErrDomainValidation)
	}
	store, err := slot.FromEntries(entries, nil)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	summary := Summarize(store, pricePerHour, q.priceCalculator)
	return &summary, nil
}

func (q *timetableQueriesImpl) Replay(_ context.Context, in ReplayInput) (*ReplayResult, error) {
	if in.PricePerHour < 0 {
		return nil, errs.Mark(reservation.ErrNegativePrice, errs.ErrDomainValidation)
	}

	var mask slot.Mask
	if in.Mask != nil {
		published, err := slot.FromEntries(in.Mask, nil)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		mask = published
	}

	store, err := slot.FromEntries(in.Initial, mask)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	bus := slot.NewPointerBus()
	selector := slot.NewDragSelector(store, bus)
	applied := 0

	for i, ev := range in.Events {
		switch ev.Kind {
		case EventUp:
			bus.Release()
			continue
		case EventDown, EventEnter:
		default:
			return nil, errs.Wrapf(errs.ErrInvalidGesture, "event %d: unknown kind %q", i, ev.Kind)
		}

		date, err := slot.ParseDateKey(ev.Date)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "event %d", i), errs.ErrInvalidGesture)
		}
		id, err := slot.Parse(ev.Slot)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "event %d", i), errs.ErrInvalidGesture)
		}

		var ok bool
		if ev.Kind == EventDown {
			ok = selector.PointerDown(date, id)
		} else {
			ok = selector.PointerEnter(date, id)
		}
		if ok {
			applied++
		}
	}

	q.logger.Debug("gesture replayed",
		slog.Int("events", len(in.Events)),
		slog.Int("applied", applied),
		slog.Bool("dragging", selector.Dragging()))

	return &ReplayResult{
		TimeTable: store.Entries(),
		Summary:   Summarize(store, in.PricePerHour, q.priceCalculator),
		Dragging:  selector.Dragging(),
		Mode:      selector.Mode().String(),
		Applied:   applied,
	}, nil
}

// Summarize lists every date holding at least one slot with its compressed ranges.
func Summarize(store *slot.Store, pricePerHour int64, pc reservation.PriceCalculator) TimeTableSummary {
	entries := store.Entries()
	dates := make([]DateSummary, 0, len(entries))
	for _, e := range entries {
		ranges := slot.Compress(e.Slots)
		views := make([]RangeView, 0, len(ranges))
		for _, r := range ranges {
			views = append(views, RangeView{Start: r.Start, End: r.End, Label: r.Label(), Hours: r.Hours()})
		}
		dates = append(dates, DateSummary{
			Date:   e.Date,
			Slots:  e.Slots,
			Ranges: views,
			Hours:  float64(len(e.Slots)) * 0.5,
		})
	}
	return TimeTableSummary{
		Dates:      dates,
		TotalSlots: store.TotalSlots(),
		TotalHours: store.TotalHours(),
		TotalPrice: pc.CalculatePrice(pricePerHour, store).Won(),
	}
}
