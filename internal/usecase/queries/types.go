package queries

import (
	"context"
	"time"

	"gongsil-api/internal/domain/slot"

	"github.com/google/uuid"
)

// SpaceSnapshot is a space as published by the backend origin.
type SpaceSnapshot struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	MaxPeople    int          `json:"max_people"`
	PricePerHour int64        `json:"price_per_hour"`
	TimeTable    []slot.Entry `json:"time_table"`
}

type RangeView struct {
	Start slot.Slot `json:"start"`
	End   slot.Slot `json:"end"`
	Label string    `json:"label"`
	Hours float64   `json:"hours"`
}

type DateSummary struct {
	Date   slot.DateKey `json:"date"`
	Slots  []slot.Slot  `json:"slots"`
	Ranges []RangeView  `json:"ranges"`
	Hours  float64      `json:"hours"`
}

type TimeTableSummary struct {
	Dates      []DateSummary `json:"dates"`
	TotalSlots int           `json:"total_slots"`
	TotalHours float64       `json:"total_hours"`
	TotalPrice int64         `json:"total_price"`
}

type AvailabilityView struct {
	SpaceID      uuid.UUID        `json:"space_id"`
	Name         string           `json:"name"`
	MaxPeople    int              `json:"max_people"`
	PricePerHour int64            `json:"price_per_hour"`
	TimeTable    []slot.Entry     `json:"time_table"`
	Summary      TimeTableSummary `json:"summary"`
}

type QuoteView struct {
	SpaceID uuid.UUID        `json:"space_id"`
	People  int              `json:"people"`
	Summary TimeTableSummary `json:"summary"`
}

// Passthrough is an upstream response relayed to the client untouched.
type Passthrough struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type TimeTableSource interface {
	// FetchTimeTable returns the space's published slots within [from, to]; empty bounds are open.
	FetchTimeTable(ctx context.Context, spaceID uuid.UUID, from, to slot.DateKey) (*SpaceSnapshot, error)
}

type LocalSearcher interface {
	SearchLocal(ctx context.Context, params LocalSearchParams) (*Passthrough, error)
}

type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, params ReverseGeocodeParams) (*Passthrough, error)
}

// Cache returns errs.ErrCacheMiss from Get when the key is absent or caching is disabled.
type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
