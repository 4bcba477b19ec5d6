package reservation

import (
	"gongsil-api/internal/domain/slot"
	"gongsil-api/internal/pkg/clock"
	"gongsil-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoSlots           = errs.New("at least one slot must be requested")
	ErrPastDate          = errs.New("requested date is in the past")
	ErrInvalidPeople     = errs.New("guest count is out of range")
	ErrNegativePrice     = errs.New("price cannot be negative")
	ErrNoteTooLong       = errs.New("note is too long (max 500 characters)")
	ErrEmptyGuestName    = errs.New("guest name cannot be empty")
	ErrInvalidGuestPhone = errs.New("invalid guest phone number")
)

// SpaceSpec is what a reservation needs to know about the space it targets.
type SpaceSpec struct {
	ID           uuid.UUID
	MaxPeople    int
	PricePerHour int64
	Availability slot.Mask
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

// Reservation is a guest's request for slots inside a space's published availability.
type Reservation struct {
	spaceID uuid.UUID
	guest   Guest
	people  int
	slots   *slot.Store
	price   Money
	status  Status
	note    Note
}

func NewReservation(
	services *Services,
	sp SpaceSpec,
	guest Guest,
	people int,
	entries []slot.Entry,
	note Note,
) (*Reservation, error) {
	sel, err := NewSelection(services, sp, people, entries)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		spaceID: sp.ID,
		guest:   guest,
		people:  people,
		slots:   sel.slots,
		price:   sel.price,
		status:  StatusRequested,
		note:    note,
	}, nil
}

// Selection is a priced set of slots that passed the space's rules but has no guest yet.
type Selection struct {
	slots *slot.Store
	price Money
}

func NewSelection(services *Services, sp SpaceSpec, people int, entries []slot.Entry) (*Selection, error) {
	if sp.PricePerHour < 0 {
		return nil, ErrNegativePrice
	}
	if people < 1 || (sp.MaxPeople > 0 && people > sp.MaxPeople) {
		return nil, ErrInvalidPeople
	}

	slots, err := slot.FromEntries(entries, sp.Availability)
	if err != nil {
		return nil, err
	}
	if slots.TotalSlots() == 0 {
		return nil, ErrNoSlots
	}

	today := slot.DateKeyOf(services.Clock.Now())
	for _, e := range slots.Entries() {
		if e.Date.Before(today) {
			return nil, errs.Wrapf(ErrPastDate, "date %s", e.Date)
		}
	}

	return &Selection{
		slots: slots,
		price: services.PriceCalculator.CalculatePrice(sp.PricePerHour, slots),
	}, nil
}

func (s *Selection) Slots() *slot.Store { return s.slots }
func (s *Selection) Price() Money       { return s.price }

func (r *Reservation) SpaceID() uuid.UUID    { return r.spaceID }
func (r *Reservation) Guest() Guest          { return r.guest }
func (r *Reservation) People() int           { return r.people }
func (r *Reservation) Slots() *slot.Store    { return r.slots }
func (r *Reservation) Price() Money          { return r.price }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) Note() Note            { return r.note }
func (r *Reservation) TotalHours() float64   { return r.slots.TotalHours() }
func (r *Reservation) Entries() []slot.Entry { return r.slots.Entries() }
