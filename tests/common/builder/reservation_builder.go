//go:build unit || e2e

package builder

import (
	"time"

	"gongsil-api/internal/domain/reservation"
	"gongsil-api/internal/domain/slot"
	reqdto "gongsil-api/internal/handler/dto/request"
	"gongsil-api/internal/pkg/clock"

	"github.com/google/uuid"
)

var seoul = time.FixedZone("Asia/Seoul", 9*60*60)

type ReservationBuilder struct {
	SpaceID      uuid.UUID
	GuestName    string
	PhoneNumber  string
	People       int
	Note         string
	Entries      []slot.Entry
	MaxPeople    int
	PricePerHour int64
	Availability *slot.Store
	Now          time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		SpaceID:      uuid.New(),
		GuestName:    "김게스트",
		PhoneNumber:  "010-9876-5432",
		People:       4,
		Note:         "촬영 목적",
		Entries:      []slot.Entry{{Date: "2030-05-01", Slots: []slot.Slot{19, 20, 21}}},
		MaxPeople:    8,
		PricePerHour: 20000,
		Availability: NewSpaceBuilder().Availability(),
		Now:          time.Date(2030, 4, 30, 12, 0, 0, 0, seoul),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Services() *reservation.Services {
	return &reservation.Services{
		Clock:           clock.NewMockClock(b.Now),
		PriceCalculator: reservation.NewHourlyPriceCalculator(),
	}
}

func (b *ReservationBuilder) Spec() reservation.SpaceSpec {
	return reservation.SpaceSpec{
		ID:           b.SpaceID,
		MaxPeople:    b.MaxPeople,
		PricePerHour: b.PricePerHour,
		Availability: b.Availability,
	}
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	guest, err := reservation.NewGuest(b.GuestName, b.PhoneNumber)
	if err != nil {
		return nil, err
	}
	note, err := reservation.NewNote(b.Note)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.Services(), b.Spec(), guest, b.People, b.Entries, note)
}

func (b *ReservationBuilder) BuildRequestDTO() reqdto.CreateReservationRequest {
	table := make([]reqdto.TimeTableDate, 0, len(b.Entries))
	for _, e := range b.Entries {
		slots := make([]reqdto.SlotItem, 0, len(e.Slots))
		for _, id := range e.Slots {
			slots = append(slots, reqdto.SlotItem{Slot: id.Int()})
		}
		table = append(table, reqdto.TimeTableDate{Date: e.Date.String(), AvailableSlot: slots})
	}
	return reqdto.CreateReservationRequest{
		GuestName:   b.GuestName,
		PhoneNumber: b.PhoneNumber,
		People:      b.People,
		Note:        b.Note,
		TimeTable:   table,
	}
}
