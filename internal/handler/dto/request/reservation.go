package request

import (
	"gongsil-api/internal/domain/reservation"
)

type QuoteReservationRequest struct {
	People    int             `json:"people" binding:"required,min=1"`
	TimeTable []TimeTableDate `json:"timeTable" binding:"required"`
}

type CreateReservationRequest struct {
	GuestName   string          `json:"guestName" binding:"required"`
	PhoneNumber string          `json:"phoneNumber" binding:"required"`
	People      int             `json:"people" binding:"required,min=1"`
	Note        string          `json:"note"`
	TimeTable   []TimeTableDate `json:"timeTable" binding:"required"`
}

func (r CreateReservationRequest) ToDomain(
	services *reservation.Services,
	spec reservation.SpaceSpec,
) (*reservation.Reservation, error) {
	guest, err := reservation.NewGuest(r.GuestName, r.PhoneNumber)
	if err != nil {
		return nil, err
	}
	note, err := reservation.NewNote(r.Note)
	if err != nil {
		return nil, err
	}
	entries, err := ToEntries(r.TimeTable)
	if err != nil {
		return nil, err
	}

	return reservation.NewReservation(services, spec, guest, r.People, entries, note)
}
