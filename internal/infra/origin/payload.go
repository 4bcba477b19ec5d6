package origin

import (
	"gongsil-api/internal/domain/reservation"
	"gongsil-api/internal/domain/slot"
	"gongsil-api/internal/domain/space"
)

type timeTableDate struct {
	Date          string     `json:"date"`
	AvailableSlot []slotItem `json:"availableSlot"`
}

type slotItem struct {
	Slot int `json:"slot"`
}

// spacePayload is the registration body the origin stores. Multipart uploads send it
// without photoList and attach the files under that name instead.
type spacePayload struct {
	Name                string          `json:"name"`
	PhoneNumber         string          `json:"phoneNumber"`
	Address             string          `json:"address"`
	Account             string          `json:"account"`
	MaxPeople           int             `json:"maxPeople"`
	Price               int64           `json:"price"`
	Memo                string          `json:"memo"`
	OptionList          []string        `json:"optionList"`
	ChipList            []string        `json:"chipList"`
	EnrollmentTimeTable []timeTableDate `json:"enrollmentTimeTable"`
	PhotoList           []string        `json:"photoList,omitempty"`
}

type spaceCreated struct {
	ID string `json:"id"`
}

type timeTableBody struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	MaxPeople           int             `json:"maxPeople"`
	Price               int64           `json:"price"`
	EnrollmentTimeTable []timeTableDate `json:"enrollmentTimeTable"`
}

type reservationPayload struct {
	GuestName   string          `json:"guestName"`
	PhoneNumber string          `json:"phoneNumber"`
	People      int             `json:"people"`
	Note        string          `json:"note,omitempty"`
	Price       int64           `json:"price"`
	TimeTable   []timeTableDate `json:"timeTable"`
}

type reservationCreated struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func toWire(entries []slot.Entry) []timeTableDate {
	out := make([]timeTableDate, 0, len(entries))
	for _, e := range entries {
		items := make([]slotItem, 0, len(e.Slots))
		for _, s := range e.Slots {
			items = append(items, slotItem{Slot: s.Int()})
		}
		out = append(out, timeTableDate{Date: e.Date.String(), AvailableSlot: items})
	}
	return out
}

// fromWire keeps raw ids; validation happens when the entries are loaded into a store.
func fromWire(table []timeTableDate) []slot.Entry {
	out := make([]slot.Entry, 0, len(table))
	for _, d := range table {
		slots := make([]slot.Slot, 0, len(d.AvailableSlot))
		for _, item := range d.AvailableSlot {
			slots = append(slots, slot.Slot(item.Slot))
		}
		out = append(out, slot.Entry{Date: slot.DateKey(d.Date), Slots: slots})
	}
	return out
}

func newSpacePayload(sp *space.Space) spacePayload {
	return spacePayload{
		Name:                sp.Name(),
		PhoneNumber:         sp.PhoneNumber(),
		Address:             sp.Address(),
		Account:             sp.Account(),
		MaxPeople:           sp.MaxPeople(),
		Price:               sp.PricePerHour(),
		Memo:                sp.Memo(),
		OptionList:          sp.OptionList(),
		ChipList:            sp.ChipList(),
		EnrollmentTimeTable: toWire(sp.TimeTable()),
	}
}

func newReservationPayload(r *reservation.Reservation) reservationPayload {
	return reservationPayload{
		GuestName:   r.Guest().Name(),
		PhoneNumber: r.Guest().PhoneNumber(),
		People:      r.People(),
		Note:        r.Note().String(),
		Price:       r.Price().Won(),
		TimeTable:   toWire(r.Entries()),
	}
}
