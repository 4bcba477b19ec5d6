package request

import (
	"gongsil-api/internal/domain/slot"
	"gongsil-api/internal/pkg/errs"
)

// TimeTableDate is one element of enrollmentTimeTable.
type TimeTableDate struct {
	Date          string     `json:"date" binding:"required" example:"2025-01-01"`
	AvailableSlot []SlotItem `json:"availableSlot"`
}

type SlotItem struct {
	Slot int `json:"slot" example:"19"`
}

// ToEntries validates dates and slot ids. Repeated dates are merged by the store.
func ToEntries(table []TimeTableDate) ([]slot.Entry, error) {
	entries := make([]slot.Entry, 0, len(table))
	for _, d := range table {
		date, err := slot.ParseDateKey(d.Date)
		if err != nil {
			return nil, err
		}
		slots := make([]slot.Slot, 0, len(d.AvailableSlot))
		for _, item := range d.AvailableSlot {
			id, err := slot.Parse(item.Slot)
			if err != nil {
				return nil, errs.Wrapf(err, "date %s", date)
			}
			slots = append(slots, id)
		}
		entries = append(entries, slot.Entry{Date: date, Slots: slots})
	}
	return entries, nil
}

type SummaryRequest struct {
	TimeTable    []TimeTableDate `json:"timeTable"`
	PricePerHour int64           `json:"price" example:"20000"`
}

type PointerEventRequest struct {
	Type string `json:"type" binding:"required,oneof=down enter up" example:"down"`
	Date string `json:"date,omitempty" example:"2025-01-01"`
	Slot int    `json:"slot,omitempty" example:"19"`
}

type ReplayRequest struct {
	Mask         []TimeTableDate       `json:"mask,omitempty"`
	Initial      []TimeTableDate       `json:"initial,omitempty"`
	Events       []PointerEventRequest `json:"events" binding:"required,dive"`
	PricePerHour int64                 `json:"price"`
}
