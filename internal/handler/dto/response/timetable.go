package response

import (
	"gongsil-api/internal/domain/slot"
	"gongsil-api/internal/usecase/queries"
)

type TimeTableDate struct {
	Date          string     `json:"date"`
	AvailableSlot []SlotItem `json:"availableSlot"`
}

type SlotItem struct {
	Slot int `json:"slot"`
}

type RangeResponse struct {
	Start int     `json:"start"`
	End   int     `json:"end"`
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

type DateSummaryResponse struct {
	Date   string          `json:"date"`
	Slots  []int           `json:"slots"`
	Ranges []RangeResponse `json:"ranges"`
	Hours  float64         `json:"hours"`
}

type SummaryResponse struct {
	Dates      []DateSummaryResponse `json:"dates"`
	TotalSlots int                   `json:"totalSlots"`
	TotalHours float64               `json:"totalHours"`
	TotalPrice int64                 `json:"totalPrice"`
}

type ReplayResponse struct {
	TimeTable []TimeTableDate `json:"timeTable"`
	Summary   SummaryResponse `json:"summary"`
	Dragging  bool            `json:"dragging"`
	Mode      string          `json:"mode"`
	Applied   int             `json:"applied"`
}

// FromEntries renders entries in the enrollmentTimeTable wire shape.
func FromEntries(entries []slot.Entry) []TimeTableDate {
	out := make([]TimeTableDate, 0, len(entries))
	for _, e := range entries {
		items := make([]SlotItem, 0, len(e.Slots))
		for _, s := range e.Slots {
			items = append(items, SlotItem{Slot: s.Int()})
		}
		out = append(out, TimeTableDate{Date: e.Date.String(), AvailableSlot: items})
	}
	return out
}

func FromSummary(s queries.TimeTableSummary) SummaryResponse {
	dates := make([]DateSummaryResponse, 0, len(s.Dates))
	for _, d := range s.Dates {
		slots := make([]int, 0, len(d.Slots))
		for _, id := range d.Slots {
			slots = append(slots, id.Int())
		}
		ranges := make([]RangeResponse, 0, len(d.Ranges))
		for _, r := range d.Ranges {
			ranges = append(ranges, RangeResponse{
				Start: r.Start.Int(),
				End:   r.End.Int(),
				Label: r.Label,
				Hours: r.Hours,
			})
		}
		dates = append(dates, DateSummaryResponse{
			Date:   d.Date.String(),
			Slots:  slots,
			Ranges: ranges,
			Hours:  d.Hours,
		})
	}
	return SummaryResponse{
		Dates:      dates,
		TotalSlots: s.TotalSlots,
		TotalHours: s.TotalHours,
		TotalPrice: s.TotalPrice,
	}
}

func FromReplayResult(r *queries.ReplayResult) *ReplayResponse {
	return &ReplayResponse{
		TimeTable: FromEntries(r.TimeTable),
		Summary:   FromSummary(r.Summary),
		Dragging:  r.Dragging,
		Mode:      r.Mode,
		Applied:   r.Applied,
	}
}
