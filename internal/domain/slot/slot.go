// Package slot models per-date half-hour availability: slot ids, the per-date slot
// set, the contiguous-range compressor and the drag-select controller shared by the
// host registration flow and the guest reservation flow.
package slot

import (
	"fmt"
	"strconv"
	"strings"

	"gongsil-api/internal/pkg/errs"
)

const (
	First          Slot = 1
	Last           Slot = 48
	SlotsPerDay         = 48
	MinutesPerSlot      = 30
)

var (
	ErrInvalidSlot  = errs.New("slot id must be between 1 and 48")
	ErrInvalidClock = errs.New("clock label must be HH:MM")
)

// Slot n covers [(n-1)*30min, n*30min) of a calendar day.
type Slot int

// ForTime maps a time of day to the slot containing it.
func ForTime(hour, minute int) Slot {
	if minute >= 30 {
		return Slot(hour*2 + 2)
	}
	return Slot(hour*2 + 1)
}

// ForClock is ForTime for an "HH:MM" label.
func ForClock(label string) (Slot, error) {
	h, m, ok := strings.Cut(label, ":")
	if !ok {
		return 0, ErrInvalidClock
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, ErrInvalidClock
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, ErrInvalidClock
	}
	return ForTime(hour, minute), nil
}

func Parse(n int) (Slot, error) {
	s := Slot(n)
	if !s.Valid() {
		return 0, ErrInvalidSlot
	}
	return s, nil
}

// All returns 1..48 in order.
func All() []Slot {
	out := make([]Slot, 0, SlotsPerDay)
	for s := First; s <= Last; s++ {
		out = append(out, s)
	}
	return out
}

func (s Slot) Valid() bool {
	return s >= First && s <= Last
}

func (s Slot) Int() int { return int(s) }

func (s Slot) StartMinute() int {
	return (int(s) - 1) * MinutesPerSlot
}

func (s Slot) EndMinute() int {
	return s.StartMinute() + MinutesPerSlot
}

// TimeRange labels the slot boundaries; slot 48 ends at "24:00".
// Ids outside 1..48 are not checked here and produce out-of-day labels.
func (s Slot) TimeRange() (start, end string) {
	return formatMinute(s.StartMinute()), formatMinute(s.EndMinute())
}

func (s Slot) String() string {
	start, end := s.TimeRange()
	return start + "-" + end
}

func formatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
