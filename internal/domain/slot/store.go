package slot

import (
	"maps"
	"slices"

	"gongsil-api/internal/pkg/errs"
)

var ErrSlotNotAllowed = errs.New("slot is not in the published availability")

// Mask restricts which cells of a Store can be toggled.
type Mask interface {
	Allows(date DateKey, s Slot) bool
}

// Entry is one date of a Store in wire order.
type Entry struct {
	Date  DateKey
	Slots []Slot
}

// Store holds the selected slots per date (SlotsByDate). A date present with an
// empty set is selected without slots; an absent date is not under consideration.
// A Store has a single owner and is not safe for concurrent use.
type Store struct {
	dates map[DateKey]map[Slot]struct{}
	mask  Mask
}

func NewStore() *Store {
	return &Store{dates: make(map[DateKey]map[Slot]struct{})}
}

// NewMaskedStore only lets cells allowed by mask be set.
func NewMaskedStore(mask Mask) *Store {
	s := NewStore()
	s.mask = mask
	return s
}

// FromEntries loads entries, rejecting ids outside 1..48 and cells outside the mask.
func FromEntries(entries []Entry, mask Mask) (*Store, error) {
	s := NewMaskedStore(mask)
	for _, e := range entries {
		if _, err := ParseDateKey(string(e.Date)); err != nil {
			return nil, err
		}
		s.SelectDate(e.Date)
		for _, id := range e.Slots {
			if !id.Valid() {
				return nil, errs.Wrapf(ErrInvalidSlot, "date %s slot %d", e.Date, int(id))
			}
			if mask != nil && !mask.Allows(e.Date, id) {
				return nil, errs.Wrapf(ErrSlotNotAllowed, "date %s slot %d", e.Date, int(id))
			}
			s.SetSlot(e.Date, id, true)
		}
	}
	return s, nil
}

// Enabled reports whether the cell may be toggled at all.
func (s *Store) Enabled(date DateKey, id Slot) bool {
	if !id.Valid() {
		return false
	}
	return s.mask == nil || s.mask.Allows(date, id)
}

// Allows makes a Store usable as the mask of another Store.
func (s *Store) Allows(date DateKey, id Slot) bool {
	return s.Has(date, id)
}

func (s *Store) SelectDate(date DateKey) {
	if _, ok := s.dates[date]; !ok {
		s.dates[date] = make(map[Slot]struct{})
	}
}

func (s *Store) RemoveDate(date DateKey) {
	delete(s.dates, date)
}

func (s *Store) Reset() {
	clear(s.dates)
}

// SetSlot is idempotent. Disabled cells are left untouched.
func (s *Store) SetSlot(date DateKey, id Slot, on bool) {
	if !s.Enabled(date, id) {
		return
	}
	s.SelectDate(date)
	if on {
		s.dates[date][id] = struct{}{}
		return
	}
	delete(s.dates[date], id)
}

// SetAllForDate selects every enabled slot of the date, or none.
func (s *Store) SetAllForDate(date DateKey, on bool) {
	set := make(map[Slot]struct{}, SlotsPerDay)
	if on {
		for _, id := range All() {
			if s.Enabled(date, id) {
				set[id] = struct{}{}
			}
		}
	}
	s.dates[date] = set
}

func (s *Store) Has(date DateKey, id Slot) bool {
	_, ok := s.dates[date][id]
	return ok
}

func (s *Store) HasDate(date DateKey) bool {
	_, ok := s.dates[date]
	return ok
}

func (s *Store) Len(date DateKey) int {
	return len(s.dates[date])
}

// Dates returns every selected date, including dates without slots, ascending.
func (s *Store) Dates() []DateKey {
	return slices.Sorted(maps.Keys(s.dates))
}

func (s *Store) Slots(date DateKey) []Slot {
	return slices.Sorted(maps.Keys(s.dates[date]))
}

func (s *Store) Ranges(date DateKey) []Range {
	return Compress(s.Slots(date))
}

func (s *Store) TotalSlots() int {
	total := 0
	for _, set := range s.dates {
		total += len(set)
	}
	return total
}

func (s *Store) TotalHours() float64 {
	return float64(s.TotalSlots()) * 0.5
}

// Entries lists dates ascending with their slots ascending; dates without slots are dropped.
func (s *Store) Entries() []Entry {
	out := make([]Entry, 0, len(s.dates))
	for _, date := range s.Dates() {
		if s.Len(date) == 0 {
			continue
		}
		out = append(out, Entry{Date: date, Slots: s.Slots(date)})
	}
	return out
}
