package slot

import "slices"

// Range is a maximal run of consecutive slot ids, Start <= End.
type Range struct {
	Start Slot
	End   Slot
}

// Compress sorts the slots and folds consecutive ids into ranges.
// Duplicates are ignored; empty input yields no ranges.
func Compress(slots []Slot) []Range {
	if len(slots) == 0 {
		return nil
	}
	sorted := slices.Clone(slots)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	ranges := make([]Range, 0, 1)
	cur := Range{Start: sorted[0], End: sorted[0]}
	for _, s := range sorted[1:] {
		if s == cur.End+1 {
			cur.End = s
			continue
		}
		ranges = append(ranges, cur)
		cur = Range{Start: s, End: s}
	}
	return append(ranges, cur)
}

func (r Range) Len() int {
	return int(r.End-r.Start) + 1
}

func (r Range) Hours() float64 {
	return float64(r.Len()) * 0.5
}

// TimeRange uses the start boundary of Start and the end boundary of End.
func (r Range) TimeRange() (start, end string) {
	start, _ = r.Start.TimeRange()
	_, end = r.End.TimeRange()
	return start, end
}

func (r Range) Label() string {
	start, end := r.TimeRange()
	return start + " - " + end
}
