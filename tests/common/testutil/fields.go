//go:build unit || e2e

package testutil

// Field sets key on a request map, or deletes it when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Day builds one timetable entry in wire shape:
// {"date": date, "availableSlot": [{"slot": n}, ...]}.
func Day(date string, slots ...int) map[string]any {
	available := make([]map[string]int, 0, len(slots))
	for _, s := range slots {
		available = append(available, map[string]int{"slot": s})
	}
	return map[string]any{"date": date, "availableSlot": available}
}

// TimeTable collects Day entries, in the order given.
func TimeTable(days ...map[string]any) []map[string]any {
	return days
}
