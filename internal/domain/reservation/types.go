package reservation

import "strings"

// Status is the reservation lifecycle as reported by the backend origin.
// This service only ever creates requests; the origin moves them on.
type Status string

const (
	StatusRequested Status = "requested"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}

// ParseStatus reads an origin status case-insensitively. Unknown or empty
// values read as requested, the state every new reservation starts in.
func ParseStatus(raw string) Status {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if s == "cancelled" {
		return StatusCanceled
	}
	if !s.IsValid() {
		return StatusRequested
	}
	return s
}
