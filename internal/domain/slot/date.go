package slot

import (
	"time"

	"gongsil-api/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errs.New("date must be formatted as yyyy-MM-dd")

// DateKey is a calendar date in canonical ISO form. Canonical keys sort
// lexicographically in calendar order.
type DateKey string

func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", errs.Wrapf(ErrInvalidDate, "parse date %q", s)
	}
	return DateKey(t.Format(DateLayout)), nil
}

// DateKeyOf formats the local calendar date of t.
func DateKeyOf(t time.Time) DateKey {
	return DateKey(t.Format(DateLayout))
}

func (d DateKey) String() string { return string(d) }

func (d DateKey) Before(other DateKey) bool { return d < other }

// Time returns midnight of the date in loc.
func (d DateKey) Time(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, string(d), loc)
	if err != nil {
		return time.Time{}, errs.Wrapf(ErrInvalidDate, "date %q", string(d))
	}
	return t, nil
}
