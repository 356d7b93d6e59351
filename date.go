package lunisolar

import (
	"cmp"
	"fmt"
	"time"
)

// Date is a lunisolar calendar date. Month is always in [1, 12]; Leap
// marks the intercalary month that repeats the number of the month before it.
type Date struct {
	Year  int
	Month int
	Day   int
	Leap  bool
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String formats d as YYYY-MM-DD, with an "L" after the month number of a
// leap month (e.g. "2017-06L-01").
func (d Date) String() string {
	leap := ""
	if d.Leap {
		leap = "L"
	}
	return fmt.Sprintf("%04d-%02d%s-%02d", d.Year, d.Month, leap, d.Day)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other. A leap month sorts after the regular month of the same number.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmp.Compare(d.Year, other.Year)
	case d.Month != other.Month:
		return cmp.Compare(d.Month, other.Month)
	case d.Leap != other.Leap:
		if other.Leap {
			return -1
		}
		return 1
	default:
		return cmp.Compare(d.Day, other.Day)
	}
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is after other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// solar is the civil date and hour of an instant in a fixed zone.
type solar struct {
	year  int
	month int
	day   int
	hour  int
}

// solarFromTime normalizes t into zone before extracting the calendar
// date, so an instant always maps to the local date of the calendar.
func solarFromTime(t time.Time, zone *time.Location) solar {
	lt := t.In(zone)
	y, m, d := lt.Date()
	return solar{year: y, month: int(m), day: d, hour: lt.Hour()}
}
