// Package lunisolar converts solar (Gregorian) dates into the East-Asian
// lunisolar calendar and labels them with sexagenary stems and branches.
//
// The conversion follows Ho Ngoc Duc's published algorithm, which evaluates a
// truncated new moon series and the sun's ecliptic longitude at a fixed
// timezone offset. The offset matters: the same instant can fall in different
// lunisolar months at UTC+7 (Vietnam) and UTC+8 (China). Supported solar
// years are [MinYear, MaxYear].
//
// All time.Time inputs are normalized to the calendar's fixed zone before
// extracting the calendar date, so the lunisolar date of an instant does not
// depend on the location it was created in.
//
// Basic usage with package-level functions (UTC+7):
//
//	t := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
//	d, _ := lunisolar.DateOf(t)  // 2024-01-01
//	l, _ := lunisolar.LabelsAt(t) // l.Year == HS1-EB5
//
// For another offset, create a Calendar instance:
//
//	cn := lunisolar.New(8)
//	ny, _ := cn.NewYear(2024)
package lunisolar

import (
	"fmt"
	"time"
)

// DefaultOffset is the timezone offset, in hours east of UTC, of the
// package-level functions.
const DefaultOffset = 7

// Calendar converts instants at one fixed timezone offset. Create one with
// [New]. A Calendar is immutable and safe for concurrent use.
type Calendar struct {
	offset int
	zone   *time.Location
}

// New creates a Calendar for a timezone offset of offsetHours east of UTC.
func New(offsetHours int) *Calendar {
	return &Calendar{
		offset: offsetHours,
		zone:   time.FixedZone(zoneName(offsetHours), offsetHours*60*60),
	}
}

func zoneName(offsetHours int) string {
	if offsetHours == 0 {
		return "UTC"
	}
	return fmt.Sprintf("UTC%+d", offsetHours)
}

// defaultCal is the package-level calendar used by top-level functions.
var defaultCal = New(DefaultOffset)

func (c *Calendar) tz() float64 {
	return float64(c.offset)
}

// Offset returns the calendar's timezone offset in hours east of UTC.
func (c *Calendar) Offset() int {
	return c.offset
}

// Location returns the fixed zone the calendar normalizes instants into.
func (c *Calendar) Location() *time.Location {
	return c.zone
}

// Date returns the lunisolar date of t. The input time is converted to the
// calendar's zone before extracting the solar date. It returns
// ErrOutOfRange when that solar year is not supported.
func (c *Calendar) Date(t time.Time) (Date, error) {
	s := solarFromTime(t, c.zone)
	return FromSolar(s.day, s.month, s.year, c.tz())
}

// Labels returns the sexagenary year, month, day and hour labels of t.
func (c *Calendar) Labels(t time.Time) (Labels, error) {
	s := solarFromTime(t, c.zone)
	d, err := FromSolar(s.day, s.month, s.year, c.tz())
	if err != nil {
		return Labels{}, err
	}
	return LabelsOf(d, s.hour, s.day, s.month, s.year), nil
}

// Solar returns local midnight, in the calendar's zone, of the solar day
// matching d. It returns ErrNotRepresentable when d names a month or day
// that does not exist.
func (c *Calendar) Solar(d Date) (time.Time, error) {
	day, month, year, err := ToSolar(d, c.tz())
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, c.zone), nil
}

// NewYear returns the first day of lunisolar year (Tết, Chūnjié).
func (c *Calendar) NewYear(year int) (time.Time, error) {
	if err := checkYear(year); err != nil {
		return time.Time{}, err
	}
	return c.Solar(Date{Year: year, Month: 1, Day: 1})
}

// LeapMonth returns the number of the leap month of lunisolar year and
// whether the year has one.
func (c *Calendar) LeapMonth(year int) (int, bool, error) {
	if err := checkYear(year); err != nil {
		return 0, false, err
	}
	m, ok := leapMonth(year, c.tz())
	return m, ok, nil
}

func checkYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, year, MinYear, MaxYear)
	}
	return nil
}

// --- Package-level convenience functions ---

// DateOf returns the lunisolar date of t at UTC+7.
func DateOf(t time.Time) (Date, error) { return defaultCal.Date(t) }

// LabelsAt returns the sexagenary labels of t at UTC+7.
func LabelsAt(t time.Time) (Labels, error) { return defaultCal.Labels(t) }

// SolarOf returns the UTC+7 midnight of the solar day matching d.
func SolarOf(d Date) (time.Time, error) { return defaultCal.Solar(d) }

// NewYear returns the first day of lunisolar year at UTC+7.
func NewYear(year int) (time.Time, error) { return defaultCal.NewYear(year) }

// LeapMonth returns the leap month of lunisolar year at UTC+7.
func LeapMonth(year int) (int, bool, error) { return defaultCal.LeapMonth(year) }
