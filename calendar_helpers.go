package lunisolar

import (
	"fmt"
	"time"
)

// Month is one lunisolar month as observed by a Calendar.
type Month struct {
	Year   int
	Number int       // 1 through 12.
	Leap   bool      // Whether this is the leap month repeating Number.
	Start  time.Time // Local midnight of the first day (the new moon).
	Days   int       // 29 or 30.
}

// String formats m as YYYY-MM, with an "L" suffix for a leap month.
func (m Month) String() string {
	leap := ""
	if m.Leap {
		leap = "L"
	}
	return fmt.Sprintf("%04d-%02d%s", m.Year, m.Number, leap)
}

// End returns local midnight of the day after the month's last day.
func (m Month) End() time.Time {
	return m.Start.AddDate(0, 0, m.Days)
}

// Contains reports whether t falls within m, in m's zone.
func (m Month) Contains(t time.Time) bool {
	return !t.Before(m.Start) && t.Before(m.End())
}

// month builds the Month identified by year, number and leap.
func (c *Calendar) month(year, number int, leap bool) (Month, error) {
	k, days, err := lunation(year, number, leap, c.tz())
	if err != nil {
		return Month{}, err
	}
	day, month, y := NewMoonDay(k, c.tz()).Date()
	return Month{
		Year:   year,
		Number: number,
		Leap:   leap,
		Start:  time.Date(y, time.Month(month), day, 0, 0, 0, 0, c.zone),
		Days:   days,
	}, nil
}

// Months returns the months of lunisolar year in order, 12 or 13 of them.
// A leap month follows the regular month with the same number.
func (c *Calendar) Months(year int) ([]Month, error) {
	if err := checkYear(year); err != nil {
		return nil, err
	}
	leapNum, hasLeap := leapMonth(year, c.tz())

	result := make([]Month, 0, 13)
	for n := 1; n <= 12; n++ {
		m, err := c.month(year, n, false)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
		if hasLeap && n == leapNum {
			m, err := c.month(year, n, true)
			if err != nil {
				return nil, err
			}
			result = append(result, m)
		}
	}
	return result, nil
}

// MonthOf returns the lunisolar month containing t.
func (c *Calendar) MonthOf(t time.Time) (Month, error) {
	d, err := c.Date(t)
	if err != nil {
		return Month{}, err
	}
	return c.month(d.Year, d.Month, d.Leap)
}

// NextMonth returns the lunisolar month strictly after the one containing t.
func (c *Calendar) NextMonth(t time.Time) (Month, error) {
	m, err := c.MonthOf(t)
	if err != nil {
		return Month{}, err
	}
	return c.MonthOf(m.End())
}

// PreviousMonth returns the lunisolar month strictly before the one
// containing t.
func (c *Calendar) PreviousMonth(t time.Time) (Month, error) {
	m, err := c.MonthOf(t)
	if err != nil {
		return Month{}, err
	}
	return c.MonthOf(m.Start.AddDate(0, 0, -1))
}

// --- Package-level convenience functions ---

// Months returns the months of lunisolar year at UTC+7.
func Months(year int) ([]Month, error) { return defaultCal.Months(year) }

// MonthOf returns the lunisolar month containing t at UTC+7.
func MonthOf(t time.Time) (Month, error) { return defaultCal.MonthOf(t) }

// NextMonth returns the lunisolar month after the one containing t at UTC+7.
func NextMonth(t time.Time) (Month, error) { return defaultCal.NextMonth(t) }

// PreviousMonth returns the lunisolar month before the one containing t at UTC+7.
func PreviousMonth(t time.Time) (Month, error) { return defaultCal.PreviousMonth(t) }
