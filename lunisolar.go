package lunisolar

import (
	"errors"
	"fmt"
	"math"
)

// Supported solar year range of the forward conversion. The new moon and
// solar longitude series are only accurate near this era.
const (
	MinYear = 1900
	MaxYear = 2100
)

// NewMoonEpoch is the Julian date of the new moon that lunation index 0
// refers to, and SynodicMonth the mean lunation length in days.
const (
	NewMoonEpoch = 2415021.076998695
	SynodicMonth = 29.530588853
)

// leapScanLimit caps the search for the month without a sector crossing.
const leapScanLimit = 14

var (
	// ErrOutOfRange is returned for years outside the supported range.
	ErrOutOfRange = errors.New("lunisolar: year out of range")

	// ErrNotRepresentable is returned by the lunisolar to solar conversion
	// when no solar date exists for the requested lunisolar date.
	ErrNotRepresentable = errors.New("lunisolar: date not representable")
)

// FromSolar converts the solar date day/month/year, observed at a timezone
// offset of tz hours east of UTC, into a lunisolar date.
func FromSolar(day, month, year int, tz float64) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, year, MinYear, MaxYear)
	}

	dayNumber := JulianDayNumber(day, month, year)
	k := int(math.Floor((float64(dayNumber) - NewMoonEpoch) / SynodicMonth))
	monthStart := NewMoonDay(k+1, tz)
	// The k-th new moon itself can land a day after dayNumber when the
	// periodic terms push it past the mean lunation, so step back at most twice.
	for i := 0; i < 2 && monthStart > dayNumber; i++ {
		monthStart = NewMoonDay(k-i, tz)
	}

	a11 := month11(year, tz)
	b11 := a11
	var lunarYear int
	if a11 >= monthStart {
		lunarYear = year
		a11 = month11(year-1, tz)
	} else {
		lunarYear = year + 1
		b11 = month11(year+1, tz)
	}

	diff := int(float64(monthStart-a11) / 29)
	lunarMonth := diff + 11
	leap := false
	if b11-a11 > 365 {
		leapOff := leapMonthOffset(a11, tz)
		if diff >= leapOff {
			lunarMonth = diff + 10
			leap = diff == leapOff
		}
	}
	if lunarMonth > 12 {
		lunarMonth -= 12
	}
	if lunarMonth >= 11 && diff < 4 {
		lunarYear--
	}

	return Date{
		Year:  lunarYear,
		Month: lunarMonth,
		Day:   int(dayNumber-monthStart) + 1,
		Leap:  leap,
	}, nil
}

// ToSolar converts a lunisolar date, observed at a timezone offset of tz
// hours east of UTC, back into a solar day/month/year.
//
// It returns ErrNotRepresentable when d claims a leap month the year does
// not have, or when d.Month or d.Day do not exist in that year.
func ToSolar(d Date, tz float64) (day, month, year int, err error) {
	k, length, err := lunation(d.Year, d.Month, d.Leap, tz)
	if err != nil {
		return 0, 0, 0, err
	}
	if d.Day < 1 || d.Day > length {
		return 0, 0, 0, fmt.Errorf("%w: %v has %d days", ErrNotRepresentable, d, length)
	}
	day, month, year = (NewMoonDay(k, tz) + JulianDay(d.Day-1)).Date()
	return day, month, year, nil
}

// lunation returns the lunation index starting the given lunisolar month
// and the month's length in days.
func lunation(year, month int, leap bool, tz float64) (k, length int, err error) {
	// Early January of MinYear falls in the lunisolar year before it.
	if year < MinYear-1 || year > MaxYear {
		return 0, 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, year, MinYear-1, MaxYear)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: month %d", ErrNotRepresentable, month)
	}

	var a11, b11 JulianDay
	if month < 11 {
		a11 = month11(year-1, tz)
		b11 = month11(year, tz)
	} else {
		a11 = month11(year, tz)
		b11 = month11(year+1, tz)
	}

	off := month - 11
	if off < 0 {
		off += 12
	}
	if b11-a11 > 365 {
		leapOff := leapMonthOffset(a11, tz)
		leapNum := leapOff - 2
		if leapNum < 0 {
			leapNum += 12
		}
		if leap && month != leapNum {
			return 0, 0, fmt.Errorf("%w: year %d has no leap month %d", ErrNotRepresentable, year, month)
		}
		if leap || off >= leapOff {
			off++
		}
	} else if leap {
		return 0, 0, fmt.Errorf("%w: year %d has no leap month", ErrNotRepresentable, year)
	}

	k = lunationIndex(a11) + off
	return k, int(NewMoonDay(k+1, tz) - NewMoonDay(k, tz)), nil
}

// lunationIndex returns the index of the new moon starting on day jd.
func lunationIndex(jd JulianDay) int {
	return int(math.Floor((float64(jd)-NewMoonEpoch)/SynodicMonth + 0.5))
}

// month11 returns the day number starting lunisolar month 11 of year: the
// last new moon on or before the December solstice.
func month11(year int, tz float64) JulianDay {
	off := float64(JulianDayNumber(31, 12, year)) - 2415021
	k := int(off / SynodicMonth)
	nm := NewMoonDay(k, tz)
	if SunLongitude(nm, tz) >= 9 {
		nm = NewMoonDay(k-1, tz)
	}
	return nm
}

// leapMonthOffset returns the offset, counted in months after month 11
// starting at a11, of the first month during which the sun does not leave
// its ecliptic sector. The scan stops at leapScanLimit.
func leapMonthOffset(a11 JulianDay, tz float64) int {
	k := lunationIndex(a11)
	arc := SunSector(NewMoonDay(k+1, tz), tz)
	for i := 2; ; i++ {
		last := arc
		arc = SunSector(NewMoonDay(k+i, tz), tz)
		if arc == last || i == leapScanLimit {
			return i - 1
		}
	}
}

// leapMonth returns the number of the leap month of lunisolar year, if it
// has one. A leap month 11 or 12 belongs to the interval anchored at the
// year's own month 11; any other belongs to the interval before it.
func leapMonth(year int, tz float64) (int, bool) {
	for _, anchor := range []int{year - 1, year} {
		a11 := month11(anchor, tz)
		b11 := month11(anchor+1, tz)
		if b11-a11 <= 365 {
			continue
		}
		m := leapMonthOffset(a11, tz) - 2
		if m < 0 {
			m += 12
		}
		if (anchor == year) == (m >= 11) {
			return m, true
		}
	}
	return 0, false
}
