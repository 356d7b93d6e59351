package lunisolar

// GregorianCutover is the first Julian Day Number of the Gregorian calendar
// (October 15, 1582). Earlier day numbers are interpreted in the Julian calendar.
const GregorianCutover JulianDay = 2299161

// JulianDay is an integer Julian Day Number: a continuous count of days
// used as a calendar-agnostic timeline.
type JulianDay int

// JulianDayNumber returns the Julian Day Number of the given solar date.
// Dates before the Gregorian cutover are computed with the Julian calendar
// formula. The caller is responsible for passing a calendrically valid date.
func JulianDayNumber(day, month, year int) JulianDay {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	jd := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	if JulianDay(jd) < GregorianCutover {
		jd = day + (153*m+2)/5 + 365*y + y/4 - 32083
	}
	return JulianDay(jd)
}

// Date converts the day number back into a solar (day, month, year) triple.
func (jd JulianDay) Date() (day, month, year int) {
	var b, c int
	if jd > GregorianCutover-1 {
		a := int(jd) + 32044
		b = (4*a + 3) / 146097
		c = a - (b*146097)/4
	} else {
		c = int(jd) + 32082
	}
	d := (4*c + 3) / 1461
	e := c - (1461*d)/4
	m := (5*e + 2) / 153
	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = b*100 + d - 4800 + m/10
	return day, month, year
}
