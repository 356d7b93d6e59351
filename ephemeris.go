package lunisolar

import "math"

// dr converts degrees to radians.
const dr = math.Pi / 180

// NewMoonDay returns the local day number of the k-th new moon after the
// new moon of 1900-01-01, for a timezone offset in hours east of UTC.
//
// The series is the truncated approximation used by the Ho Ngoc Duc
// algorithm. Its terms and their evaluation order are fixed: changing either
// moves month boundaries for dates where the new moon falls near midnight.
func NewMoonDay(k int, tz float64) JulianDay {
	kf := float64(k)
	t := kf / 1236.85 // Julian centuries from 1900 January 0.5
	t2 := t * t
	t3 := t2 * t

	jd1 := 2415020.75933 + 29.53058868*kf + 0.0001178*t2 - 0.000000155*t3
	jd1 = jd1 + 0.00033*math.Sin(166.56+132.87*t-0.009173*t2)*dr

	m := 359.2242 + 29.10535608*kf - 0.0000333*t2 - 0.00000347*t3    // sun's mean anomaly
	mpr := 306.0253 + 385.81691806*kf + 0.0107306*t2 + 0.00001236*t3 // moon's mean anomaly
	f := 21.2964 + 390.67050646*kf - 0.0016528*t2 - 0.00000239*t3    // moon's argument of latitude

	c1 := (0.1734-0.000393*t)*math.Sin(m*dr) + 0.0021*math.Sin(2*dr*m)
	c1 = c1 - 0.4068*math.Sin(mpr*dr) + 0.0161*math.Sin(dr*2*mpr)
	c1 = c1 - 0.0004*math.Sin(dr*3*mpr)
	c1 = c1 + 0.0104*math.Sin(dr*2*f) - 0.0051*math.Sin(dr*(m+mpr))
	c1 = c1 - 0.0074*math.Sin(dr*(m-mpr)) + 0.0004*math.Sin(dr*(2*f+m))
	c1 = c1 - 0.0004*math.Sin(dr*(2*f-m)) - 0.0006*math.Sin(dr*(2*f+mpr))
	c1 = c1 + 0.0010*math.Sin(dr*(2*f-mpr)) + 0.0005*math.Sin(dr*(2*mpr+m))

	var deltat float64
	if t < -11 {
		deltat = 0.001 + 0.000839*t + 0.0002261*t2 - 0.00000845*t3 - 0.000000081*t*t3
	} else {
		deltat = -0.000278 + 0.000265*t + 0.000262*t2
	}

	jdNew := jd1 + c1 - deltat
	return JulianDay(int(jdNew + 0.5 + tz/24))
}

// SunLongitude returns the sun's ecliptic longitude at local midnight
// starting day jd, expressed in 30 degree sectors: the result lies in [0, 12).
func SunLongitude(jd JulianDay, tz float64) float64 {
	t := (float64(jd) - 2451545.5 - tz/24) / 36525 // Julian centuries from 2000-01-01 12:00 UT
	t2 := t * t

	m := 357.52910 + 35999.05030*t - 0.0001559*t2 - 0.00000048*t*t2 // mean anomaly, degrees
	l0 := 280.46645 + 36000.76983*t + 0.0003032*t2                   // mean longitude, degrees

	dl := (1.914600 - 0.004817*t - 0.000014*t2) * math.Sin(dr*m)
	dl = dl + (0.019993-0.000101*t)*math.Sin(dr*2*m) + 0.000290*math.Sin(dr*3*m)

	l := (l0 + dl) * dr
	l = l - math.Pi*2*math.Floor(l/(math.Pi*2))
	return l / math.Pi * 6
}

// SunSector returns the index in [0, 11] of the 30 degree ecliptic sector
// the sun occupies at the start of day jd.
func SunSector(jd JulianDay, tz float64) int {
	return int(SunLongitude(jd, tz))
}
