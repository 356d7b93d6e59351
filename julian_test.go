package lunisolar

import (
	"math"
	"testing"

	"github.com/mooncaker816/learnmeeus/v3/julian"
)

func TestJulianDayNumber(t *testing.T) {
	tests := []struct {
		name             string
		day, month, year int
		want             JulianDay
	}{
		{"J2000", 1, 1, 2000, 2451545},
		{"lunation epoch", 1, 1, 1900, 2415021},
		{"unix epoch", 1, 1, 1970, 2440588},
		{"first Gregorian day", 15, 10, 1582, GregorianCutover},
		{"last Julian day", 4, 10, 1582, GregorianCutover - 1},
		{"end of range", 31, 12, 2100, 2488434},
		{"year one", 1, 1, 1, 1721424},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JulianDayNumber(tt.day, tt.month, tt.year); got != tt.want {
				t.Errorf("JulianDayNumber(%d, %d, %d) = %d, want %d", tt.day, tt.month, tt.year, got, tt.want)
			}
		})
	}
}

func TestJulianDay_Date(t *testing.T) {
	tests := []struct {
		jd               JulianDay
		day, month, year int
	}{
		{2451545, 1, 1, 2000},
		{GregorianCutover, 15, 10, 1582},
		{GregorianCutover - 1, 4, 10, 1582},
		{2488434, 31, 12, 2100},
	}
	for _, tt := range tests {
		d, m, y := tt.jd.Date()
		if d != tt.day || m != tt.month || y != tt.year {
			t.Errorf("JulianDay(%d).Date() = %d-%d-%d, want %d-%d-%d", tt.jd, y, m, d, tt.year, tt.month, tt.day)
		}
	}
}

func TestJulianDay_RoundTrip(t *testing.T) {
	t.Parallel()

	for jd := GregorianCutover - 3000; jd <= 2488434; jd++ {
		d, m, y := jd.Date()
		if got := JulianDayNumber(d, m, y); got != jd {
			t.Fatalf("JulianDayNumber(%d.Date()) = %d", jd, got)
		}
	}
}

// Meeus counts Julian dates from noon, so the day number of a civil date
// is the Julian date of its midnight rounded up by half a day.
func TestJulianDayNumber_AgreesWithMeeus(t *testing.T) {
	t.Parallel()

	for y := 1583; y <= 2400; y += 7 {
		for m := 1; m <= 12; m++ {
			for _, d := range []int{1, 15, 28} {
				want := JulianDay(math.Round(julian.CalendarGregorianToJD(y, m, float64(d)) + 0.5))
				if got := JulianDayNumber(d, m, y); got != want {
					t.Errorf("Gregorian %d-%02d-%02d: got %d, meeus %d", y, m, d, got, want)
				}
			}
		}
	}

	for y := 1000; y <= 1581; y += 13 {
		for m := 1; m <= 12; m++ {
			want := JulianDay(math.Round(julian.CalendarJulianToJD(y, m, 10) + 0.5))
			if got := JulianDayNumber(10, m, y); got != want {
				t.Errorf("Julian %d-%02d-10: got %d, meeus %d", y, m, got, want)
			}
		}
	}
}

func TestJulianDay_DateAgreesWithMeeus(t *testing.T) {
	t.Parallel()

	for jd := JulianDay(2415021); jd <= 2488434; jd += 97 {
		y, m, d := julian.JDToCalendar(float64(jd))
		gd, gm, gy := jd.Date()
		if gy != y || gm != m || gd != int(d) {
			t.Errorf("JulianDay(%d).Date() = %d-%02d-%02d, meeus %d-%02d-%v", jd, gy, gm, gd, y, m, d)
		}
	}
}
