package lunisolar

import (
	"errors"
	"sync"
	"testing"
	"time"
)

var (
	ict = time.FixedZone("ICT", 7*60*60)
	cst = time.FixedZone("CST", 8*60*60)
)

// at is a test helper to construct midnight in zone.
func at(year int, month time.Month, day int, zone *time.Location) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, zone)
}

func TestNew(t *testing.T) {
	tests := []struct {
		offset   int
		wantName string
		wantSec  int
	}{
		{7, "UTC+7", 7 * 3600},
		{8, "UTC+8", 8 * 3600},
		{0, "UTC", 0},
		{-5, "UTC-5", -5 * 3600},
	}
	for _, tt := range tests {
		c := New(tt.offset)
		if c.Offset() != tt.offset {
			t.Errorf("New(%d).Offset() = %d", tt.offset, c.Offset())
		}
		name, sec := time.Date(2024, 1, 1, 0, 0, 0, 0, c.Location()).Zone()
		if name != tt.wantName || sec != tt.wantSec {
			t.Errorf("New(%d) zone = %s %d, want %s %d", tt.offset, name, sec, tt.wantName, tt.wantSec)
		}
	}
}

func TestDateOf(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want Date
	}{
		{"Tet 2024", at(2024, time.February, 10, ict), Date{Year: 2024, Month: 1, Day: 1}},
		{"Tet 2024 late evening", time.Date(2024, time.February, 10, 23, 59, 0, 0, ict), Date{Year: 2024, Month: 1, Day: 1}},
		{"leap month", at(2017, time.August, 1, ict), Date{Year: 2017, Month: 6, Day: 10, Leap: true}},
		{"mid year", at(2024, time.June, 15, ict), Date{Year: 2024, Month: 5, Day: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateOf(tt.time)
			if err != nil {
				t.Fatalf("DateOf: %v", err)
			}
			if got != tt.want {
				t.Errorf("DateOf(%v) = %v, want %v", tt.time, got, tt.want)
			}
		})
	}
}

func TestDateOf_ZoneNormalization(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want Date
	}{
		// 2024-02-09 17:00 UTC is midnight of Tet in UTC+7.
		{"UTC instant on Tet", time.Date(2024, time.February, 9, 17, 0, 0, 0, time.UTC), Date{Year: 2024, Month: 1, Day: 1}},
		{"UTC instant before Tet", time.Date(2024, time.February, 9, 16, 59, 0, 0, time.UTC), Date{Year: 2023, Month: 12, Day: 30}},
		{"New York evening", time.Date(2024, time.February, 9, 12, 30, 0, 0, time.FixedZone("EST", -5*60*60)), Date{Year: 2024, Month: 1, Day: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateOf(tt.time)
			if err != nil {
				t.Fatalf("DateOf: %v", err)
			}
			if got != tt.want {
				t.Errorf("DateOf(%v) = %v, want %v", tt.time, got, tt.want)
			}
		})
	}
}

func TestCalendar_OffsetMatters(t *testing.T) {
	day := time.Date(2007, time.February, 17, 12, 0, 0, 0, time.UTC)

	vn, err := New(7).Date(day)
	if err != nil {
		t.Fatal(err)
	}
	cn, err := New(8).Date(day)
	if err != nil {
		t.Fatal(err)
	}
	if want := (Date{Year: 2007, Month: 1, Day: 1}); vn != want {
		t.Errorf("UTC+7: %v, want %v", vn, want)
	}
	if want := (Date{Year: 2006, Month: 12, Day: 30}); cn != want {
		t.Errorf("UTC+8: %v, want %v", cn, want)
	}
}

func TestDateOf_OutOfRange(t *testing.T) {
	for _, tm := range []time.Time{
		at(1899, time.December, 31, ict),
		at(2101, time.January, 1, ict),
	} {
		if _, err := DateOf(tm); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("DateOf(%v) error = %v, want ErrOutOfRange", tm, err)
		}
	}
}

func TestLabelsAt(t *testing.T) {
	tm := time.Date(2011, time.January, 9, 3, 25, 0, 0, time.UTC) // 10:25 in UTC+7
	got, err := LabelsAt(tm)
	if err != nil {
		t.Fatal(err)
	}
	want := Labels{
		Year:  Pair{Stem7, Branch3},
		Month: Pair{Stem6, Branch2},
		Day:   Pair{Stem1, Branch1},
		Hour:  Pair{Stem6, Branch6},
	}
	if got != want {
		t.Errorf("LabelsAt(%v) = %+v, want %+v", tm, got, want)
	}

	if _, err := LabelsAt(at(1890, time.March, 2, ict)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("LabelsAt(1890) error = %v, want ErrOutOfRange", err)
	}
}

func TestSolarOf(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want time.Time
	}{
		{"leap month", Date{Year: 2017, Month: 6, Day: 1, Leap: true}, at(2017, time.July, 23, ict)},
		{"regular month", Date{Year: 2010, Month: 12, Day: 6}, at(2011, time.January, 9, ict)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SolarOf(tt.date)
			if err != nil {
				t.Fatalf("SolarOf: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("SolarOf(%v) = %v, want %v", tt.date, got, tt.want)
			}
			if got.Location() != defaultCal.Location() {
				t.Errorf("SolarOf(%v) location = %v, want the calendar zone", tt.date, got.Location())
			}
		})
	}

	if _, err := SolarOf(Date{Year: 2016, Month: 6, Day: 1, Leap: true}); !errors.Is(err, ErrNotRepresentable) {
		t.Errorf("SolarOf(leap in 2016) error = %v, want ErrNotRepresentable", err)
	}
}

func TestNewYear(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		year   int
		want   time.Time
	}{
		{"Tet 2024", 7, 2024, at(2024, time.February, 10, ict)},
		{"Tet 1985", 7, 1985, at(1985, time.January, 21, ict)},
		{"Chinese new year 1985", 8, 1985, at(1985, time.February, 20, cst)},
		{"Tet 1900", 7, 1900, at(1900, time.January, 31, ict)},
		{"Tet 2100", 7, 2100, at(2100, time.February, 9, ict)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.offset).NewYear(tt.year)
			if err != nil {
				t.Fatalf("NewYear(%d): %v", tt.year, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NewYear(%d) = %v, want %v", tt.year, got, tt.want)
			}
		})
	}

	if _, err := NewYear(1899); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("NewYear(1899) error = %v, want ErrOutOfRange", err)
	}
}

func TestLeapMonthOf(t *testing.T) {
	tests := []struct {
		year     int
		want     int
		wantLeap bool
	}{
		{2017, 6, true},
		{2020, 4, true},
		{2024, 0, false},
		{2033, 11, true},
	}
	for _, tt := range tests {
		got, ok, err := LeapMonth(tt.year)
		if err != nil {
			t.Fatalf("LeapMonth(%d): %v", tt.year, err)
		}
		if got != tt.want || ok != tt.wantLeap {
			t.Errorf("LeapMonth(%d) = %d, %v, want %d, %v", tt.year, got, ok, tt.want, tt.wantLeap)
		}
	}

	if _, _, err := LeapMonth(2101); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("LeapMonth(2101) error = %v, want ErrOutOfRange", err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	cal := New(8)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm := at(2000+i, time.March, 1, cst)
			d, err := cal.Date(tm)
			if err != nil {
				t.Errorf("Date(%v): %v", tm, err)
				return
			}
			back, err := cal.Solar(d)
			if err != nil {
				t.Errorf("Solar(%v): %v", d, err)
				return
			}
			if !back.Equal(tm) {
				t.Errorf("Solar(Date(%v)) = %v", tm, back)
			}
		}()
	}
	wg.Wait()
}
