package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rabitt1ove/lunisolar"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// solarInput is a civil date and time before it is checked against the
// Gregorian calendar.
type solarInput struct {
	Year   int `validate:"gte=1,lte=9999"`
	Month  int `validate:"gte=1,lte=12"`
	Day    int `validate:"gte=1,lte=31"`
	Hour   int `validate:"gte=0,lte=23"`
	Minute int `validate:"gte=0,lte=59"`
}

// lunarInput is a lunisolar date as typed by the user.
type lunarInput struct {
	Year  int `validate:"gte=1,lte=9999"`
	Month int `validate:"gte=1,lte=12"`
	Day   int `validate:"gte=1,lte=30"`
	Leap  bool
}

// parseSolar parses date (YYYY-MM-DD) and clock (HH:MM, may be empty) as a
// time in zone. The date must exist in the Gregorian calendar.
func parseSolar(date, clock string, zone *time.Location) (time.Time, error) {
	var in solarInput
	parts := strings.Split(strings.TrimSpace(date), "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}
	var err error
	if in.Year, in.Month, in.Day, err = atoi3(parts); err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	if clock = strings.TrimSpace(clock); clock != "" {
		h, m, ok := strings.Cut(clock, ":")
		if !ok {
			return time.Time{}, fmt.Errorf("invalid time %q: want HH:MM", clock)
		}
		if in.Hour, err = strconv.Atoi(h); err != nil {
			return time.Time{}, fmt.Errorf("invalid time %q: %w", clock, err)
		}
		if in.Minute, err = strconv.Atoi(m); err != nil {
			return time.Time{}, fmt.Errorf("invalid time %q: %w", clock, err)
		}
	}

	if err := validate.Struct(in); err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	t := time.Date(in.Year, time.Month(in.Month), in.Day, in.Hour, in.Minute, 0, 0, zone)
	if t.Day() != in.Day || int(t.Month()) != in.Month {
		return time.Time{}, fmt.Errorf("invalid date %q: no such day", date)
	}
	return t, nil
}

// parseLunar parses a lunisolar date written as YYYY-MM-DD, with an L after
// the month for a leap month (2017-06L-01).
func parseLunar(s string) (lunisolar.Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return lunisolar.Date{}, fmt.Errorf("invalid lunisolar date %q: want YYYY-MM[L]-DD", s)
	}

	var in lunarInput
	if m, ok := strings.CutSuffix(strings.ToUpper(parts[1]), "L"); ok {
		parts[1] = m
		in.Leap = true
	}
	var err error
	if in.Year, in.Month, in.Day, err = atoi3(parts); err != nil {
		return lunisolar.Date{}, fmt.Errorf("invalid lunisolar date %q: %w", s, err)
	}
	if err := validate.Struct(in); err != nil {
		return lunisolar.Date{}, fmt.Errorf("invalid lunisolar date %q: %w", s, err)
	}
	return lunisolar.Date{Year: in.Year, Month: in.Month, Day: in.Day, Leap: in.Leap}, nil
}

func atoi3(parts []string) (a, b, c int, err error) {
	var n [3]int
	for i, p := range parts {
		if n[i], err = strconv.Atoi(p); err != nil {
			return 0, 0, 0, err
		}
	}
	return n[0], n[1], n[2], nil
}
