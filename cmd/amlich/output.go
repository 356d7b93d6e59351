package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rabitt1ove/lunisolar"
	"github.com/rabitt1ove/lunisolar/names"
)

// texter is implemented by results that have a human-readable form.
type texter interface {
	writeText(w io.Writer) error
}

// render writes v to w as text, JSON or YAML.
func render(w io.Writer, format string, v texter) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return v.writeText(w)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

type label struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

func newLabel(n *names.Names, p lunisolar.Pair) label {
	return label{Code: p.String(), Name: n.Pair(p)}
}

func (l label) String() string {
	return fmt.Sprintf("%s (%s)", l.Name, l.Code)
}

type labels struct {
	Year  label `json:"year" yaml:"year"`
	Month label `json:"month" yaml:"month"`
	Day   label `json:"day" yaml:"day"`
	Hour  label `json:"hour" yaml:"hour"`
}

// conversion is the result of the convert command.
type conversion struct {
	Solar  string `json:"solar" yaml:"solar"`
	Lunar  string `json:"lunar" yaml:"lunar"`
	Year   int    `json:"year" yaml:"year"`
	Month  int    `json:"month" yaml:"month"`
	Day    int    `json:"day" yaml:"day"`
	Leap   bool   `json:"leap" yaml:"leap"`
	Labels labels `json:"labels" yaml:"labels"`
	Zodiac string `json:"zodiac" yaml:"zodiac"`
}

func newConversion(n *names.Names, solar string, d lunisolar.Date, l lunisolar.Labels) conversion {
	return conversion{
		Solar: solar,
		Lunar: d.String(),
		Year:  d.Year,
		Month: d.Month,
		Day:   d.Day,
		Leap:  d.Leap,
		Labels: labels{
			Year:  newLabel(n, l.Year),
			Month: newLabel(n, l.Month),
			Day:   newLabel(n, l.Day),
			Hour:  newLabel(n, l.Hour),
		},
		Zodiac: n.Zodiac(l.Year.Branch.Zodiac()),
	}
}

func (c conversion) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Solar:  %s\nLunar:  %s\nYear:   %s\nMonth:  %s\nDay:    %s\nHour:   %s\nZodiac: %s\n",
		c.Solar, c.Lunar, c.Labels.Year, c.Labels.Month, c.Labels.Day, c.Labels.Hour, c.Zodiac)
	return err
}

// solarDate is the result of the solar command.
type solarDate struct {
	Lunar   string `json:"lunar" yaml:"lunar"`
	Solar   string `json:"solar" yaml:"solar"`
	Weekday string `json:"weekday" yaml:"weekday"`
}

func (s solarDate) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s -> %s (%s)\n", s.Lunar, s.Solar, s.Weekday)
	return err
}

type monthRow struct {
	Month string `json:"month" yaml:"month"`
	Start string `json:"start" yaml:"start"`
	Days  int    `json:"days" yaml:"days"`
}

// yearInfo is the result of the year command.
type yearInfo struct {
	Year      int        `json:"year" yaml:"year"`
	Name      label      `json:"name" yaml:"name"`
	Zodiac    string     `json:"zodiac" yaml:"zodiac"`
	NewYear   string     `json:"new_year" yaml:"new_year"`
	LeapMonth int        `json:"leap_month,omitempty" yaml:"leap_month,omitempty"`
	Months    []monthRow `json:"months" yaml:"months"`
}

func (y yearInfo) writeText(w io.Writer) error {
	leap := "none"
	if y.LeapMonth != 0 {
		leap = fmt.Sprint(y.LeapMonth)
	}
	if _, err := fmt.Fprintf(w, "Year:       %d %s\nZodiac:     %s\nNew year:   %s\nLeap month: %s\n",
		y.Year, y.Name, y.Zodiac, y.NewYear, leap); err != nil {
		return err
	}
	for _, m := range y.Months {
		if _, err := fmt.Fprintf(w, "  %-9s %s  %d days\n", m.Month, m.Start, m.Days); err != nil {
			return err
		}
	}
	return nil
}

type mismatch struct {
	Line int    `json:"line" yaml:"line"`
	Year int    `json:"year" yaml:"year"`
	Want string `json:"want" yaml:"want"`
	Got  string `json:"got" yaml:"got"`
}

// checkReport is the result of the check command.
type checkReport struct {
	Checked    int        `json:"checked" yaml:"checked"`
	Mismatches []mismatch `json:"mismatches" yaml:"mismatches"`
}

func (r checkReport) writeText(w io.Writer) error {
	for _, m := range r.Mismatches {
		if _, err := fmt.Fprintf(w, "line %d: year %d has %s, table says %s\n", m.Line, m.Year, m.Got, m.Want); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d rows checked, %d mismatches\n", r.Checked, len(r.Mismatches))
	return err
}
