package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rabitt1ove/lunisolar"
)

// newConvertCommand creates the convert command.
func newConvertCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [YYYY-MM-DD|now]",
		Short: "Convert a solar date to the lunisolar calendar",
		Long:  "Convert a solar date and time, read in the calendar's timezone, to its lunisolar date and sexagenary labels.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clock, _ := cmd.Flags().GetString("time")
			date := "now"
			if len(args) == 1 {
				date = args[0]
			}
			return a.convert(cmd, date, clock)
		},
	}
	cmd.Flags().String("time", "", "time of day as HH:MM (default: midnight, or the current time with \"now\")")
	return cmd
}

func (a *app) convert(cmd *cobra.Command, date, clock string) error {
	var t time.Time
	if date == "now" && clock == "" {
		t = time.Now().In(a.cal.Location())
	} else {
		if date == "now" {
			date = time.Now().In(a.cal.Location()).Format("2006-01-02")
		}
		var err error
		if t, err = parseSolar(date, clock, a.cal.Location()); err != nil {
			return err
		}
	}

	start := time.Now()
	d, err := a.cal.Date(t)
	var l lunisolar.Labels
	if err == nil {
		l, err = a.cal.Labels(t)
	}
	a.log.LogConversion("convert", t.Format(time.RFC3339), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("convert %s: %w", t.Format("2006-01-02"), err)
	}

	res := newConversion(a.names, t.Format("2006-01-02 15:04 MST"), d, l)
	return render(cmd.OutOrStdout(), a.cfg.Output.Format, res)
}

// newSolarCommand creates the solar command.
func newSolarCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solar YYYY-MM[L]-DD",
		Short: "Convert a lunisolar date to the solar calendar",
		Long:  "Convert a lunisolar date to its solar date. Append L to the month for a leap month, e.g. 2017-06L-01.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseLunar(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			t, err := a.cal.Solar(d)
			a.log.LogConversion("solar", d.String(), time.Since(start), err)
			if err != nil {
				return fmt.Errorf("solar %s: %w", d, err)
			}

			return render(cmd.OutOrStdout(), a.cfg.Output.Format, solarDate{
				Lunar:   d.String(),
				Solar:   t.Format("2006-01-02"),
				Weekday: t.Weekday().String(),
			})
		},
	}
}

// newYearCommand creates the year command.
func newYearCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "year YEAR",
		Short: "Show the new year, leap month and months of a lunisolar year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}
			info, err := a.yearInfo(year)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.cfg.Output.Format, info)
		},
	}
}

func (a *app) yearInfo(year int) (yearInfo, error) {
	months, err := a.cal.Months(year)
	if err != nil {
		return yearInfo{}, fmt.Errorf("year %d: %w", year, err)
	}
	leap, _, err := a.cal.LeapMonth(year)
	if err != nil {
		return yearInfo{}, fmt.Errorf("year %d: %w", year, err)
	}

	pair := lunisolar.YearPair(year)
	info := yearInfo{
		Year:      year,
		Name:      newLabel(a.names, pair),
		Zodiac:    a.names.Zodiac(pair.Branch.Zodiac()),
		NewYear:   months[0].Start.Format("2006-01-02"),
		LeapMonth: leap,
		Months:    make([]monthRow, 0, len(months)),
	}
	for _, m := range months {
		info.Months = append(info.Months, monthRow{
			Month: m.String(),
			Start: m.Start.Format("2006-01-02"),
			Days:  m.Days,
		})
	}
	return info, nil
}

// newVersionCommand creates the version command.
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the amlich version",
		// The version needs no configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "amlich %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Supported years: %d-%d\n", lunisolar.MinYear, lunisolar.MaxYear)
		},
	}
}
