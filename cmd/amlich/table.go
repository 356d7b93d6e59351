package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"

	"github.com/rabitt1ove/lunisolar"
)

// tableHeader is the header row written by table and expected by check.
var tableHeader = []string{"year", "new_year", "leap_month", "name"}

// lookupEncoding returns the text encoding named name, or nil for UTF-8.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "gb18030":
		return simplifiedchinese.GB18030, nil
	case "gbk":
		return simplifiedchinese.GBK, nil
	case "big5":
		return traditionalchinese.Big5, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q (want utf-8, gb18030, gbk or big5)", name)
	}
}

// newTableCommand creates the table command, which writes one CSV row per
// lunisolar year.
func newTableCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Write a CSV table of lunisolar new years and leap months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetInt("from")
			to, _ := cmd.Flags().GetInt("to")
			encName, _ := cmd.Flags().GetString("encoding")
			output, _ := cmd.Flags().GetString("file")

			enc, err := lookupEncoding(encName)
			if err != nil {
				return err
			}
			if from > to {
				return fmt.Errorf("invalid range: --from %d is after --to %d", from, to)
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			if enc != nil {
				// Names the target charset cannot hold are replaced, not fatal.
				tw := transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder()))
				defer tw.Close()
				w = tw
			}

			n, err := a.writeTable(w, from, to)
			if err != nil {
				return err
			}
			a.log.Infow("Wrote table", "rows", n, "from", from, "to", to, "file", output)
			return nil
		},
	}
	cmd.Flags().Int("from", lunisolar.MinYear, "first lunisolar year")
	cmd.Flags().Int("to", lunisolar.MaxYear, "last lunisolar year")
	cmd.Flags().String("encoding", "utf-8", "output encoding: utf-8, gb18030, gbk or big5")
	cmd.Flags().String("file", "", "output file (default: stdout)")
	return cmd
}

// writeTable writes the header and one row per year in [from, to].
func (a *app) writeTable(w io.Writer, from, to int) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(tableHeader); err != nil {
		return 0, err
	}

	rows := 0
	for year := from; year <= to; year++ {
		ny, err := a.cal.NewYear(year)
		if err != nil {
			return rows, fmt.Errorf("year %d: %w", year, err)
		}
		leap, _, err := a.cal.LeapMonth(year)
		if err != nil {
			return rows, fmt.Errorf("year %d: %w", year, err)
		}
		leapCol := ""
		if leap != 0 {
			leapCol = strconv.Itoa(leap)
		}
		record := []string{
			strconv.Itoa(year),
			ny.Format("2006-01-02"),
			leapCol,
			a.names.Pair(lunisolar.YearPair(year)),
		}
		if err := cw.Write(record); err != nil {
			return rows, err
		}
		rows++
	}

	cw.Flush()
	return rows, cw.Error()
}

// newCheckCommand creates the check command, which verifies a table
// written by table (or transcribed from an almanac) against the calendar.
func newCheckCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Check a CSV table of new years and leap months against the calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encName, _ := cmd.Flags().GetString("encoding")
			enc, err := lookupEncoding(encName)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			var r io.Reader = f
			if enc != nil {
				r = transform.NewReader(f, enc.NewDecoder())
			}

			rows, err := parseTable(r)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			report := a.check(rows)
			if err := render(cmd.OutOrStdout(), a.cfg.Output.Format, report); err != nil {
				return err
			}
			if len(report.Mismatches) > 0 {
				return fmt.Errorf("%s: %d of %d rows disagree", args[0], len(report.Mismatches), report.Checked)
			}
			return nil
		},
	}
	cmd.Flags().String("encoding", "utf-8", "input encoding: utf-8, gb18030, gbk or big5")
	return cmd
}

type tableRow struct {
	line      int
	year      int
	newYear   string
	leapMonth int
}

// parseTable parses a table CSV and validates its format.
func parseTable(r io.Reader) ([]tableRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 3 || !strings.EqualFold(strings.TrimSpace(header[0]), tableHeader[0]) {
		return nil, fmt.Errorf("unexpected header: %q (expected %q)", header, tableHeader)
	}

	var rows []tableRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		// Blank lines are skipped by the reader, so count from the input.
		lineNum, _ := reader.FieldPos(0)

		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: expected at least 3 columns, got %d", lineNum, len(record))
		}

		yearStr := strings.TrimSpace(record[0])
		if yearStr == "" {
			continue
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid year %q: %w", lineNum, yearStr, err)
		}

		leap := 0
		if s := strings.TrimSpace(record[2]); s != "" {
			if leap, err = strconv.Atoi(s); err != nil || leap < 1 || leap > 12 {
				return nil, fmt.Errorf("line %d: invalid leap month %q", lineNum, s)
			}
		}

		rows = append(rows, tableRow{
			line:      lineNum,
			year:      year,
			newYear:   strings.TrimSpace(record[1]),
			leapMonth: leap,
		})
	}
	return rows, nil
}

// check compares every row with the calendar.
func (a *app) check(rows []tableRow) checkReport {
	report := checkReport{Mismatches: []mismatch{}}
	for _, row := range rows {
		report.Checked++

		got := "out of range"
		ny, err := a.cal.NewYear(row.year)
		leap, _, lerr := a.cal.LeapMonth(row.year)
		if err == nil && lerr == nil {
			got = describeYear(ny.Format("2006-01-02"), leap)
		}

		want := describeYear(row.newYear, row.leapMonth)
		if got != want {
			report.Mismatches = append(report.Mismatches, mismatch{
				Line: row.line,
				Year: row.year,
				Want: want,
				Got:  got,
			})
		}
	}
	a.log.Infow("Checked table", "rows", report.Checked, "mismatches", len(report.Mismatches))
	return report
}

func describeYear(newYear string, leap int) string {
	if leap == 0 {
		return "new year " + newYear
	}
	return fmt.Sprintf("new year %s, leap month %d", newYear, leap)
}
