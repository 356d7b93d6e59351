// Command amlich converts between solar dates and the East-Asian lunisolar
// calendar (âm lịch) and prints sexagenary stem and branch labels.
//
// Usage:
//
//	amlich convert 2024-02-10 --time 09:30
//	amlich solar 2017-06L-01
//	amlich year 2033 --offset 8 --locale zh
//	amlich table --from 1900 --to 2100 > newyears.csv
//	amlich check newyears.csv
//
// Settings come from flags, AMLICH_* environment variables, a .env file
// and amlich.yaml; see internal/config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "amlich: %v\n", err)
		os.Exit(1)
	}
}
