package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rabitt1ove/lunisolar"
	"github.com/rabitt1ove/lunisolar/internal/config"
	"github.com/rabitt1ove/lunisolar/internal/logger"
	"github.com/rabitt1ove/lunisolar/names"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app is what every subcommand runs against, built once the configuration
// has been loaded.
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	cal   *lunisolar.Calendar
	names *names.Names
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "amlich",
		Short:         "Lunisolar calendar converter",
		Long:          "amlich converts solar dates to the East-Asian lunisolar calendar and back, and labels them with heavenly stems and earthly branches.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./amlich.yaml or ~/.config/amlich/amlich.yaml)")
	flags.Int("offset", 7, "timezone offset in hours east of UTC (7 for Vietnam, 8 for China)")
	flags.String("locale", "vi", "name locale: vi, zh or en, or an Accept-Language list")
	flags.StringP("output", "o", "text", "output format: text, json or yaml")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup(cmd.Flags())
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if a.log != nil {
			_ = a.log.Close()
		}
	}

	rootCmd.AddCommand(newConvertCommand(a))
	rootCmd.AddCommand(newSolarCommand(a))
	rootCmd.AddCommand(newYearCommand(a))
	rootCmd.AddCommand(newTableCommand(a))
	rootCmd.AddCommand(newCheckCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func (a *app) setup(flags *pflag.FlagSet) error {
	file, _ := flags.GetString("config")
	cfg, err := config.Load(config.Options{
		File: file,
		Flags: map[string]*pflag.Flag{
			"calendar.offset": flags.Lookup("offset"),
			"calendar.locale": flags.Lookup("locale"),
			"output.format":   flags.Lookup("output"),
			"logger.level":    flags.Lookup("log-level"),
		},
	})
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	n, err := names.Parse(cfg.Calendar.Locale)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.cal = lunisolar.New(cfg.Calendar.Offset)
	a.names = n

	a.log.Debugw("Configuration loaded",
		"offset", cfg.Calendar.Offset,
		"locale", n.Tag().String(),
		"output", cfg.Output.Format,
	)
	return nil
}
