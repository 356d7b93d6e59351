// Package config loads amlich's settings from defaults, an optional YAML
// file, a .env file, AMLICH_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// EnvPrefix prefixes every environment variable read by Load, e.g.
// AMLICH_CALENDAR_OFFSET for calendar.offset.
const EnvPrefix = "AMLICH"

// Config holds all configuration for the command.
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Output   OutputConfig   `mapstructure:"output"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// CalendarConfig selects the timezone offset and the naming locale.
type CalendarConfig struct {
	Offset int    `mapstructure:"offset" validate:"gte=-12,lte=14"`
	Locale string `mapstructure:"locale" validate:"required,locale"`
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text json yaml"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level    string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format   string `mapstructure:"format" validate:"oneof=json console"`
	Output   string `mapstructure:"output" validate:"oneof=stdout stderr file"`
	Filename string `mapstructure:"filename" validate:"required_if=Output file"`
}

// Options controls where Load looks for settings.
type Options struct {
	// File is an explicit config file. When empty, amlich.yaml is searched
	// for in the working directory and $HOME/.config/amlich, and a missing
	// file is not an error.
	File string

	// EnvFiles are dotenv files loaded into the environment before it is
	// read. Missing files are ignored. Defaults to ".env".
	EnvFiles []string

	// Flags maps config keys (e.g. "calendar.offset") to the flags that
	// override them when set on the command line.
	Flags map[string]*pflag.Flag
}

// Load reads the configuration described by opts and validates it.
func Load(opts Options) (*Config, error) {
	envFiles := opts.EnvFiles
	if envFiles == nil {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// Values already in the environment win over the file.
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", opts.File, err)
		}
	} else {
		v.SetConfigName("amlich")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/amlich")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	for key, flag := range opts.Flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults are plain scalars; decoding them cannot fail.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calendar.offset", 7)
	v.SetDefault("calendar.locale", "vi")

	v.SetDefault("output.format", "text")

	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stderr")
	v.SetDefault("logger.filename", "amlich.log")
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	return newValidator().Struct(cfg)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// The locale is an Accept-Language style list such as "zh-TW,en;q=0.5".
	_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		tags, _, err := language.ParseAcceptLanguage(fl.Field().String())
		return err == nil && len(tags) > 0
	})
	return v
}
