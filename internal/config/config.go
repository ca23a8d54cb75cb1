// Package config assembles the tool configuration from defaults, environment
// variables (CLEANSE_ prefix), an optional cleanse.yaml file and finally the
// command line. Later sources win.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	cerrors "cleansecli/internal/errors"
)

// EnvPrefix is the environment variable prefix, e.g. CLEANSE_LOGGING_LEVEL.
const EnvPrefix = "CLEANSE"

// Config is the complete tool configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Tracing  TracingConfig  `yaml:"tracing" envconfig:"TRACING"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
}

// LoggingConfig controls the slog setup.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/cleanse.log"`
}

// TracingConfig controls the optional OpenTelemetry step spans.
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled" envconfig:"ENABLED" default:"false"`
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME" default:"cleanse"`
}

// PipelineConfig holds the cleansing options the CLI exposes.
type PipelineConfig struct {
	MissingStrategy string  `yaml:"missing_strategy" envconfig:"MISSING_STRATEGY" default:"drop" validate:"oneof=drop fill"`
	FillValue       *string `yaml:"fill_value" envconfig:"FILL_VALUE" validate:"required_if=MissingStrategy fill"`
	Delimiter       string  `yaml:"delimiter" envconfig:"DELIMITER" default:","`
	BOM             bool    `yaml:"bom" envconfig:"BOM"`
}

// ConfigFileName is looked up in the working directory.
const ConfigFileName = "cleanse.yaml"

// Load builds the configuration from file and environment. Command-line
// overrides are applied by the caller before Validate.
func Load() (*Config, error) {
	var cfg Config

	// Environment first: envconfig applies the struct defaults for
	// anything unset, so the file must come after or its values would be
	// clobbered by those defaults.
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, cerrors.NewConfigError(fmt.Sprintf("cannot read environment: %v", err))
	}

	if data, err := os.ReadFile(ConfigFileName); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, cerrors.NewConfigError(fmt.Sprintf("cannot parse %s: %v", ConfigFileName, err))
		}
	}

	return &cfg, nil
}

// Validate checks the option combinations. It runs after CLI overrides so
// it sees the final values.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return cerrors.NewConfigError(describeFieldError(verrs[0]))
		}
		return cerrors.NewConfigError(err.Error())
	}
	if _, err := c.Pipeline.DelimiterRune(); err != nil {
		return err
	}
	return nil
}

// DelimiterRune returns the configured delimiter as a single rune.
func (p *PipelineConfig) DelimiterRune() (rune, error) {
	if utf8.RuneCountInString(p.Delimiter) != 1 {
		return 0, cerrors.NewConfigError(fmt.Sprintf("delimiter must be a single character, got %q", p.Delimiter))
	}
	r, _ := utf8.DecodeRuneInString(p.Delimiter)
	return r, nil
}

func describeFieldError(fe validator.FieldError) string {
	switch {
	case fe.Field() == "FillValue":
		return "missing_strategy is fill but no fill_value was provided"
	case fe.Field() == "MissingStrategy":
		return fmt.Sprintf("invalid missing_strategy %q, choose drop or fill", fe.Value())
	default:
		return fmt.Sprintf("invalid value for %s: %v", fe.Field(), fe.Value())
	}
}

// Default returns the configuration used when no file, environment or flags
// are present.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: "logs/cleanse.log",
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "cleanse",
		},
		Pipeline: PipelineConfig{
			MissingStrategy: "drop",
			Delimiter:       ",",
		},
	}
}
