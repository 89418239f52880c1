package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the settings a YAML file may provide. Flags override it.
type Config struct {
	// Workers bounds concurrent queries; 0 means one per CPU.
	Workers int `yaml:"workers" validate:"gte=0"`

	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`

	// Format is the query encoding read by solve and written by generate.
	Format string `yaml:"format" validate:"oneof=text yaml"`

	// ValidateQueries runs query validation before solving.
	ValidateQueries bool `yaml:"validate"`

	// MetricsFile, when set, receives Prometheus metrics in text format after solve.
	MetricsFile string `yaml:"metrics_file"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Workers:         0,
		LogLevel:        "info",
		LogFormat:       "text",
		Format:          formatText,
		ValidateQueries: true,
	}
}

var configValidate = validator.New()

// Validate checks the config against its rules.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config: %s=%v fails %s %s", fe.Field(), fe.Value(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// LoadConfig reads path over DefaultConfig and validates the result.
// An empty path yields the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}
