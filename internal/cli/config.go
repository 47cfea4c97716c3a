// Package cli holds the command-line glue shared by the benchmark programs:
// configuration (YAML file + flags + validation), logging setup, and the
// cobra root command that runs one workload suite and prints its report.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvbench/harness"
)

var (
	// ErrInvalidConfig wraps validation failures of Config.
	ErrInvalidConfig = errors.New("cli: invalid config")

	// ErrConfigFile wraps read and decode failures of the YAML config file.
	ErrConfigFile = errors.New("cli: cannot load config file")
)

// Config is the full program configuration.
//
// Precedence: DefaultConfig < workload defaults < YAML file < explicitly set flags.
type Config struct {
	Harness  harness.Config `yaml:"harness" validate:"-"`
	Size     int            `yaml:"size" validate:"gt=0"`
	Seed     int64          `yaml:"seed"`
	Workers  int            `yaml:"workers" validate:"gte=0"`
	LogLevel string         `yaml:"log_level" validate:"oneof=debug info warn error"`
	NoColor  bool           `yaml:"no_color"`
}

// DefaultConfig returns the shared defaults; workloads override Size (and Seed).
func DefaultConfig() Config {
	return Config{
		Harness:  harness.DefaultConfig(),
		Size:     1,
		LogLevel: "info",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks program fields, then the harness section.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Harness.Validate(); err != nil {
		return fmt.Errorf("%w: harness: %w", ErrInvalidConfig, err)
	}

	return nil
}

// LoadFile decodes the YAML file at path over base. Unknown keys are rejected;
// an empty file leaves base unchanged.
func LoadFile(path string, base Config) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("%w: %w", ErrConfigFile, err)
	}

	return Decode(raw, base)
}

// Decode overlays YAML document raw onto base.
func Decode(raw []byte, base Config) (Config, error) {
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return base, fmt.Errorf("%w: %w", ErrConfigFile, err)
	}

	return cfg, nil
}
