// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Documented defaults.
const (
	DefaultSamples   = 5
	DefaultWarmup    = 3
	DefaultBenchTime = "1s"
)

// Config controls how each variant is measured.
//
// BenchTime uses the `go test -benchtime` syntax: a positive duration ("500ms")
// or a fixed iteration count ("100x").
type Config struct {
	Samples   int    `yaml:"samples" validate:"gte=1,lte=1000"`
	Warmup    int    `yaml:"warmup" validate:"gte=0,lte=1000"`
	BenchTime string `yaml:"benchtime" validate:"required,benchtime"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{Samples: DefaultSamples, Warmup: DefaultWarmup, BenchTime: DefaultBenchTime}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("benchtime", validBenchTime); err != nil {
		panic(err) // tag name is a constant; only fails on programmer error
	}

	return v
}

// validBenchTime accepts "<n>x" with n > 0 or a positive time.Duration.
func validBenchTime(fl validator.FieldLevel) bool {
	return ValidBenchTime(fl.Field().String())
}

// ValidBenchTime reports whether s is an acceptable -benchtime value.
func ValidBenchTime(s string) bool {
	if n, ok := strings.CutSuffix(s, "x"); ok {
		count, err := strconv.Atoi(n)
		return err == nil && count > 0
	}
	d, err := time.ParseDuration(s)

	return err == nil && d > 0
}

// Validate checks the struct tags; the returned error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
