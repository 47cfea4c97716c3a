// SPDX-License-Identifier: MIT
// Package harness: sentinel errors, matched with errors.Is.

package harness

import "errors"

var (
	// ErrInvalidConfig wraps validator failures for Config.
	ErrInvalidConfig = errors.New("harness: invalid config")

	// ErrNoVariants is returned when a suite has nothing to measure.
	ErrNoVariants = errors.New("harness: suite has no variants")

	// ErrDuplicateVariant is returned when two variants share a name.
	ErrDuplicateVariant = errors.New("harness: duplicate variant name")

	// ErrNilVariant is returned when a variant has no callable.
	ErrNilVariant = errors.New("harness: variant has nil func")

	// ErrSetup wraps a failing Suite.Setup.
	ErrSetup = errors.New("harness: setup failed")

	// ErrVerify wraps a failing Suite.Verify.
	ErrVerify = errors.New("harness: verification failed")

	// ErrBenchTime is returned when the measurement engine rejects the bench time.
	ErrBenchTime = errors.New("harness: cannot apply bench time")
)
