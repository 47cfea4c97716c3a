// SPDX-License-Identifier: MIT
// Package array: sentinel errors. Callers match them with errors.Is;
// call sites add context with fmt.Errorf("...: %w", ErrX).

package array

import "errors"

var (
	// ErrInvalidLength is returned when a requested input length is not positive.
	ErrInvalidLength = errors.New("array: length must be > 0")

	// ErrNilSource is returned when a nil random source is passed to Random.
	ErrNilSource = errors.New("array: random source is nil")

	// ErrMismatch reports that a variant produced something other than 2*src[i].
	ErrMismatch = errors.New("array: variant output mismatch")

	// ErrNoVariants is returned by Verify when there is nothing to check.
	ErrNoVariants = errors.New("array: no variants to verify")
)
