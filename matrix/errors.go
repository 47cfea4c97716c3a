// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("ctx: %w", ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> dimension mismatch -> index.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operands, i.e. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRaggedRows signals rows of unequal length in FromRows input.
	ErrRaggedRows = errors.New("matrix: rows have unequal length")

	// ErrInvalidRange signals an empty value interval (lo >= hi) for Random.
	ErrInvalidRange = errors.New("matrix: value range is empty")

	// ErrNilSource indicates a nil random source passed to Random.
	ErrNilSource = errors.New("matrix: random source is nil")

	// ErrMismatch reports that a multiplication variant disagreed with the reference product.
	ErrMismatch = errors.New("matrix: variant output mismatch")

	// ErrNoVariants is returned by Verify when there is nothing to check.
	ErrNoVariants = errors.New("matrix: no variants to verify")
)
