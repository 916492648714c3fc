// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and accessors MUST return these sentinels and tests
// MUST check them via errors.Is. No accessor panics on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Accessors wrap these sentinels with method and
// coordinates via denseErrorf; callers still match them with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrTooLarge indicates that rows*cols overflows int or exceeds the caller's
	// cell budget. It is reported before any allocation takes place.
	ErrTooLarge = errors.New("matrix: grid exceeds cell budget")
)
