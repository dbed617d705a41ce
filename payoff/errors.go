// SPDX-License-Identifier: MIT
// Package payoff: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the payoff
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.

package payoff

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "payoff: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("ctx: %w", ErrX)
// when context is essential; callers still match via errors.Is.

var (
	// ErrEmptyMatrix indicates the input has no rows or no columns.
	ErrEmptyMatrix = errors.New("payoff: matrix must have at least one row and one column")

	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("payoff: all rows must have the same length")

	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("payoff: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set and the reductions) MUST return this, not panic.
	ErrOutOfRange = errors.New("payoff: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("payoff: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set).
	ErrNaNInf = errors.New("payoff: NaN or Inf encountered")
)
