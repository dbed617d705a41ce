// SPDX-License-Identifier: MIT
// Package payoff: canonical validation checks shared by the criteria.
//
// Purpose:
//   - Provide a single source of truth for nil/shape guards.
//   - Keep the criterion kernels minimal by delegating checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their operation tag.
//
// All checks are pure, deterministic and allocate nothing.

package payoff

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty is the composite guard every criterion runs first:
// NotNil, then rows ≥ 1 and cols ≥ 1. A zero-value Matrix (hand-built,
// bypassing the constructors) fails here with ErrEmptyMatrix rather
// than producing an undefined reduction.
// Errors: ErrNilMatrix, ErrEmptyMatrix. Complexity: O(1).
func ValidateNonEmpty(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonEmpty", err)
	}
	if m.r < 1 || m.c < 1 {
		return validatorErrorf("ValidateNonEmpty", ErrEmptyMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are non-nil (caller must ensure).
// Errors: ErrBadShape. Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrBadShape)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrBadShape)
	}

	return nil
}
