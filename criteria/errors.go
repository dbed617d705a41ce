// SPDX-License-Identifier: MIT
// Package criteria: sentinel error set.
// Shape and nil violations surface the payoff package sentinels
// (payoff.ErrNilMatrix, payoff.ErrEmptyMatrix) wrapped with the
// operation tag; errors.Is matches them through the wrapping.

package criteria

import "errors"

var (
	// ErrCoefficientRange indicates a Hurwicz coefficient outside [0,1]
	// (or NaN/Inf) under WithStrictCoefficient. The default permissive
	// mode accepts any finite or non-finite coefficient unchecked.
	ErrCoefficientRange = errors.New("criteria: coefficient must lie in [0,1]")
)
