// SPDX-License-Identifier: MIT

package criteria

import (
	"math"

	"github.com/katalvlaran/criterion/payoff"
)

// opHurwicz tags errors surfaced by the Hurwicz operations.
const opHurwicz = "Hurwicz"

// Hurwicz computes the Hurwicz criterion: the maximum over strategies of
// a pessimism-weighted blend of each strategy's extremes,
//
//	max over rows r of ( coefficient·min(row r) + (1-coefficient)·max(row r) ).
//
// coefficient = 1 degenerates to Wald's pure pessimism (Minimax),
// coefficient = 0 to pure optimism (the best of the best cases).
//
// Behavior highlights:
//   - Permissive by default: coefficients outside [0,1] are accepted and
//     blended as-is, matching the classical formulation (a value > 1
//     over-weights the minimum). WithStrictCoefficient opts into
//     fail-fast validation with ErrCoefficientRange.
//   - Both extremes of a row come from one single-pass scan.
//   - A 1×1 matrix returns its single element for any coefficient,
//     since min == max.
//
// Errors:
//   - ErrCoefficientRange under WithStrictCoefficient for NaN/Inf or
//     out-of-range coefficients.
//   - payoff.ErrNilMatrix / payoff.ErrEmptyMatrix on a nil or degenerate
//     matrix, wrapped with the operation tag.
//
// Complexity: O(rows·cols) time, O(1) space.
func Hurwicz(m *payoff.Matrix, coefficient float64, opts ...Option) (float64, error) {
	d, err := HurwiczDecision(m, coefficient, opts...)
	if err != nil {
		return 0, err
	}

	return d.Value, nil
}

// HurwiczDecision computes the Hurwicz criterion and reports the
// strategy attaining it. Same contract as Hurwicz; ties keep the first
// row encountered.
// Complexity: O(rows·cols) time, O(1) space.
func HurwiczDecision(m *payoff.Matrix, coefficient float64, opts ...Option) (Decision, error) {
	// Stage 1 (Options): resolve the coefficient policy.
	o := gatherOptions(opts...)
	if o.strictCoefficient {
		if math.IsNaN(coefficient) || math.IsInf(coefficient, 0) ||
			coefficient < 0 || coefficient > 1 {
			return Decision{}, criteriaErrorf(opHurwicz, ErrCoefficientRange)
		}
	}

	// Stage 1 (Validate): nil/empty guard before any reduction.
	if err := payoff.ValidateNonEmpty(m); err != nil {
		return Decision{}, criteriaErrorf(opHurwicz, err)
	}

	// Stage 2 (Execute): blend each row's extremes, track the running
	// maximum across strategies.
	best := Decision{Strategy: -1}
	var (
		i          int
		minV, maxV float64
		err        error
	)
	for i = 0; i < m.Rows(); i++ {
		minV, maxV, err = m.RowMinMax(i)
		if err != nil {
			return Decision{}, criteriaErrorf(opHurwicz, err)
		}
		blend := coefficient*minV + (1-coefficient)*maxV
		if best.Strategy < 0 || blend > best.Value {
			best = Decision{Strategy: i, Value: blend}
		}
	}

	return best, nil
}
