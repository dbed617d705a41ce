// SPDX-License-Identifier: MIT

package criteria

import "github.com/katalvlaran/criterion/payoff"

// opMinimax tags errors surfaced by the Minimax operations.
const opMinimax = "Minimax"

// Minimax computes Wald's criterion: the maximum over strategies of the
// per-strategy worst case,
//
//	max over rows r of ( min over columns c of M[r][c] ).
//
// The pessimist's rule: each strategy is judged by its worst outcome,
// and the strategy whose worst outcome is least bad wins.
//
// Behavior highlights:
//   - Pure: the input matrix is read-only; identical inputs always
//     produce identical results, in any evaluation order.
//   - Deterministic i→j traversal; ties keep the first row encountered
//     (irrelevant for the value, visible in MinimaxDecision).
//
// Errors:
//   - payoff.ErrNilMatrix / payoff.ErrEmptyMatrix on a nil or degenerate
//     matrix, wrapped with the operation tag.
//
// Complexity: O(rows·cols) time, O(1) space.
func Minimax(m *payoff.Matrix) (float64, error) {
	d, err := MinimaxDecision(m)
	if err != nil {
		return 0, err
	}

	return d.Value, nil
}

// MinimaxDecision computes Wald's criterion and reports the strategy
// attaining it. Same contract as Minimax; on error the zero Decision is
// returned.
// Complexity: O(rows·cols) time, O(1) space.
func MinimaxDecision(m *payoff.Matrix) (Decision, error) {
	// Stage 1 (Validate): nil/empty guard before any reduction.
	if err := payoff.ValidateNonEmpty(m); err != nil {
		return Decision{}, criteriaErrorf(opMinimax, err)
	}

	// Stage 2 (Execute): reduce each row to its minimum, track the
	// running maximum of those minima.
	best := Decision{Strategy: -1}
	var (
		i     int
		worst float64
		err   error
	)
	for i = 0; i < m.Rows(); i++ {
		worst, err = m.RowMin(i)
		if err != nil {
			return Decision{}, criteriaErrorf(opMinimax, err)
		}
		if best.Strategy < 0 || worst > best.Value {
			best = Decision{Strategy: i, Value: worst}
		}
	}

	// Stage 3 (Finalize): best now holds the max of per-row minima.
	return best, nil
}
