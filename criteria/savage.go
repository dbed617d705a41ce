// SPDX-License-Identifier: MIT

package criteria

import "github.com/katalvlaran/criterion/payoff"

// Operation tags for error wrapping.
const (
	opSavage = "Savage"
	opRegret = "Regret"
)

// Regret computes the Savage regret matrix R of m,
//
//	R[r][c] = ( max over rows r' of M[r'][c] ) - M[r][c],
//
// i.e. for every cell, the gap between the best outcome achievable in
// that state of nature and the outcome the strategy actually earns.
//
// Behavior highlights:
//   - The caller's matrix is never mutated: column maxima are read from
//     the pristine input and results are written into a private clone,
//     so transforming column c never observes writes to any column.
//   - Columns are independent; the transform is column-local.
//   - Subtraction stays in float64; no widening, no overflow handling
//     beyond what float64 provides natively.
//   - The transform is NOT an involution: Regret(Regret(m)) generally
//     differs from m.
//
// Errors:
//   - payoff.ErrNilMatrix / payoff.ErrEmptyMatrix, wrapped with the
//     operation tag.
//   - payoff.ErrNaNInf if a regret entry overflows to ±Inf while the
//     matrix carries the default numeric policy.
//
// Complexity: O(rows·cols) time, O(rows·cols) memory for the copy.
func Regret(m *payoff.Matrix) (*payoff.Matrix, error) {
	// Stage 1 (Validate): nil/empty guard.
	if err := payoff.ValidateNonEmpty(m); err != nil {
		return nil, criteriaErrorf(opRegret, err)
	}

	// Stage 2 (Prepare): private working copy owned by this invocation.
	reg := m.Clone()

	// Stage 3 (Execute): column-major pass; read the column maximum from
	// the untouched original, then rewrite that column of the copy.
	var (
		i, j      int
		colMax, v float64
		err       error
	)
	for j = 0; j < m.Cols(); j++ {
		colMax, err = m.ColMax(j)
		if err != nil {
			return nil, criteriaErrorf(opRegret, err)
		}
		for i = 0; i < m.Rows(); i++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, criteriaErrorf(opRegret, err)
			}
			if err = reg.Set(i, j, colMax-v); err != nil {
				return nil, criteriaErrorf(opRegret, err)
			}
		}
	}

	return reg, nil
}

// Savage computes the minimax-regret criterion: the minimum over
// strategies of the per-strategy worst regret,
//
//	min over rows r of ( max over columns c of R[r][c] ),
//
// where R is the regret matrix of Regret. The chosen strategy is the
// one whose worst-case opportunity loss is smallest.
//
// Errors: as Regret, wrapped with the operation tag.
// Complexity: O(rows·cols) time, O(rows·cols) memory (working copy).
func Savage(m *payoff.Matrix) (float64, error) {
	d, err := SavageDecision(m)
	if err != nil {
		return 0, err
	}

	return d.Value, nil
}

// SavageDecision computes the minimax-regret criterion and reports the
// strategy attaining it. Ties keep the first row encountered.
// Complexity: O(rows·cols) time, O(rows·cols) memory (working copy).
func SavageDecision(m *payoff.Matrix) (Decision, error) {
	// Stage 1 (Transform): build the regret matrix (validates shape).
	reg, err := Regret(m)
	if err != nil {
		return Decision{}, criteriaErrorf(opSavage, err)
	}

	// Stage 2 (Execute): reduce each regret row to its maximum, track
	// the running minimum of those maxima.
	best := Decision{Strategy: -1}
	var (
		i     int
		worst float64
	)
	for i = 0; i < reg.Rows(); i++ {
		worst, err = reg.RowMax(i)
		if err != nil {
			return Decision{}, criteriaErrorf(opSavage, err)
		}
		if best.Strategy < 0 || worst < best.Value {
			best = Decision{Strategy: i, Value: worst}
		}
	}

	return best, nil
}
