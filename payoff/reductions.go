// SPDX-License-Identifier: MIT
// Package payoff: row/column reduction kernels.
//
// Purpose:
//   - Provide the per-row and per-column scans every decision criterion
//     is built from, in one place with one loop discipline.
//   - Deterministic traversal: fixed ascending index order, ties keep
//     the first value encountered.
//
// Determinism & Performance:
//   - All kernels are single linear scans over the row-major flat buffer.
//   - RowMinMax fuses both extremes into one pass for the Hurwicz blend.

package payoff

// RowMin returns the minimum outcome of strategy row.
// Stage 1 (Validate): nil receiver and row bounds.
// Stage 2 (Execute): linear scan, first-encountered tie policy.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(c) time, O(1) space.
func (m *Matrix) RowMin(row int) (float64, error) {
	if m == nil {
		return 0, matrixErrorf("RowMin", row, 0, ErrNilMatrix)
	}
	if row < 0 || row >= m.r {
		return 0, matrixErrorf("RowMin", row, 0, ErrOutOfRange)
	}

	base := row * m.c
	best := m.data[base] // seeded from the first state; c >= 1 by construction
	var j int
	for j = 1; j < m.c; j++ {
		if v := m.data[base+j]; v < best {
			best = v
		}
	}

	return best, nil
}

// RowMax returns the maximum outcome of strategy row.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(c) time, O(1) space.
func (m *Matrix) RowMax(row int) (float64, error) {
	if m == nil {
		return 0, matrixErrorf("RowMax", row, 0, ErrNilMatrix)
	}
	if row < 0 || row >= m.r {
		return 0, matrixErrorf("RowMax", row, 0, ErrOutOfRange)
	}

	base := row * m.c
	best := m.data[base]
	var j int
	for j = 1; j < m.c; j++ {
		if v := m.data[base+j]; v > best {
			best = v
		}
	}

	return best, nil
}

// RowMinMax returns both extremes of strategy row in a single pass.
// Equivalent to calling RowMin and RowMax but scans the row once.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(c) time, O(1) space.
func (m *Matrix) RowMinMax(row int) (minV, maxV float64, err error) {
	if m == nil {
		return 0, 0, matrixErrorf("RowMinMax", row, 0, ErrNilMatrix)
	}
	if row < 0 || row >= m.r {
		return 0, 0, matrixErrorf("RowMinMax", row, 0, ErrOutOfRange)
	}

	base := row * m.c
	minV, maxV = m.data[base], m.data[base]
	var j int
	for j = 1; j < m.c; j++ {
		v := m.data[base+j]
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	return minV, maxV, nil
}

// ColMax returns the maximum outcome achievable in state col across all
// strategies. This is the "best achievable outcome" the Savage regret
// transform measures every strategy against.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(r) time, O(1) space.
func (m *Matrix) ColMax(col int) (float64, error) {
	if m == nil {
		return 0, matrixErrorf("ColMax", 0, col, ErrNilMatrix)
	}
	if col < 0 || col >= m.c {
		return 0, matrixErrorf("ColMax", 0, col, ErrOutOfRange)
	}

	best := m.data[col] // row 0; r >= 1 by construction
	var i int
	for i = 1; i < m.r; i++ {
		if v := m.data[i*m.c+col]; v > best {
			best = v
		}
	}

	return best, nil
}
