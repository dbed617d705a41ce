// SPDX-License-Identifier: MIT
// Package payoff: Matrix is a concrete, row-major profit matrix,
// storing elements in a flat slice for performance and cache friendliness.

package payoff

import (
	"fmt"
	"math"
	"strings"
)

// matrixErrorf wraps an underlying error with Matrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a row-major payoff matrix of float64 values.
// r is the number of strategies (rows), c the number of states of nature
// (columns), and data holds r*c outcomes in row-major order.
type Matrix struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c

	validateNaNInf bool // numeric policy captured at construction
}

// New creates an r×c Matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Matrix or ErrBadShape.
// Complexity: O(r*c) time and memory.
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	o := gatherOptions(opts...)

	// Allocate flat slice and return initialized Matrix
	return &Matrix{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// FromSlice constructs a Matrix from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability: later mutation of the
// caller's slice never affects the Matrix, and vice versa.
// Stage 1 (Validate): shape (ErrEmptyMatrix, ErrRaggedRows) and, under the
// default numeric policy, finiteness of every entry (ErrNaNInf).
// Stage 2 (Copy): write rows into the flat buffer in deterministic order.
// Complexity: O(rows·cols) time and memory.
func FromSlice(values [][]float64, opts ...Option) (*Matrix, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	r, c := len(values), len(values[0])
	for _, row := range values {
		if len(row) != c {
			return nil, ErrRaggedRows
		}
	}
	o := gatherOptions(opts...)

	m := &Matrix{
		r:              r,
		c:              c,
		data:           make([]float64, r*c),
		validateNaNInf: o.validateNaNInf,
	}
	var i, j int
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			v := values[i][j]
			if m.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf("FromSlice", i, j, ErrNaNInf)
			}
			m.data[base+j] = v
		}
	}

	return m, nil
}

// Rows returns the number of strategies (rows). Complexity: O(1).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the number of states of nature (columns). Complexity: O(1).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the outcome at (row, col).
// Stage 1 (Validate): nil receiver, then bounds via indexOf.
// Stage 2 (Execute): read from the flat slice.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if m == nil {
		return 0, matrixErrorf("At", row, col, ErrNilMatrix)
	}
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns outcome v at (row, col), honoring the numeric policy
// captured at construction (ErrNaNInf under validation).
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	if m == nil {
		return matrixErrorf("Set", row, col, ErrNilMatrix)
	}
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && isNonFinite(v) {
		return matrixErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Matrix, numeric policy included.
// The copy is exclusively owned by the caller.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Matrix{r: m.r, c: m.c, data: copyData, validateNaNInf: m.validateNaNInf}
}

// Outcomes exports the matrix contents as a freshly allocated 2D slice.
// Mutating the result never affects the Matrix.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Outcomes() [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		b.WriteString("[")
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
