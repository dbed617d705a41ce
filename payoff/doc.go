// Package payoff provides the rectangular profit-matrix container shared
// by every decision criterion in github.com/katalvlaran/criterion.
//
// A Matrix stores float64 outcomes in row-major order: the row index
// selects a strategy, the column index selects a state of nature, and
// the entry is the profit earned when that strategy meets that state.
//
// ✨ Key features:
//   - safe construction: FromSlice rejects empty and ragged input
//   - immutability by copy: ingestion deep-copies, Clone is independent
//   - bounds-checked access: At/Set return ErrOutOfRange, never panic
//   - reduction kernels: RowMin, RowMax, RowMinMax, ColMax in one scan
//   - numeric policy: NaN/Inf screening on by default, relaxable via options
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/criterion/payoff"
//
//	m, err := payoff.FromSlice([][]float64{
//	  {15, 10, 0, -6, 17},
//	  {3, 14, 8, 9, 2},
//	})
//	if err != nil {
//	  // handle ErrEmptyMatrix / ErrRaggedRows / ErrNaNInf
//	}
//	worst, _ := m.RowMin(0) // -6
//
// Performance:
//
//   - Construction: O(rows·cols) time and memory
//   - Access: O(1); reductions: O(rows) or O(cols) per call
//
// See example_test.go for runnable walkthroughs.
package payoff
