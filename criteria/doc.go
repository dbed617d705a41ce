// Package criteria computes classical decision criteria over payoff
// matrices: Wald's Minimax, Savage's minimax regret, and the Hurwicz
// pessimism/optimism blend.
//
// 🚀 What are decision criteria?
//
//	Given a profit matrix (rows = strategies, columns = states of
//	nature), each criterion condenses the whole matrix into the value
//	of one "optimal" strategy under its own attitude toward risk:
//	  • Minimax — guarantee the best worst case
//	  • Savage  — minimize the worst opportunity loss (regret)
//	  • Hurwicz — blend the worst and best case by a coefficient α
//
// ✨ Key features:
//   - pure functions: no shared state, same inputs always same outputs,
//     safe to evaluate concurrently or memoize
//   - the caller's matrix is never mutated (Savage works on a private copy)
//   - Decision variants also report which strategy attains the value
//   - permissive Hurwicz coefficient by default, strict [0,1] via option
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/criterion/criteria"
//	  "github.com/katalvlaran/criterion/payoff"
//	)
//
//	m, _ := payoff.FromSlice(profits)
//	wald, _ := criteria.Minimax(m)
//	regret, _ := criteria.Savage(m)
//	blend, _ := criteria.Hurwicz(m, 0.8)
//
// Performance:
//
//   - Every criterion is O(rows·cols) time; Savage additionally allocates
//     one rows·cols working copy for the regret transform.
//
// See example_test.go for the full labeled walkthrough of the reference
// four-strategy scenario.
package criteria
