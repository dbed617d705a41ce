// Package criterion is your in-memory toolkit for classical decision
// making under uncertainty — evaluating payoff matrices with the
// Minimax (Wald), Savage (minimax regret) and Hurwicz criteria.
//
// 🚀 What is criterion?
//
//	A small, deterministic, zero-side-effect library that brings together:
//		• Payoff primitives: rectangular profit matrices with safe construction
//		• Row/column reductions: min, max and single-pass min+max kernels
//		• Wald's Minimax: the best worst-case strategy
//		• Savage's minimax regret: the smallest worst-case opportunity loss
//		• Hurwicz's blend: pessimism-weighted mix of worst and best outcomes
//
// ✨ Why choose criterion?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure functions, sentinel errors, no hidden state
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed traversal order, first-encountered tie policy
//
// Under the hood, everything is organized under two subpackages:
//
//	payoff/   — the profit-matrix container, validators and reduction kernels
//	criteria/ — the three decision rules plus the regret transform
//
// Quick ASCII example:
//
//	            states of nature →
//	 strategy A [ 15  10   0  -6  17 ]
//	 strategy B [  3  14   8   9   2 ]
//	 strategy C [  1   5  14  20  -3 ]
//	 strategy D [  7  19  10   2   0 ]
//
//	Minimax picks B (its worst outcome, 2, beats every other worst case).
//
// Dive into payoff/ and criteria/ docs for full examples and the exact
// numeric contracts of each rule.
//
//	go get github.com/katalvlaran/criterion
package criterion
