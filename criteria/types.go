// SPDX-License-Identifier: MIT

// Package criteria: result types and functional configuration.

package criteria

import "fmt"

// Decision pairs a criterion value with the strategy (row index) that
// attains it. When several strategies tie, the lowest index wins, which
// matches the first-encountered tie policy of the underlying scans.
type Decision struct {
	Strategy int     // zero-based row index of the chosen strategy
	Value    float64 // criterion value of that strategy
}

// String implements fmt.Stringer for easy debugging.
func (d Decision) String() string {
	return fmt.Sprintf("strategy %d (value %g)", d.Strategy, d.Value)
}

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultStrictCoefficient keeps the Hurwicz coefficient unvalidated,
	// preserving the permissive reference behavior: out-of-range values
	// yield a mathematically well-defined but non-canonical blend.
	DefaultStrictCoefficient = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	strictCoefficient bool // DefaultStrictCoefficient
}

// WithStrictCoefficient makes Hurwicz reject coefficients outside [0,1]
// (and NaN/Inf) with ErrCoefficientRange instead of blending them.
// Complexity: O(1).
func WithStrictCoefficient() Option {
	return func(o *Options) { o.strictCoefficient = true }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins; stable for a given sequence of setters.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		strictCoefficient: DefaultStrictCoefficient,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// criteriaErrorf wraps an underlying error with the operation tag.
func criteriaErrorf(op string, err error) error {
	return fmt.Errorf("criteria.%s: %w", op, err)
}
