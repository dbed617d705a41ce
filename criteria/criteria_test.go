// Package criteria_test: shared fixtures, brute-force oracles, and
// cross-criterion property tests.
package criteria_test

import (
	"testing"

	"github.com/katalvlaran/criterion/criteria"
	"github.com/katalvlaran/criterion/payoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// referenceProfits is the four-strategy, five-state scenario from the
// package documentation.
func referenceProfits() [][]float64 {
	return [][]float64{
		{15, 10, 0, -6, 17},
		{3, 14, 8, 9, 2},
		{1, 5, 14, 20, -3},
		{7, 19, 10, 2, 0},
	}
}

// bruteMinimax is an independent oracle: max over rows of row minima.
func bruteMinimax(values [][]float64) float64 {
	best := values[0][0]
	for i, row := range values {
		worst := row[0]
		for _, v := range row {
			if v < worst {
				worst = v
			}
		}
		if i == 0 || worst > best {
			best = worst
		}
	}

	return best
}

// bruteSavage is an independent oracle: regret transform, then min over
// rows of regret row maxima.
func bruteSavage(values [][]float64) float64 {
	rows, cols := len(values), len(values[0])
	regret := make([][]float64, rows)
	for i := range regret {
		regret[i] = make([]float64, cols)
	}
	for j := 0; j < cols; j++ {
		colMax := values[0][j]
		for i := 1; i < rows; i++ {
			if values[i][j] > colMax {
				colMax = values[i][j]
			}
		}
		for i := 0; i < rows; i++ {
			regret[i][j] = colMax - values[i][j]
		}
	}

	best := 0.0
	for i, row := range regret {
		worst := row[0]
		for _, v := range row {
			if v > worst {
				worst = v
			}
		}
		if i == 0 || worst < best {
			best = worst
		}
	}

	return best
}

// bruteHurwicz is an independent oracle: max over rows of the blend.
func bruteHurwicz(values [][]float64, coefficient float64) float64 {
	best := 0.0
	for i, row := range values {
		minV, maxV := row[0], row[0]
		for _, v := range row {
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
		blend := coefficient*minV + (1-coefficient)*maxV
		if i == 0 || blend > best {
			best = blend
		}
	}

	return best
}

// randomProfits builds a deterministic rows×cols matrix of values in
// [-50, 50) for property tests.
func randomProfits(rng *rand.Rand, rows, cols int) [][]float64 {
	values := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		for j := 0; j < cols; j++ {
			row[j] = rng.Float64()*100 - 50
		}
		values[i] = row
	}

	return values
}

// reverseRows returns a row-permuted copy of values.
func reverseRows(values [][]float64) [][]float64 {
	out := make([][]float64, len(values))
	for i, row := range values {
		cp := make([]float64, len(row))
		copy(cp, row)
		out[len(values)-1-i] = cp
	}

	return out
}

// rotateCols returns a column-permuted copy of values (rotate left by one).
func rotateCols(values [][]float64) [][]float64 {
	out := make([][]float64, len(values))
	for i, row := range values {
		cols := len(row)
		cp := make([]float64, cols)
		for j := 0; j < cols; j++ {
			cp[j] = row[(j+1)%cols]
		}
		out[i] = cp
	}

	return out
}

// TestCriteria_AgainstOracles cross-checks all three criteria against
// the brute-force oracles on deterministic random matrices.
func TestCriteria_AgainstOracles(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 25; trial++ {
		rows, cols := 1+rng.Intn(8), 1+rng.Intn(8)
		values := randomProfits(rng, rows, cols)
		m, err := payoff.FromSlice(values)
		require.NoError(t, err)

		wald, err := criteria.Minimax(m)
		require.NoError(t, err)
		assert.Equal(t, bruteMinimax(values), wald, "minimax trial %d (%dx%d)", trial, rows, cols)

		regret, err := criteria.Savage(m)
		require.NoError(t, err)
		assert.Equal(t, bruteSavage(values), regret, "savage trial %d (%dx%d)", trial, rows, cols)

		alpha := rng.Float64()
		blend, err := criteria.Hurwicz(m, alpha)
		require.NoError(t, err)
		assert.InDelta(t, bruteHurwicz(values, alpha), blend, 1e-12,
			"hurwicz trial %d (%dx%d, alpha=%v)", trial, rows, cols, alpha)
	}
}

// TestCriteria_PermutationInvariance: permuting rows or columns changes
// no criterion value, since every reduction is order-independent and
// the regret transform is column-local.
func TestCriteria_PermutationInvariance(t *testing.T) {
	base := referenceProfits()
	variants := map[string][][]float64{
		"rows reversed":   reverseRows(base),
		"columns rotated": rotateCols(base),
	}

	orig, err := payoff.FromSlice(base)
	require.NoError(t, err)
	wantWald, err := criteria.Minimax(orig)
	require.NoError(t, err)
	wantSavage, err := criteria.Savage(orig)
	require.NoError(t, err)
	wantBlend, err := criteria.Hurwicz(orig, 0.8)
	require.NoError(t, err)

	for name, values := range variants {
		m, err := payoff.FromSlice(values)
		require.NoError(t, err)

		wald, err := criteria.Minimax(m)
		require.NoError(t, err)
		assert.Equal(t, wantWald, wald, "minimax under %s", name)

		sav, err := criteria.Savage(m)
		require.NoError(t, err)
		assert.Equal(t, wantSavage, sav, "savage under %s", name)

		blend, err := criteria.Hurwicz(m, 0.8)
		require.NoError(t, err)
		assert.InDelta(t, wantBlend, blend, 1e-12, "hurwicz under %s", name)
	}
}

// TestCriteria_DecisionAgreement: every Decision variant reports the
// same value as its scalar counterpart and a strategy that actually
// attains it.
func TestCriteria_DecisionAgreement(t *testing.T) {
	m, err := payoff.FromSlice(referenceProfits())
	require.NoError(t, err)

	wald, err := criteria.Minimax(m)
	require.NoError(t, err)
	waldD, err := criteria.MinimaxDecision(m)
	require.NoError(t, err)
	assert.Equal(t, wald, waldD.Value)
	worst, err := m.RowMin(waldD.Strategy)
	require.NoError(t, err)
	assert.Equal(t, waldD.Value, worst, "reported strategy must attain the value")

	sav, err := criteria.Savage(m)
	require.NoError(t, err)
	savD, err := criteria.SavageDecision(m)
	require.NoError(t, err)
	assert.Equal(t, sav, savD.Value)

	blend, err := criteria.Hurwicz(m, 0.8)
	require.NoError(t, err)
	blendD, err := criteria.HurwiczDecision(m, 0.8)
	require.NoError(t, err)
	assert.Equal(t, blend, blendD.Value)
}

// TestCriteria_ConcurrentEvaluation: the three criteria share no state,
// so concurrent evaluation over one matrix must match sequential results.
func TestCriteria_ConcurrentEvaluation(t *testing.T) {
	m, err := payoff.FromSlice(referenceProfits())
	require.NoError(t, err)

	type result struct {
		wald, sav, blend float64
	}
	results := make(chan result, 8)
	for g := 0; g < 8; g++ {
		go func() {
			var r result
			r.wald, _ = criteria.Minimax(m)
			r.sav, _ = criteria.Savage(m)
			r.blend, _ = criteria.Hurwicz(m, 0.8)
			results <- r
		}()
	}
	for g := 0; g < 8; g++ {
		r := <-results
		assert.Equal(t, 2.0, r.wald)
		assert.Equal(t, 15.0, r.sav)
		assert.InDelta(t, 4.4, r.blend, 1e-12)
	}
}
