package swarm_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylopso/genotype"
)

// smallProblem is the 4 cells × 3 mutations matrix used for end-to-end runs.
func smallProblem(t testing.TB) *genotype.Problem {
	t.Helper()
	p, err := genotype.NewProblem([][]int{
		{1, 0, 0},
		{1, 1, 0},
		{1, 1, 1},
		{0, 0, 1},
	}, genotype.WithRates(0.1, 0.01), genotype.WithLossBudget(1))
	require.NoError(t, err)
	return p
}

// noisyProblem draws a cells × mutations matrix with about 10% missing entries.
func noisyProblem(t testing.TB, seed int64, cells, mutations, k int) *genotype.Problem {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int, cells)
	for i := range rows {
		rows[i] = make([]int, mutations)
		for j := range rows[i] {
			switch r := rng.Float64(); {
			case r < 0.1:
				rows[i][j] = genotype.Missing
			case r < 0.55:
				rows[i][j] = genotype.Present
			}
		}
	}
	p, err := genotype.NewProblem(rows, genotype.WithLossBudget(k))
	require.NoError(t, err)
	return p
}
