package likelihood_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/phylopso/builder"
	"github.com/katalvlaran/phylopso/genotype"
	"github.com/katalvlaran/phylopso/likelihood"
)

func BenchmarkScore(b *testing.B) {
	const cells, mutations = 200, 40
	rng := rand.New(rand.NewSource(1))
	rows := make([][]int, cells)
	for i := range rows {
		rows[i] = make([]int, mutations)
		for j := range rows[i] {
			rows[i][j] = rng.Intn(3)
		}
	}
	p, err := genotype.NewProblem(rows)
	if err != nil {
		b.Fatal(err)
	}
	tr, err := builder.BuildTree(mutations, []builder.BuilderOption{builder.WithRand(rng)}, builder.RandomBinary())
	if err != nil {
		b.Fatal(err)
	}
	s := likelihood.NewScorer(p)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Score(tr); err != nil {
			b.Fatal(err)
		}
	}
}
