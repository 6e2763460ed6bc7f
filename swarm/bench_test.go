package swarm_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/phylopso/swarm"
)

func BenchmarkRound(b *testing.B) {
	ctx := context.Background()
	p := noisyProblem(b, 1, 100, 20, 1)
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			s, err := swarm.Initialize(ctx, p,
				swarm.WithParticles(8),
				swarm.WithWorkers(workers),
				swarm.WithSeed(1))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := s.RunIterations(ctx, 1); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInitialize(b *testing.B) {
	ctx := context.Background()
	p := noisyProblem(b, 2, 100, 20, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := swarm.Initialize(ctx, p, swarm.WithParticles(8), swarm.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}
