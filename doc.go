// Package phylopso infers the clonal phylogeny of a tumour from noisy
// single-cell mutation data with a particle swarm search over mutation
// trees.
//
// 🚀 What is phylopso?
//
//	A library that scores and edits mutation trees under the Dollo(k) model:
//		• Problem context: cells × mutations matrix (0/1, 2 = missing), α, β, k
//		• Tree algebra: gains, losses, copy, traversal, clades, integrity checks
//		• Edits: back-mutation, delete, switch, prune-and-regraft, clade graft
//		• Scoring: greedy per-cell log-likelihood with a precomputed noise table
//		• Distance: clade overlap matched by a Hungarian maximum-weight matching
//		• Search: a seeded, reproducible particle swarm with a bounded worker pool
//		• History: run summaries in memory or in SQLite
//		• Interop: Newick export and import through gotree
//
// Under the hood the work is split into flat subpackages:
//
//	genotype/     observation matrix and noise parameters
//	phylo/        Node, Tree and loss bookkeeping
//	builder/      deterministic tree constructors (random binary, chains, losses)
//	operator/     tree edits with typed rejection reasons
//	likelihood/   log-likelihood scorer
//	matching/     maximum-weight bipartite matching
//	distance/     tree distance and clade selection
//	runlog/       run history recorders
//	swarm/        the search coordinator (metrics, tracing, logging)
//	converters/   gotree adapters and Newick text
//
// Quick example:
//
//	p, _ := genotype.NewProblem(rows, genotype.WithRates(0.1, 0.01), genotype.WithLossBudget(1))
//	s, _ := swarm.Initialize(ctx, p, swarm.WithParticles(5), swarm.WithSeed(42))
//	_ = s.RunIterations(ctx, 20)
//	best := s.Best() // likelihood, cell assignment and edit log
//
// The phylopso command (cmd/phylopso) runs a search on a matrix file and
// reads back recorded run history.
//
//	go get github.com/katalvlaran/phylopso
package phylopso
