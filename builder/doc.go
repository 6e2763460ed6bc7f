// SPDX-License-Identifier: MIT
// Package: phylopso/builder
//
// Package builder constructs mutation trees deterministically: random
// binary starting trees for the search and hand-shaped fixtures for tests
// and examples.
//
// One orchestrator, BuildTree(mutations, bopts, cons...), creates a tree with
// a germline root, resolves the functional options into an immutable
// builderConfig and runs the constructors in order.
//
// Constructors:
//
//	RandomBinary()               shuffled mutations, two children per node, breadth order
//	Chain(ids...)                a single lineage under the root
//	Under(parent, ids...)        gains attached below the first gain of parent (-1 = root)
//	Loss(parent, lost)           a loss of mutation lost below the first gain of parent
//
// Options:
//
//	WithSeed(seed) / WithRand(r)  RNG for RandomBinary and uid generation
//	WithNames(names)              mutation labels (default "1".."m")
//	WithLossBudget(k)             per-mutation loss budget of the built tree
//	WithUIDScheme(fn)             deterministic uid generator
//
// Determinism: equal inputs, options, seed and constructor order ⇒ identical
// trees, uids included.
package builder
