// Package swarm drives the particle search over mutation trees.
//
// A Swarm owns a fixed set of particles. Each particle holds a current tree
// and the best tree it has scored so far; the swarm tracks the single best
// tree over all particles.
//
// Round model:
//
//  1. Snapshot. Every task receives its particle's current tree, its
//     particle best and the swarm best as they stood when the round began.
//  2. Fan-out. One task per particle runs on a bounded worker pool. A task
//     copies the current tree, picks a donor among {current, particle best,
//     swarm best} with weights inertia·localBias, c1·d(particle best) and
//     c2·d(swarm best), grafts a clade of the donor sized by that distance
//     (unless the donor is the current tree), applies one local edit and
//     rescores.
//  3. Reduction. Once every task returned, results are folded in particle
//     index order: the candidate becomes the particle's current tree and
//     replaces a best only when its log-likelihood is strictly higher.
//
// Determinism: every task draws from its own stream derived from (seed,
// round, particle index), and the reduction order is fixed, so a run is
// reproducible for a given seed whatever the number of workers.
//
// Errors: operator rejections are part of the search. An error wrapping
// phylo.ErrInvariantViolation means a tree was corrupted; the round is
// abandoned and RunIterations returns it.
//
// The context passed to Initialize and RunIterations carries tracing and is
// handed to the run recorder; a run is never cancelled through it.
package swarm
