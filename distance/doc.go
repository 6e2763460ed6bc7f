// Package distance measures how far apart two mutation trees are.
//
// Every non-root node of a tree roots a clade. Two clades, one per tree,
// are linked by an edge whose weight is the number of mutations present in
// both clades' genotype profiles (losses cancel the gains they undo). The
// clades are then paired by an exact maximum-weight bipartite matching and
//
//	distance(T1, T2) = max(count(T1), count(T2)) − matched weight
//
// where count(T) sums, over all nodes, the mutations present in the node's
// profile. Comparing a tree with a copy of itself matches every clade with
// its twin and yields 0.
//
// SelectClade turns a distance into a donor clade: the further apart the
// trees, the bigger the clade that is grafted.
package distance
