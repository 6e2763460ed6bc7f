// Package likelihood scores a mutation tree against the observation matrix
// of a genotype.Problem.
//
// Every node's genotype profile is read as a binary truth vector (mutation
// present iff the profile entry is positive). Each cell is greedily assigned
// to the node that maximizes
//
//	Σ_j log P(observed[i][j] | truth[node][j])
//
// under the noise model
//
//	observed 0 | true 0 : 1-β      observed 1 | true 0 : β
//	observed 0 | true 1 : α        observed 1 | true 1 : 1-α
//	observed missing    : 1
//
// and the tree's log-likelihood is the sum of the per-cell maxima. Ties go
// to the first node in pre-order, the germline included.
//
// A Scorer is immutable after NewScorer and safe for concurrent use.
// Complexity: O(cells · nodes · mutations) per Score.
package likelihood
