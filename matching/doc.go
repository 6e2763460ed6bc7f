// Package matching computes maximum-weight matchings on complete bipartite
// graphs given as a weight matrix (rows = left side, columns = right side).
//
// MaxWeight runs the Hungarian algorithm (potentials + shortest augmenting
// paths) on the negated weights, so the result is an exact optimum, never a
// greedy or maximal approximation. Rectangular inputs are supported; the
// smaller side is fully matched. Since weights are non-negative, a maximum
// weight assignment is also a maximum weight matching.
//
// Complexity: O(n² · m) time, O(n + m) extra space, n = min(rows, cols),
// m = max(rows, cols).
package matching
