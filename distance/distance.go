package distance

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/phylopso/matching"
	"github.com/katalvlaran/phylopso/phylo"
)

var (
	// ErrMutationSpace is returned when two trees are built over different
	// numbers of mutations.
	ErrMutationSpace = errors.New("distance: trees use different mutation spaces")

	// ErrNoClade is returned when a donor tree has no gain to offer.
	ErrNoClade = errors.New("distance: no clade available")
)

// Result details one distance computation.
type Result struct {
	// Value is the tree distance, never negative.
	Value int
	// Matched is the maximum-weight matching value.
	Matched int
	// CountA and CountB are the mutation counts of both trees.
	CountA, CountB int
}

// presence turns a genotype profile into the set of present mutations.
func presence(profile []int) []bool {
	out := make([]bool, len(profile))
	for j, v := range profile {
		out[j] = v > 0
	}
	return out
}

func countPresent(profile []int) int {
	c := 0
	for _, v := range profile {
		if v > 0 {
			c++
		}
	}
	return c
}

// MutationCount sums, over every node of t, the number of mutations present
// in the node's genotype profile.
func MutationCount(t *phylo.Tree) int {
	_, profiles := t.Profiles()
	total := 0
	for _, p := range profiles {
		total += countPresent(p)
	}
	return total
}

// Weights builds the clade weight matrix of a (rows) against b (columns),
// together with the clades in pre-order. It returns a nil matrix when either
// tree has no clade.
func Weights(a, b *phylo.Tree) (*mat.Dense, []*phylo.Node, []*phylo.Node, error) {
	if a.Mutations() != b.Mutations() {
		return nil, nil, nil, fmt.Errorf("Weights: %d vs %d: %w", a.Mutations(), b.Mutations(), ErrMutationSpace)
	}
	ca, err := a.Clades()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("Weights: %w", err)
	}
	cb, err := b.Clades()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("Weights: %w", err)
	}
	if len(ca) == 0 || len(cb) == 0 {
		return nil, ca, cb, nil
	}

	pa := cladePresence(ca, a.Mutations())
	pb := cladePresence(cb, b.Mutations())
	w := mat.NewDense(len(ca), len(cb), nil)
	for i, x := range pa {
		for j, y := range pb {
			common := 0
			for m := range x {
				if x[m] && y[m] {
					common++
				}
			}
			w.Set(i, j, float64(common))
		}
	}
	return w, ca, cb, nil
}

func cladePresence(clades []*phylo.Node, mutations int) [][]bool {
	out := make([][]bool, len(clades))
	for i, c := range clades {
		prof := make([]int, mutations)
		c.GenotypeProfile(prof)
		out[i] = presence(prof)
	}
	return out
}

// Distance computes the tree distance between a and b.
// Complexity: O(|C_a|·|C_b|·m + n²·n') for the weights and the matching.
func Distance(a, b *phylo.Tree) (Result, error) {
	w, _, _, err := Weights(a, b)
	if err != nil {
		return Result{}, fmt.Errorf("Distance: %w", err)
	}
	res := Result{CountA: MutationCount(a), CountB: MutationCount(b)}
	top := max(res.CountA, res.CountB)

	if w == nil {
		res.Value = top
		return res, nil
	}
	mm, err := matching.MaxWeight(w)
	if err != nil {
		return Result{}, fmt.Errorf("Distance: %w", err)
	}
	res.Matched = int(math.Round(mm.Weight))
	res.Value = top - res.Matched
	if res.Value < 0 {
		res.Value = 0
	}
	return res, nil
}
