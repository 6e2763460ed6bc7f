package distance

import (
	"fmt"

	"github.com/katalvlaran/phylopso/phylo"
)

// SubtreeMutationCount sums the present mutations of every node in the
// subtree rooted at n. mutations is the size of the mutation space.
func SubtreeMutationCount(n *phylo.Node, mutations int) int {
	total := 0
	prof := make([]int, mutations)
	for _, x := range n.PreOrder() {
		for j := range prof {
			prof[j] = 0
		}
		x.GenotypeProfile(prof)
		total += countPresent(prof)
	}
	return total
}

// SelectClade picks the donor clade for a graft given a distance d: among
// the clades of donor rooted at a gain, the one with the largest subtree
// mutation count not above d, or the smallest clade when none fits. Ties go
// to the first clade in pre-order.
func SelectClade(donor *phylo.Tree, d int) (*phylo.Node, error) {
	clades, err := donor.Clades()
	if err != nil {
		return nil, fmt.Errorf("SelectClade: %w", err)
	}

	var fit, smallest *phylo.Node
	fitSize, smallSize := -1, 0
	for _, c := range clades {
		if c.Loss {
			continue
		}
		size := SubtreeMutationCount(c, donor.Mutations())
		if smallest == nil || size < smallSize {
			smallest, smallSize = c, size
		}
		if size <= d && size > fitSize {
			fit, fitSize = c, size
		}
	}
	switch {
	case fit != nil:
		return fit, nil
	case smallest != nil:
		return smallest, nil
	}
	return nil, fmt.Errorf("SelectClade: %w", ErrNoClade)
}
