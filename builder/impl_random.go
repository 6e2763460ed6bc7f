// SPDX-License-Identifier: MIT
// Package: phylopso/builder
//
// impl_random.go: RandomBinary constructor.
//
// Layout: mutation ids are shuffled, then appended in breadth order, two
// children per node, starting at the root. Every mutation is gained exactly
// once; no losses are created.

package builder

import (
	"fmt"

	"github.com/katalvlaran/phylopso/phylo"
)

const methodRandomBinary = "RandomBinary"

// RandomBinary returns a Constructor for a random binary tree over every
// mutation. Requires WithSeed or WithRand.
// Complexity: O(m).
func RandomBinary() Constructor {
	return func(t *phylo.Tree, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomBinary, ErrNeedRandSource)
		}

		m := t.Mutations()
		order := cfg.rng.Perm(m)

		nodes := make([]*phylo.Node, 0, m+1)
		nodes = append(nodes, t.Root)
		parent := 0
		for i := 0; i < m; parent++ {
			// two children per slot, breadth first
			for j := 0; j < 2 && i < m; j++ {
				n := cfg.gain(order[i])
				nodes[parent].AddChild(n)
				nodes = append(nodes, n)
				i++
			}
		}
		return nil
	}
}
