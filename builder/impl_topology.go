// SPDX-License-Identifier: MIT
// Package: phylopso/builder
//
// impl_topology.go: hand-shaped constructors: Chain, Under, Loss.

package builder

import (
	"fmt"

	"github.com/katalvlaran/phylopso/phylo"
)

const (
	methodChain = "Chain"
	methodUnder = "Under"
	methodLoss  = "Loss"
)

// Chain attaches ids as a single lineage under the root: root → ids[0] → ids[1] → ...
func Chain(ids ...int) Constructor {
	return func(t *phylo.Tree, cfg builderConfig) error {
		if err := checkIDs(methodChain, t.Mutations(), ids...); err != nil {
			return err
		}
		cur := t.Root
		for _, id := range ids {
			n := cfg.gain(id)
			cur.AddChild(n)
			cur = n
		}
		return nil
	}
}

// Under attaches each id as a child of the first gain of parent
// (parent == -1 targets the root).
func Under(parent int, ids ...int) Constructor {
	return func(t *phylo.Tree, cfg builderConfig) error {
		if parent != phylo.GermlineMutation {
			if err := checkIDs(methodUnder, t.Mutations(), parent); err != nil {
				return err
			}
		}
		if err := checkIDs(methodUnder, t.Mutations(), ids...); err != nil {
			return err
		}
		p := findGain(t, parent)
		if p == nil {
			return fmt.Errorf("%s: parent=%d: %w", methodUnder, parent, ErrParentNotFound)
		}
		for _, id := range ids {
			p.AddChild(cfg.gain(id))
		}
		return nil
	}
}

// Loss attaches a loss of mutation lost as a child of the first gain of parent.
// The loss is not validated here; BuildTree only checks the loss budget.
func Loss(parent, lost int) Constructor {
	return func(t *phylo.Tree, cfg builderConfig) error {
		if err := checkIDs(methodLoss, t.Mutations(), parent, lost); err != nil {
			return err
		}
		p := findGain(t, parent)
		if p == nil {
			return fmt.Errorf("%s: parent=%d: %w", methodLoss, parent, ErrParentNotFound)
		}
		p.AddChild(cfg.loss(lost))
		return nil
	}
}
