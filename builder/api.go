// SPDX-License-Identifier: MIT
// Package: phylopso/builder
//
// api.go: BuildTree orchestrator and the Constructor contract.

package builder

import (
	"fmt"

	"github.com/katalvlaran/phylopso/phylo"
)

// Constructor applies a deterministic edit to a tree under construction.
// Constructors validate early, return sentinel errors and never panic.
type Constructor func(t *phylo.Tree, cfg builderConfig) error

// BuildTree creates a germline-rooted tree over mutations, resolves bopts and
// applies cons in order. The result has its loss bookkeeping computed and is
// checked against the tree invariants; scoring is left to the caller.
func BuildTree(mutations int, bopts []BuilderOption, cons ...Constructor) (*phylo.Tree, error) {
	if mutations < 1 {
		return nil, fmt.Errorf("BuildTree: mutations=%d: %w", mutations, ErrTooFewMutations)
	}
	cfg := newBuilderConfig(mutations, bopts...)
	if len(cfg.names) != mutations {
		return nil, fmt.Errorf("BuildTree: %d names for %d mutations: %w", len(cfg.names), mutations, ErrConstructFailed)
	}

	t := phylo.NewTree(mutations, cfg.k)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildTree: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("BuildTree: %w", err)
		}
	}

	t.RecomputeLosses()
	if err := t.CheckInvariants(); err != nil {
		return nil, fmt.Errorf("BuildTree: %w: %w", ErrConstructFailed, err)
	}
	return t, nil
}

func checkIDs(method string, mutations int, ids ...int) error {
	for _, id := range ids {
		if id < 0 || id >= mutations {
			return fmt.Errorf("%s: id=%d (mutations=%d): %w", method, id, mutations, ErrMutationOutOfRange)
		}
	}
	return nil
}

// findGain returns the first gain of mutation m in pre-order; m == -1 is the root.
func findGain(t *phylo.Tree, m int) *phylo.Node {
	if m == phylo.GermlineMutation {
		return t.Root
	}
	for _, n := range t.Nodes() {
		if !n.Loss && n.MutationID == m {
			return n
		}
	}
	return nil
}
