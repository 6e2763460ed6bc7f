package operator

import (
	"fmt"

	"github.com/katalvlaran/phylopso/phylo"
)

// repairAt runs the loss repair from every node that is still attached to t,
// then verifies the invariants once.
func repairAt(t *phylo.Tree, method string, from ...*phylo.Node) error {
	for _, n := range from {
		if n.Root() != t.Root {
			// deleted by an earlier pass
			continue
		}
		if _, err := t.RepairLosses(n); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}
	if err := t.CheckInvariants(); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// gains returns every non-root, non-loss node in pre-order.
func gains(t *phylo.Tree) []*phylo.Node {
	var out []*phylo.Node
	for _, n := range t.Nodes()[1:] {
		if !n.Loss {
			out = append(out, n)
		}
	}
	return out
}
