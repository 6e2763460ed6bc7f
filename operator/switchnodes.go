package operator

import (
	"math/rand"

	"github.com/katalvlaran/phylopso/phylo"
)

const methodSwitchNodes = "SwitchNodes"

// SwitchNodes exchanges name, mutation id and loss flag between two distinct
// non-root nodes. Positions and uids stay put. Losses invalidated by the
// exchange are repaired below both positions.
func SwitchNodes(t *phylo.Tree, uidA, uidB string) (Outcome, error) {
	a, b := t.NodeByUID(uidA), t.NodeByUID(uidB)
	if r := switchable(a, b); r != ReasonNone {
		return rejected(phylo.OpSwitchNodes, r), nil
	}
	return switchPayload(t, a, b)
}

// RandomSwitchNodes draws both operands among the non-root gains.
func RandomSwitchNodes(t *phylo.Tree, rng *rand.Rand) (Outcome, error) {
	pool := gains(t)
	if len(pool) < 2 {
		return rejected(phylo.OpSwitchNodes, ReasonNoCandidate), nil
	}
	a := pool[rng.Intn(len(pool))]
	b := pool[rng.Intn(len(pool))]
	if a == b {
		return rejected(phylo.OpSwitchNodes, ReasonSameNode), nil
	}
	return switchPayload(t, a, b)
}

func switchable(a, b *phylo.Node) Reason {
	switch {
	case a == nil || b == nil:
		return ReasonUnknownNode
	case a == b:
		return ReasonSameNode
	case a.IsRoot() || b.IsRoot():
		return ReasonRootOperand
	}
	return ReasonNone
}

func switchPayload(t *phylo.Tree, a, b *phylo.Node) (Outcome, error) {
	a.Name, b.Name = b.Name, a.Name
	a.MutationID, b.MutationID = b.MutationID, a.MutationID
	a.Loss, b.Loss = b.Loss, a.Loss

	uidA, uidB := a.UID, b.UID
	if err := repairAt(t, methodSwitchNodes, a, b); err != nil {
		return Outcome{}, err
	}
	t.Append(phylo.OpSwitchNodes, uidA, uidB)
	return applied(phylo.OpSwitchNodes, uidA, uidB), nil
}
