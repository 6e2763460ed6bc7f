package operator

import (
	"math/rand"

	"github.com/katalvlaran/phylopso/phylo"
)

const methodPruneRegraft = "PruneRegraft"

// PruneRegraft detaches the subtree rooted at A and appends it to B's
// children. It rejects a root A, A == B, B already being A's parent and B
// inside A's subtree.
func PruneRegraft(t *phylo.Tree, uidA, uidB string) (Outcome, error) {
	a, b := t.NodeByUID(uidA), t.NodeByUID(uidB)
	if r := regraftable(a, b); r != ReasonNone {
		return rejected(phylo.OpPruneRegraft, r), nil
	}
	return regraft(t, a, b)
}

// RandomPruneRegraft draws A among the non-root gains and B among all gains
// and the root, redrawing a bounded number of times on rejection.
func RandomPruneRegraft(t *phylo.Tree, rng *rand.Rand) (Outcome, error) {
	pool := gains(t)
	if len(pool) == 0 {
		return rejected(phylo.OpPruneRegraft, ReasonNoCandidate), nil
	}
	targets := append([]*phylo.Node{t.Root}, pool...)

	last := ReasonNoCandidate
	for i := 0; i < maxDraws; i++ {
		a := pool[rng.Intn(len(pool))]
		b := targets[rng.Intn(len(targets))]
		if last = regraftable(a, b); last == ReasonNone {
			return regraft(t, a, b)
		}
	}
	return rejected(phylo.OpPruneRegraft, last), nil
}

func regraftable(a, b *phylo.Node) Reason {
	switch {
	case a == nil || b == nil:
		return ReasonUnknownNode
	case a.IsRoot():
		return ReasonRootOperand
	case a == b:
		return ReasonSameNode
	case a.Parent() == b:
		return ReasonNoop
	case a.IsAncestorOf(b):
		return ReasonCycle
	}
	return ReasonNone
}

func regraft(t *phylo.Tree, a, b *phylo.Node) (Outcome, error) {
	b.AddChild(a)
	uidA, uidB := a.UID, b.UID
	if err := repairAt(t, methodPruneRegraft, a); err != nil {
		return Outcome{}, err
	}
	t.Append(phylo.OpPruneRegraft, uidA, uidB)
	return applied(phylo.OpPruneRegraft, uidA, uidB), nil
}
