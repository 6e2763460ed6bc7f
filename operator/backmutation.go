package operator

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/katalvlaran/phylopso/phylo"
)

const methodBackMutation = "BackMutation"

// BackMutation inserts, between target and its parent, a loss of the
// mutation gained by candidate, a non-root gain above target. New node uids
// are drawn from uids (nil: crypto random).
//
// Rejections, in order: unknown operands, target without grandparent, the
// tree already holding k losses, no gain above target, candidate not above
// target, candidate's mutation already lost k times, mutation already lost
// on target's path.
func BackMutation(t *phylo.Tree, targetUID, candidateUID string, uids io.Reader) (Outcome, error) {
	target := t.NodeByUID(targetUID)
	if target == nil {
		return rejected(phylo.OpBackMutation, ReasonUnknownNode), nil
	}
	if r := backMutationTarget(t, target); r != ReasonNone {
		return rejected(phylo.OpBackMutation, r), nil
	}

	var cand *phylo.Node
	for _, a := range lossCandidates(target) {
		if a.UID == candidateUID {
			cand = a
			break
		}
	}
	if cand == nil {
		return rejected(phylo.OpBackMutation, ReasonNotAncestor), nil
	}
	return insertLoss(t, target, cand, uids)
}

// RandomBackMutation picks the target uniformly among all nodes and the
// candidate uniformly among the gains above it.
func RandomBackMutation(t *phylo.Tree, rng *rand.Rand) (Outcome, error) {
	nodes := t.Nodes()
	target := nodes[rng.Intn(len(nodes))]
	if r := backMutationTarget(t, target); r != ReasonNone {
		return rejected(phylo.OpBackMutation, r), nil
	}
	cands := lossCandidates(target)
	return insertLoss(t, target, cands[rng.Intn(len(cands))], rng)
}

// backMutationTarget checks the target-only preconditions.
func backMutationTarget(t *phylo.Tree, target *phylo.Node) Reason {
	p := target.Parent()
	if p == nil || p.Parent() == nil {
		return ReasonNoGrandparent
	}
	if t.LossCount() >= t.K() {
		return ReasonLossBudget
	}
	if len(lossCandidates(target)) == 0 {
		return ReasonNoCandidate
	}
	return ReasonNone
}

// lossCandidates lists the non-root gains above n, nearest first.
func lossCandidates(n *phylo.Node) []*phylo.Node {
	var out []*phylo.Node
	for p := n.Parent(); p != nil && !p.IsRoot(); p = p.Parent() {
		if !p.Loss {
			out = append(out, p)
		}
	}
	return out
}

func insertLoss(t *phylo.Tree, target, cand *phylo.Node, uids io.Reader) (Outcome, error) {
	m := cand.MutationID
	if t.KLoss(m) >= t.K() {
		return rejected(phylo.OpBackMutation, ReasonMutationBudget), nil
	}
	if target.IsAlreadyLost(m) {
		return rejected(phylo.OpBackMutation, ReasonAlreadyLost), nil
	}

	loss := phylo.NewNode(phylo.Payload{
		UID:        phylo.NewUID(uids),
		Name:       cand.Name,
		MutationID: m,
		Loss:       true,
	})
	if err := target.InsertAbove(loss); err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", methodBackMutation, err)
	}
	if err := repairAt(t, methodBackMutation, loss); err != nil {
		return Outcome{}, err
	}

	t.Append(phylo.OpBackMutation, loss.UID, target.UID, cand.UID)
	return applied(phylo.OpBackMutation, loss.UID, target.UID, cand.UID), nil
}
