package operator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/phylopso/phylo"
)

const methodDeleteMutation = "DeleteMutation"

// DeleteMutation deletes-and-collapses the loss node uid.
func DeleteMutation(t *phylo.Tree, uid string) (Outcome, error) {
	n := t.NodeByUID(uid)
	switch {
	case n == nil:
		return rejected(phylo.OpDeleteMutation, ReasonUnknownNode), nil
	case n.IsRoot():
		return rejected(phylo.OpDeleteMutation, ReasonRootOperand), nil
	case !n.Loss:
		return rejected(phylo.OpDeleteMutation, ReasonNotALoss), nil
	}
	return deleteLoss(t, n)
}

// RandomDeleteMutation deletes a loss drawn uniformly from the tree's losses.
func RandomDeleteMutation(t *phylo.Tree, rng *rand.Rand) (Outcome, error) {
	losses := t.Losses()
	if len(losses) == 0 {
		return rejected(phylo.OpDeleteMutation, ReasonNoLosses), nil
	}
	return deleteLoss(t, losses[rng.Intn(len(losses))])
}

func deleteLoss(t *phylo.Tree, n *phylo.Node) (Outcome, error) {
	uid := n.UID
	if err := t.DeleteLoss(n); err != nil {
		return Outcome{}, fmt.Errorf("%s(%s): %w", methodDeleteMutation, uid, err)
	}
	if err := t.CheckInvariants(); err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", methodDeleteMutation, err)
	}
	t.Append(phylo.OpDeleteMutation, uid)
	return applied(phylo.OpDeleteMutation, uid), nil
}
