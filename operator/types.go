package operator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/phylopso/phylo"
)

// Reason explains why an operator was not applied.
type Reason int

const (
	// ReasonNone marks an applied operation.
	ReasonNone Reason = iota
	// ReasonUnknownNode: an operand uid is not in the tree.
	ReasonUnknownNode
	// ReasonRootOperand: the germline cannot be edited this way.
	ReasonRootOperand
	// ReasonSameNode: both operands are the same node.
	ReasonSameNode
	// ReasonNoGrandparent: a back-mutation target must sit at depth ≥ 2.
	ReasonNoGrandparent
	// ReasonLossBudget: the tree already carries k losses in total.
	ReasonLossBudget
	// ReasonNoCandidate: no operand satisfies the operator's preconditions.
	ReasonNoCandidate
	// ReasonNotAncestor: the back-mutation candidate is not a gain above the target.
	ReasonNotAncestor
	// ReasonMutationBudget: the candidate's mutation is already lost k times.
	ReasonMutationBudget
	// ReasonAlreadyLost: the mutation is already lost on the target's path.
	ReasonAlreadyLost
	// ReasonNoLosses: there is no loss to delete.
	ReasonNoLosses
	// ReasonNotALoss: the node to delete is a gain.
	ReasonNotALoss
	// ReasonCycle: the regraft target lies inside the moved subtree.
	ReasonCycle
	// ReasonNoop: the regraft target is already the parent.
	ReasonNoop
	// ReasonEmptyClade: no clade to graft.
	ReasonEmptyClade
	// ReasonExhausted: every operator kind was tried and rejected.
	ReasonExhausted
)

var reasonNames = [...]string{
	ReasonNone:           "none",
	ReasonUnknownNode:    "unknown-node",
	ReasonRootOperand:    "root-operand",
	ReasonSameNode:       "same-node",
	ReasonNoGrandparent:  "no-grandparent",
	ReasonLossBudget:     "loss-budget",
	ReasonNoCandidate:    "no-candidate",
	ReasonNotAncestor:    "not-ancestor",
	ReasonMutationBudget: "mutation-budget",
	ReasonAlreadyLost:    "already-lost",
	ReasonNoLosses:       "no-losses",
	ReasonNotALoss:       "not-a-loss",
	ReasonCycle:          "cycle",
	ReasonNoop:           "noop",
	ReasonEmptyClade:     "empty-clade",
	ReasonExhausted:      "exhausted",
}

func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return fmt.Sprintf("reason(%d)", int(r))
	}
	return reasonNames[r]
}

// Outcome is the result of one operator attempt.
type Outcome struct {
	Kind    phylo.OpKind
	Applied bool
	Reason  Reason
	// UIDs are the operands as logged; empty on rejection.
	UIDs []string
}

func applied(kind phylo.OpKind, uids ...string) Outcome {
	return Outcome{Kind: kind, Applied: true, UIDs: uids}
}

func rejected(kind phylo.OpKind, r Reason) Outcome {
	return Outcome{Kind: kind, Reason: r}
}

// LocalKinds are the operator kinds ApplyRandom chooses from.
var LocalKinds = []phylo.OpKind{
	phylo.OpBackMutation,
	phylo.OpDeleteMutation,
	phylo.OpSwitchNodes,
	phylo.OpPruneRegraft,
}

// maxDraws bounds operand redraws inside a single Random* attempt.
const maxDraws = 4

// ErrUnknownKind is returned by Random for a kind outside LocalKinds.
var ErrUnknownKind = errors.New("operator: unknown operator kind")
