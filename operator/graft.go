package operator

import (
	"fmt"
	"io"

	"github.com/katalvlaran/phylopso/phylo"
)

const methodGraftClade = "GraftClade"

// GraftClade attaches a copy of clade (a subtree of another tree) as a new
// child of the node attachUID.
//
// Steps:
//  1. Copy the clade; the donor is never modified.
//  2. Delete-and-collapse every gain of t whose mutation the copy also gains,
//     so each mutation is gained at most once. If the attach point is one of
//     them it climbs to its nearest surviving ancestor.
//  3. Re-key copied uids that collide with uids left in t, drawing from uids
//     (nil: crypto random).
//  4. Attach, repair every loss of the tree (this also drops copied losses
//     that are already lost on the attach path) and trim over-budget losses.
func GraftClade(t *phylo.Tree, attachUID string, clade *phylo.Node, uids io.Reader) (Outcome, error) {
	if clade == nil {
		return rejected(phylo.OpCladeGraft, ReasonEmptyClade), nil
	}
	if clade.MutationID == phylo.GermlineMutation {
		return rejected(phylo.OpCladeGraft, ReasonRootOperand), nil
	}
	attach := t.NodeByUID(attachUID)
	if attach == nil {
		return rejected(phylo.OpCladeGraft, ReasonUnknownNode), nil
	}

	// 1) Copy
	cp := clade.Copy()
	imported := make(map[int]bool)
	for _, n := range cp.PreOrder() {
		if !n.Loss && n.MutationID != phylo.GermlineMutation {
			imported[n.MutationID] = true
		}
	}
	if len(imported) == 0 {
		return rejected(phylo.OpCladeGraft, ReasonEmptyClade), nil
	}

	// 2) Remove duplicated gains
	doomed := make(map[*phylo.Node]bool)
	for _, n := range t.Nodes()[1:] {
		if !n.Loss && imported[n.MutationID] {
			doomed[n] = true
		}
	}
	for doomed[attach] {
		attach = attach.Parent()
	}
	for _, n := range t.Nodes()[1:] {
		if !doomed[n] {
			continue
		}
		if err := n.DeleteAndCollapse(); err != nil {
			return Outcome{}, fmt.Errorf("%s: %w", methodGraftClade, err)
		}
	}

	// 3) Re-key collisions
	taken := make(map[string]bool)
	for _, n := range t.Nodes() {
		taken[n.UID] = true
	}
	for _, n := range cp.PreOrder() {
		for taken[n.UID] {
			n.UID = phylo.NewUID(uids)
		}
		taken[n.UID] = true
	}

	// 4) Attach and repair
	attach.AddChild(cp)
	if _, err := t.RepairLosses(t.Root); err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", methodGraftClade, err)
	}
	if _, err := t.EnforceLossBudget(); err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", methodGraftClade, err)
	}
	if err := t.CheckInvariants(); err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", methodGraftClade, err)
	}

	head := cp.UID
	t.Append(phylo.OpCladeGraft, head, attach.UID)
	return applied(phylo.OpCladeGraft, head, attach.UID), nil
}
