// File: tree.go
// Role: MutationTree aggregate: root ownership, loss bookkeeping, repair,
// invariant checks, copies and snapshots.

package phylo

import (
	"fmt"
	"math"
)

// Tree is a mutation tree plus its cached loss bookkeeping and score.
//
// Invariant (after every completed repair pass):
//
//	kLosses[m] == |{n in losses : n.MutationID == m}|  and  kLosses[m] <= k
type Tree struct {
	// Root is the germline node. It is owned exclusively by the tree.
	Root *Node

	// Likelihood is the cached log-likelihood; -Inf until scored.
	Likelihood float64

	// BestCellAssignment holds, per cell, the node that best explains it.
	BestCellAssignment []*Node

	// Log records the successful edits that produced this tree.
	Log []Operation

	mutations int
	k         int
	losses    []*Node
	kLosses   []int
}

// NewTree returns a tree with a lone germline root over the given number of
// mutations and a loss budget of k per mutation.
func NewTree(mutations, k int) *Tree {
	return &Tree{
		Root:       NewNode(Payload{UID: GermlineUID, Name: GermlineName, MutationID: GermlineMutation}),
		Likelihood: math.Inf(-1),
		mutations:  mutations,
		k:          k,
		kLosses:    make([]int, mutations),
	}
}

// Mutations is the size of the mutation space.
func (t *Tree) Mutations() int { return t.mutations }

// K is the per-mutation loss budget.
func (t *Tree) K() int { return t.k }

// Nodes returns all nodes in pre-order, root first.
func (t *Tree) Nodes() []*Node { return t.Root.PreOrder() }

// Size is the number of nodes, root included.
func (t *Tree) Size() int { return len(t.Root.PreOrder()) }

// Height is the height of the root.
func (t *Tree) Height() int { return t.Root.Height() }

// NodeByUID finds the node with the given uid, or nil.
func (t *Tree) NodeByUID(uid string) *Node { return t.Root.FindByUID(uid) }

// Clades returns every non-root node. See Node.Clades.
func (t *Tree) Clades() ([]*Node, error) { return t.Root.Clades() }

// Losses returns a copy of the registered loss nodes.
func (t *Tree) Losses() []*Node { return append([]*Node(nil), t.losses...) }

// LossCount is len(Losses()).
func (t *Tree) LossCount() int { return len(t.losses) }

// KLosses returns a copy of the per-mutation loss counters.
func (t *Tree) KLosses() []int { return append([]int(nil), t.kLosses...) }

// KLoss returns the number of registered losses of mutation m.
func (t *Tree) KLoss(m int) int { return t.kLosses[m] }

// Append records a successful edit.
func (t *Tree) Append(kind OpKind, uids ...string) {
	t.Log = append(t.Log, Operation{Kind: kind, UIDs: uids})
}

// RecomputeLosses rebuilds the losses list and counters from tree contents.
// Complexity: O(V).
func (t *Tree) RecomputeLosses() {
	t.losses = t.losses[:0]
	for i := range t.kLosses {
		t.kLosses[i] = 0
	}
	for _, n := range t.Root.PreOrder() {
		if n.Loss {
			t.losses = append(t.losses, n)
			t.kLosses[n.MutationID]++
		}
	}
}

func (t *Tree) lossIndex(n *Node) int {
	for i, x := range t.losses {
		if x == n {
			return i
		}
	}
	return -1
}

// DeleteLoss deletes-and-collapses a registered loss node and updates the
// bookkeeping.
func (t *Tree) DeleteLoss(n *Node) error {
	i := t.lossIndex(n)
	if i < 0 {
		return ErrNotALoss
	}
	if err := n.DeleteAndCollapse(); err != nil {
		return fmt.Errorf("DeleteLoss(%s): %w", n.UID, err)
	}
	t.losses = append(t.losses[:i], t.losses[i+1:]...)
	t.kLosses[n.MutationID]--
	return nil
}

// RepairLosses rebuilds the bookkeeping, then visits the subtree rooted at
// from in post-order and deletes every registered loss that is either not
// backed by an ancestor gain or already lost upstream. Children are visited
// before parents because deletions reshape the tree mid-pass.
// It returns the number of deleted nodes.
func (t *Tree) RepairLosses(from *Node) (int, error) {
	t.RecomputeLosses()
	if from == nil {
		from = t.Root
	}
	removed := 0
	for _, n := range from.PostOrder() {
		if !n.Loss || t.lossIndex(n) < 0 {
			continue
		}
		if n.IsLossValid() && !n.IsAlreadyLost(n.MutationID) {
			continue
		}
		if err := t.DeleteLoss(n); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// EnforceLossBudget deletes losses of over-budget mutations, last in
// pre-order first, until every counter is within k. Used after grafts,
// which can import losses wholesale.
func (t *Tree) EnforceLossBudget() (int, error) {
	removed := 0
	for i := len(t.losses) - 1; i >= 0; i-- {
		n := t.losses[i]
		if t.kLosses[n.MutationID] <= t.k {
			continue
		}
		if err := t.DeleteLoss(n); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// FixForLosses runs RepairLosses from the given node and then verifies the
// tree invariants. A non-nil error wraps ErrInvariantViolation unless the
// repair itself failed on a malformed tree.
func (t *Tree) FixForLosses(from *Node) error {
	if _, err := t.RepairLosses(from); err != nil {
		return err
	}
	return t.CheckInvariants()
}

// CheckInvariants verifies root shape, parent/child consistency (no
// dangling, duplicated or cyclic parentage), bookkeeping consistency and the
// per-mutation loss budget.
// Complexity: O(V).
func (t *Tree) CheckInvariants() error {
	r := t.Root
	if r == nil || r.parent != nil || r.MutationID != GermlineMutation || r.Loss {
		return fmt.Errorf("CheckInvariants: malformed root: %w", ErrBrokenParentage)
	}

	seen := make(map[*Node]struct{})
	counts := make([]int, t.mutations)
	total := 0
	stack := []*Node{r}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, dup := seen[n]; dup {
			return fmt.Errorf("CheckInvariants: node %s reached twice: %w", n.UID, ErrBrokenParentage)
		}
		seen[n] = struct{}{}
		if n != r && (n.MutationID < 0 || n.MutationID >= t.mutations) {
			return fmt.Errorf("CheckInvariants: node %s mutation %d out of range: %w", n.UID, n.MutationID, ErrInvariantViolation)
		}
		if n.Loss {
			counts[n.MutationID]++
			total++
		}
		for _, c := range n.children {
			if c.parent != n {
				return fmt.Errorf("CheckInvariants: child %s of %s: %w", c.UID, n.UID, ErrBrokenParentage)
			}
			stack = append(stack, c)
		}
	}

	if total != len(t.losses) {
		return fmt.Errorf("CheckInvariants: %d loss nodes, %d registered: %w", total, len(t.losses), ErrInvariantViolation)
	}
	for m, c := range counts {
		if c != t.kLosses[m] {
			return fmt.Errorf("CheckInvariants: mutation %d has %d losses, %d counted: %w", m, c, t.kLosses[m], ErrInvariantViolation)
		}
		if c > t.k {
			return fmt.Errorf("CheckInvariants: mutation %d lost %d times (k=%d): %w", m, c, t.k, ErrLossBudgetExceeded)
		}
	}
	return nil
}

// Copy deep-copies the tree. UIDs, likelihood and the edit log are kept;
// the best cell assignment is remapped onto the copied nodes by uid.
// Complexity: O(V + cells).
func (t *Tree) Copy() *Tree {
	cp := &Tree{
		Root:       t.Root.Copy(),
		Likelihood: t.Likelihood,
		mutations:  t.mutations,
		k:          t.k,
		kLosses:    make([]int, t.mutations),
	}
	if len(t.Log) > 0 {
		cp.Log = make([]Operation, len(t.Log))
		for i, op := range t.Log {
			cp.Log[i] = Operation{Kind: op.Kind, UIDs: append([]string(nil), op.UIDs...)}
		}
	}
	cp.RecomputeLosses()

	if t.BestCellAssignment != nil {
		byUID := make(map[string]*Node)
		for _, n := range cp.Root.PreOrder() {
			byUID[n.UID] = n
		}
		cp.BestCellAssignment = make([]*Node, len(t.BestCellAssignment))
		for i, n := range t.BestCellAssignment {
			if n != nil {
				cp.BestCellAssignment[i] = byUID[n.UID]
			}
		}
	}
	return cp
}

// Profiles returns every node in pre-order together with its genotype profile.
// Complexity: O(V · depth).
func (t *Tree) Profiles() ([]*Node, [][]int) {
	nodes := t.Root.PreOrder()
	profiles := make([][]int, len(nodes))
	for i, n := range nodes {
		profiles[i] = make([]int, t.mutations)
		n.GenotypeProfile(profiles[i])
	}
	return nodes, profiles
}

// Snapshot flattens the tree into records in pre-order.
func (t *Tree) Snapshot() []Record {
	nodes := t.Root.PreOrder()
	out := make([]Record, len(nodes))
	for i, n := range nodes {
		out[i] = Record{UID: n.UID, Name: n.Name, MutationID: n.MutationID, Loss: n.Loss}
		if n.parent != nil {
			out[i].ParentUID = n.parent.UID
		}
	}
	return out
}
