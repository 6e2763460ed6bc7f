package phylo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylopso/phylo"
)

// lossTree builds germline → a(0) → b(1) → l0(-0) → c(2), with a dangling
// loss of mutation 2 under b that no ancestor backs.
func lossTree(t *testing.T) *phylo.Tree {
	t.Helper()
	tr := phylo.NewTree(3, 1)
	a := gain(tr.Root, "a", 0)
	b := gain(a, "b", 1)
	l0 := loss(b, "l0", 0)
	gain(l0, "c", 2)
	loss(b, "bad", 2)
	tr.RecomputeLosses()
	return tr
}

func TestTree_NewTree(t *testing.T) {
	tr := phylo.NewTree(4, 2)
	assert.Equal(t, phylo.GermlineMutation, tr.Root.MutationID)
	assert.Equal(t, phylo.GermlineName, tr.Root.Name)
	assert.True(t, math.IsInf(tr.Likelihood, -1))
	assert.Equal(t, []int{0, 0, 0, 0}, tr.KLosses())
	assert.Equal(t, 4, tr.Mutations())
	assert.Equal(t, 2, tr.K())
	require.NoError(t, tr.CheckInvariants())
}

func TestTree_RecomputeLosses(t *testing.T) {
	tr := lossTree(t)
	assert.Equal(t, 2, tr.LossCount())
	assert.Equal(t, []int{1, 0, 1}, tr.KLosses())
}

func TestTree_FixForLosses_RemovesInvalid(t *testing.T) {
	tr := lossTree(t)
	require.NoError(t, tr.FixForLosses(tr.Root))

	assert.Nil(t, tr.NodeByUID("bad"))
	assert.NotNil(t, tr.NodeByUID("l0"))
	assert.Equal(t, []int{1, 0, 0}, tr.KLosses())
	for _, n := range tr.Losses() {
		assert.True(t, n.IsLossValid())
		assert.False(t, n.IsAlreadyLost(n.MutationID))
	}
}

func TestTree_FixForLosses_DoubleLoss(t *testing.T) {
	tr := phylo.NewTree(2, 2)
	a := gain(tr.Root, "a", 0)
	l1 := loss(a, "l1", 0)
	l2 := loss(l1, "l2", 0)
	gain(l2, "b", 1)

	require.NoError(t, tr.FixForLosses(nil))
	assert.Nil(t, tr.NodeByUID("l2"))
	assert.Equal(t, "l1", tr.NodeByUID("b").Parent().UID)

	var total int
	for _, c := range tr.KLosses() {
		total += c
	}
	assert.Equal(t, tr.LossCount(), total)
}

func TestTree_DeleteLoss(t *testing.T) {
	tr := lossTree(t)
	c := tr.NodeByUID("c")

	require.NoError(t, tr.DeleteLoss(tr.NodeByUID("l0")))
	assert.Equal(t, "b", c.Parent().UID)
	assert.Equal(t, []int{0, 0, 1}, tr.KLosses())

	assert.ErrorIs(t, tr.DeleteLoss(c), phylo.ErrNotALoss)
}

func TestTree_EnforceLossBudget(t *testing.T) {
	tr := phylo.NewTree(1, 1)
	a := gain(tr.Root, "a", 0)
	loss(a, "l1", 0)
	b := gain(tr.Root, "b", 0)
	loss(b, "l2", 0)
	tr.RecomputeLosses()

	assert.ErrorIs(t, tr.CheckInvariants(), phylo.ErrLossBudgetExceeded)

	n, err := tr.EnforceLossBudget()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NotNil(t, tr.NodeByUID("l1"))
	assert.Nil(t, tr.NodeByUID("l2"))
	require.NoError(t, tr.CheckInvariants())
}

func TestTree_CheckInvariants_BrokenParentage(t *testing.T) {
	tr := phylo.NewTree(2, 1)
	a := gain(tr.Root, "a", 0)
	b := gain(tr.Root, "b", 1)

	// point the root's first child slot at b: a is dangling, b is held twice
	tr.Root.Children()[0] = b
	_ = a

	err := tr.CheckInvariants()
	assert.ErrorIs(t, err, phylo.ErrBrokenParentage)
	assert.ErrorIs(t, err, phylo.ErrInvariantViolation)
}

func TestTree_CheckInvariants_StaleBookkeeping(t *testing.T) {
	tr := phylo.NewTree(1, 1)
	a := gain(tr.Root, "a", 0)
	loss(a, "l", 0) // not registered

	assert.ErrorIs(t, tr.CheckInvariants(), phylo.ErrInvariantViolation)
	tr.RecomputeLosses()
	assert.NoError(t, tr.CheckInvariants())
}

func TestTree_Copy(t *testing.T) {
	tr := lossTree(t)
	tr.Likelihood = -12.5
	tr.BestCellAssignment = []*phylo.Node{tr.NodeByUID("c"), tr.Root}
	tr.Append(phylo.OpSwitchNodes, "a", "b")

	cp := tr.Copy()
	assert.Equal(t, uids(tr.Nodes()), uids(cp.Nodes()))
	assert.Equal(t, tr.KLosses(), cp.KLosses())
	assert.Equal(t, -12.5, cp.Likelihood)
	assert.Same(t, cp.NodeByUID("c"), cp.BestCellAssignment[0])
	assert.Same(t, cp.Root, cp.BestCellAssignment[1])
	assert.Equal(t, tr.Log, cp.Log)

	cp.Log[0].UIDs[0] = "zz"
	assert.Equal(t, "a", tr.Log[0].UIDs[0])

	require.NoError(t, cp.DeleteLoss(cp.NodeByUID("l0")))
	assert.NotNil(t, tr.NodeByUID("l0"))
	assert.Equal(t, 2, tr.LossCount())
}

func TestTree_ProfilesAndSnapshot(t *testing.T) {
	tr := lossTree(t)
	nodes, profiles := tr.Profiles()
	require.Len(t, profiles, len(nodes))

	byUID := map[string][]int{}
	for i, n := range nodes {
		byUID[n.UID] = profiles[i]
	}
	assert.Equal(t, []int{0, 1, 1}, byUID["c"])
	assert.Equal(t, []int{1, 1, -1}, byUID["bad"])

	snap := tr.Snapshot()
	require.Len(t, snap, tr.Size())
	assert.Equal(t, "", snap[0].ParentUID)
	assert.Equal(t, "germline", snap[1].ParentUID)
	assert.True(t, snap[3].Loss)
}

func TestOpKind_String(t *testing.T) {
	assert.Equal(t, "back-mutation", phylo.OpBackMutation.String())
	assert.Equal(t, "clade-graft", phylo.OpCladeGraft.String())
	assert.Equal(t, "op(9)", phylo.OpKind(9).String())
}
