package operator_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylopso/builder"
	"github.com/katalvlaran/phylopso/operator"
	"github.com/katalvlaran/phylopso/phylo"
)

func TestGraftClade_ReplacesDuplicatedGains(t *testing.T) {
	tr := build(t, 3, 1, builder.Chain(0, 1, 2))
	// d1(2) → d2(1)
	donor := buildPrefixed(t, "d", 3, 1, builder.Under(-1, 2), builder.Under(2, 1))
	donorBefore := donor.Snapshot()

	out, err := operator.GraftClade(tr, "n1", donor.NodeByUID("d1"), nil)
	require.NoError(t, err)
	require.True(t, out.Applied)
	assert.Equal(t, []string{"d1", "n1"}, out.UIDs)

	want := []phylo.Record{
		{UID: phylo.GermlineUID, Name: phylo.GermlineName, MutationID: phylo.GermlineMutation},
		{UID: "n1", Name: "1", MutationID: 0, ParentUID: phylo.GermlineUID},
		{UID: "d1", Name: "3", MutationID: 2, ParentUID: "n1"},
		{UID: "d2", Name: "2", MutationID: 1, ParentUID: "d1"},
	}
	assert.Equal(t, want, tr.Snapshot())
	assert.Equal(t, donorBefore, donor.Snapshot())
	require.Len(t, tr.Log, 1)
	assert.Equal(t, phylo.OpCladeGraft, tr.Log[0].Kind)
}

func TestGraftClade_AttachPointClimbs(t *testing.T) {
	tr := build(t, 3, 1, builder.Chain(0, 1, 2))
	donor := buildPrefixed(t, "d", 3, 1, builder.Under(-1, 2), builder.Under(2, 1))

	// n3 and n2 are both replaced by the clade; the graft lands on n1
	out, err := operator.GraftClade(tr, "n3", donor.NodeByUID("d1"), nil)
	require.NoError(t, err)
	require.True(t, out.Applied)
	assert.Equal(t, "n1", out.UIDs[1])
	assert.Equal(t, "n1", parentUID(tr, "d1"))
	assert.Equal(t, 4, tr.Size())
}

func TestGraftClade_RekeysCollidingUIDs(t *testing.T) {
	tr := build(t, 3, 1, builder.Chain(0, 1, 2))
	// donor uses the same n1, n2 scheme: n1(2) → n2(1)
	donor := build(t, 3, 1, builder.Under(-1, 2), builder.Under(2, 1))

	out, err := operator.GraftClade(tr, "n1", donor.NodeByUID("n1"), rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	require.True(t, out.Applied)

	seen := make(map[string]bool)
	for _, n := range tr.Nodes() {
		assert.False(t, seen[n.UID], "duplicate uid %s", n.UID)
		seen[n.UID] = true
	}
	assert.Equal(t, 0, tr.NodeByUID("n1").MutationID)
	assert.Equal(t, 1, tr.NodeByUID("n2").MutationID)
	assert.NotEqual(t, "n1", out.UIDs[0])
	assert.Equal(t, 2, tr.NodeByUID(out.UIDs[0]).MutationID)
}

func TestGraftClade_TrimsLossBudget(t *testing.T) {
	// n1(0) → n2(1) → n3(2) → n4(loss 0)
	tr := build(t, 3, 1, builder.Chain(0, 1, 2), builder.Loss(2, 0))
	// d1(1) → d2(2) → d3(loss 0)
	donor := buildPrefixed(t, "d", 3, 1, builder.Chain(1, 2), builder.Loss(2, 0))

	out, err := operator.GraftClade(tr, "n1", donor.NodeByUID("d1"), nil)
	require.NoError(t, err)
	require.True(t, out.Applied)

	assert.Equal(t, 1, tr.LossCount())
	assert.NotNil(t, tr.NodeByUID("n4"))
	assert.Nil(t, tr.NodeByUID("d3"))
	assert.Equal(t, "n1", parentUID(tr, "n4"))
	requireLossesSound(t, tr)
}

func TestGraftClade_Rejections(t *testing.T) {
	tr := build(t, 2, 1, builder.Chain(0, 1))
	donor := buildPrefixed(t, "d", 2, 1, builder.Chain(1))

	out, err := operator.GraftClade(tr, "n1", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, operator.ReasonEmptyClade, out.Reason)

	out, err = operator.GraftClade(tr, "n1", donor.Root, nil)
	require.NoError(t, err)
	assert.Equal(t, operator.ReasonRootOperand, out.Reason)

	out, err = operator.GraftClade(tr, "zz", donor.NodeByUID("d1"), nil)
	require.NoError(t, err)
	assert.Equal(t, operator.ReasonUnknownNode, out.Reason)
	assert.Empty(t, tr.Log)
}
