package builder_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylopso/builder"
	"github.com/katalvlaran/phylopso/phylo"
)

func TestRandomBinary_Shape(t *testing.T) {
	tr, err := builder.BuildTree(7, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomBinary())
	require.NoError(t, err)

	assert.Equal(t, 8, tr.Size())
	assert.Len(t, tr.Root.Children(), 2)
	assert.Equal(t, 0, tr.LossCount())

	seen := make(map[int]int)
	for _, n := range tr.Nodes()[1:] {
		assert.False(t, n.Loss)
		assert.LessOrEqual(t, len(n.Children()), 2)
		seen[n.MutationID]++
	}
	for m := 0; m < 7; m++ {
		assert.Equal(t, 1, seen[m], "mutation %d", m)
	}
	// breadth-first fill of 7 nodes under the root: depth 3 below it
	assert.Equal(t, 4, tr.Height())
}

func TestRandomBinary_Deterministic(t *testing.T) {
	build := func(seed int64) []phylo.Record {
		tr, err := builder.BuildTree(6, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomBinary())
		require.NoError(t, err)
		return tr.Snapshot()
	}
	assert.Equal(t, build(42), build(42))
	assert.NotEqual(t, build(42), build(43))

	r1 := rand.New(rand.NewSource(5))
	r2 := rand.New(rand.NewSource(5))
	a, err := builder.BuildTree(4, []builder.BuilderOption{builder.WithRand(r1)}, builder.RandomBinary())
	require.NoError(t, err)
	b, err := builder.BuildTree(4, []builder.BuilderOption{builder.WithRand(r2)}, builder.RandomBinary())
	require.NoError(t, err)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestRandomBinary_NeedsRand(t *testing.T) {
	_, err := builder.BuildTree(3, nil, builder.RandomBinary())
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestFixture_ChainUnderLoss(t *testing.T) {
	tr, err := builder.BuildTree(4,
		[]builder.BuilderOption{builder.WithNames([]string{"A", "B", "C", "D"}), builder.WithLossBudget(1)},
		builder.Chain(0, 1),
		builder.Under(1, 2, 3),
		builder.Loss(2, 0),
	)
	require.NoError(t, err)

	want := []phylo.Record{
		{UID: phylo.GermlineUID, Name: phylo.GermlineName, MutationID: phylo.GermlineMutation},
		{UID: "n1", Name: "A", MutationID: 0, ParentUID: phylo.GermlineUID},
		{UID: "n2", Name: "B", MutationID: 1, ParentUID: "n1"},
		{UID: "n3", Name: "C", MutationID: 2, ParentUID: "n2"},
		{UID: "n5", Name: "A", MutationID: 0, Loss: true, ParentUID: "n3"},
		{UID: "n4", Name: "D", MutationID: 3, ParentUID: "n2"},
	}
	assert.Equal(t, want, tr.Snapshot())
	assert.Equal(t, []int{1, 0, 0, 0}, tr.KLosses())
	assert.Equal(t, 1, tr.K())
}

func TestFixture_UIDScheme(t *testing.T) {
	scheme := builder.WithUIDScheme(func(seq int) string { return fmt.Sprintf("x%02d", seq) })
	tr, err := builder.BuildTree(2, []builder.BuilderOption{scheme}, builder.Under(-1, 0, 1))
	require.NoError(t, err)
	assert.NotNil(t, tr.NodeByUID("x01"))
	assert.NotNil(t, tr.NodeByUID("x02"))
}

func TestBuildTree_Errors(t *testing.T) {
	_, err := builder.BuildTree(0, nil)
	assert.ErrorIs(t, err, builder.ErrTooFewMutations)

	_, err = builder.BuildTree(2, nil, builder.Chain(0, 2))
	assert.ErrorIs(t, err, builder.ErrMutationOutOfRange)

	_, err = builder.BuildTree(3, nil, builder.Under(2, 0))
	assert.ErrorIs(t, err, builder.ErrParentNotFound)

	_, err = builder.BuildTree(3, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildTree(3, []builder.BuilderOption{builder.WithNames([]string{"a"})})
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	// two losses of mutation 0 with k = 1
	_, err = builder.BuildTree(2, []builder.BuilderOption{builder.WithLossBudget(1)},
		builder.Chain(0, 1), builder.Loss(1, 0), builder.Loss(1, 0))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, phylo.ErrLossBudgetExceeded)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithLossBudget(-1) })
	assert.Panics(t, func() { builder.WithUIDScheme(nil) })
}
