package operator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylopso/builder"
	"github.com/katalvlaran/phylopso/phylo"
)

// build returns a fixture tree with uids n1, n2, ... in constructor order.
func build(t *testing.T, mutations, k int, cons ...builder.Constructor) *phylo.Tree {
	t.Helper()
	tr, err := builder.BuildTree(mutations, []builder.BuilderOption{builder.WithLossBudget(k)}, cons...)
	require.NoError(t, err)
	return tr
}

// buildPrefixed is build with uids prefix1, prefix2, ...
func buildPrefixed(t *testing.T, prefix string, mutations, k int, cons ...builder.Constructor) *phylo.Tree {
	t.Helper()
	scheme := builder.WithUIDScheme(func(seq int) string { return fmt.Sprintf("%s%d", prefix, seq) })
	tr, err := builder.BuildTree(mutations, []builder.BuilderOption{builder.WithLossBudget(k), scheme}, cons...)
	require.NoError(t, err)
	return tr
}

// requireLossesSound checks the post-repair properties of every loss.
func requireLossesSound(t *testing.T, tr *phylo.Tree) {
	t.Helper()
	require.NoError(t, tr.CheckInvariants())
	sum := 0
	for _, c := range tr.KLosses() {
		require.LessOrEqual(t, c, tr.K())
		sum += c
	}
	require.Equal(t, tr.LossCount(), sum)
	for _, l := range tr.Losses() {
		require.True(t, l.IsLossValid(), "loss %s not backed by a gain", l.UID)
		require.False(t, l.IsAlreadyLost(l.MutationID), "loss %s lost twice", l.UID)
	}
}

func parentUID(tr *phylo.Tree, uid string) string {
	return tr.NodeByUID(uid).Parent().UID
}
