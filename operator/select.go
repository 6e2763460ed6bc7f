package operator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/phylopso/phylo"
)

// Random applies one attempt of the given local kind with random operands.
func Random(t *phylo.Tree, kind phylo.OpKind, rng *rand.Rand) (Outcome, error) {
	switch kind {
	case phylo.OpBackMutation:
		return RandomBackMutation(t, rng)
	case phylo.OpDeleteMutation:
		return RandomDeleteMutation(t, rng)
	case phylo.OpSwitchNodes:
		return RandomSwitchNodes(t, rng)
	case phylo.OpPruneRegraft:
		return RandomPruneRegraft(t, rng)
	}
	return Outcome{}, fmt.Errorf("Random: %v: %w", kind, ErrUnknownKind)
}

// ApplyRandom shuffles LocalKinds and tries each once until one applies.
// observe, if non-nil, sees every attempt in order. When all four are
// rejected the returned Outcome carries ReasonExhausted and the tree is
// unchanged.
func ApplyRandom(t *phylo.Tree, rng *rand.Rand, observe func(Outcome)) (Outcome, error) {
	kinds := append([]phylo.OpKind(nil), LocalKinds...)
	rng.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })

	for _, k := range kinds {
		out, err := Random(t, k, rng)
		if err != nil {
			return out, err
		}
		if observe != nil {
			observe(out)
		}
		if out.Applied {
			return out, nil
		}
	}
	return Outcome{Reason: ReasonExhausted}, nil
}
