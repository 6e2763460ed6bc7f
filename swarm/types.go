package swarm

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/phylopso/operator"
	"github.com/katalvlaran/phylopso/phylo"
)

// ErrNoProblem is returned by Initialize for a nil problem.
var ErrNoProblem = errors.New("swarm: nil problem")

// Donor identifies the tree a move borrowed a clade from.
type Donor int

const (
	// DonorCurrent keeps the particle on its own tree; no graft.
	DonorCurrent Donor = iota
	// DonorParticleBest grafts from the particle's best tree.
	DonorParticleBest
	// DonorSwarmBest grafts from the swarm best tree.
	DonorSwarmBest
)

func (d Donor) String() string {
	switch d {
	case DonorCurrent:
		return "current"
	case DonorParticleBest:
		return "particle-best"
	case DonorSwarmBest:
		return "swarm-best"
	}
	return "unknown"
}

// particle is owned by the swarm; its trees are never edited in place once
// reduced, so round tasks may read them concurrently.
type particle struct {
	index        int
	current      *phylo.Tree
	best         *phylo.Tree
	improvements int
}

// ParticleStats is a read-only view of one particle.
type ParticleStats struct {
	Index             int
	CurrentLikelihood float64
	BestLikelihood    float64
	Improvements      int
}

// task is the input of one round evaluation.
type task struct {
	current, pbest, sbest *phylo.Tree
	rng                   *rand.Rand
}

// candidate is the output of one round evaluation.
type candidate struct {
	tree     *phylo.Tree
	donor    Donor
	distance int
	attempts []operator.Outcome
	err      error
}
