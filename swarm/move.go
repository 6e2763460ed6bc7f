package swarm

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/phylopso/distance"
	"github.com/katalvlaran/phylopso/operator"
)

// move evaluates one particle for one round. It only reads the snapshot
// trees and returns a freshly scored candidate.
func (s *Swarm) move(in task) (out candidate) {
	t := in.current.Copy()
	out.tree = t

	// 1) Donor choice weighted by distance
	dP, err := distance.Distance(t, in.pbest)
	if err != nil {
		out.err = fmt.Errorf("move: %w", err)
		return out
	}
	dS, err := distance.Distance(t, in.sbest)
	if err != nil {
		out.err = fmt.Errorf("move: %w", err)
		return out
	}
	wCur := s.cfg.inertia * s.cfg.localBias
	wP := s.cfg.c1 * float64(dP.Value)
	wS := s.cfg.c2 * float64(dS.Value)

	out.donor = DonorCurrent
	if total := wCur + wP + wS; total > 0 {
		r := in.rng.Float64() * total
		switch {
		case r < wCur:
			// stay local
		case r < wCur+wP:
			out.donor, out.distance = DonorParticleBest, dP.Value
		default:
			out.donor, out.distance = DonorSwarmBest, dS.Value
		}
	}

	// 2) Clade graft, sized by the measured distance
	if out.donor != DonorCurrent {
		donor := in.pbest
		if out.donor == DonorSwarmBest {
			donor = in.sbest
		}
		clade, err := distance.SelectClade(donor, out.distance)
		if err != nil && !errors.Is(err, distance.ErrNoClade) {
			out.err = fmt.Errorf("move: %w", err)
			return out
		}
		if clade != nil {
			nodes := t.Nodes()
			attach := nodes[in.rng.Intn(len(nodes))]
			o, err := operator.GraftClade(t, attach.UID, clade, in.rng)
			if err != nil {
				out.err = fmt.Errorf("move: %w", err)
				return out
			}
			out.attempts = append(out.attempts, o)
		}
	}

	// 3) One local edit
	_, err = operator.ApplyRandom(t, in.rng, func(o operator.Outcome) {
		out.attempts = append(out.attempts, o)
	})
	if err != nil {
		out.err = fmt.Errorf("move: %w", err)
		return out
	}

	// 4) Rescore
	if _, err := s.scorer.Apply(t); err != nil {
		out.err = fmt.Errorf("move: %w", err)
	}
	return out
}
