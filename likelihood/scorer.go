package likelihood

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/phylopso/genotype"
	"github.com/katalvlaran/phylopso/phylo"
)

// ErrShapeMismatch is returned when the tree and the problem disagree on the
// number of mutations.
var ErrShapeMismatch = errors.New("likelihood: tree and matrix mutation counts differ")

// Result is the outcome of scoring one tree.
type Result struct {
	// LogLikelihood is the sum over cells of the best per-node log-probability.
	LogLikelihood float64
	// Assignment holds, per cell, the best node.
	Assignment []*phylo.Node
	// CellLogLikelihood holds, per cell, the maximized log-probability.
	CellLogLikelihood []float64
}

// Scorer evaluates trees against a fixed problem.
type Scorer struct {
	cells     int
	mutations int
	obs       [][]uint8
	// logp[observed][truth]
	logp [3][2]float64
}

// NewScorer precomputes the observation rows and the noise log-table.
func NewScorer(p *genotype.Problem) *Scorer {
	s := &Scorer{cells: p.Cells(), mutations: p.Mutations()}
	s.obs = make([][]uint8, s.cells)
	for i := range s.obs {
		row := make([]uint8, s.mutations)
		for j := range row {
			row[j] = uint8(p.Observation(i, j))
		}
		s.obs[i] = row
	}

	a, b := p.Alpha(), p.Beta()
	s.logp[genotype.Absent][0] = math.Log(1 - b)
	s.logp[genotype.Present][0] = math.Log(b)
	s.logp[genotype.Absent][1] = math.Log(a)
	s.logp[genotype.Present][1] = math.Log(1 - a)
	// missing observations cost nothing: log 1 = 0
	return s
}

// Score computes the greedy log-likelihood of t without modifying it.
func (s *Scorer) Score(t *phylo.Tree) (Result, error) {
	if t.Mutations() != s.mutations {
		return Result{}, fmt.Errorf("Score: tree=%d matrix=%d: %w", t.Mutations(), s.mutations, ErrShapeMismatch)
	}

	nodes, profiles := t.Profiles()
	truth := make([][]uint8, len(nodes))
	for n, prof := range profiles {
		tv := make([]uint8, s.mutations)
		for j, v := range prof {
			if v > 0 {
				tv[j] = 1
			}
		}
		truth[n] = tv
	}

	res := Result{
		Assignment:        make([]*phylo.Node, s.cells),
		CellLogLikelihood: make([]float64, s.cells),
	}
	for i, row := range s.obs {
		best, bestLH := 0, math.Inf(-1)
		for n, tv := range truth {
			lh := s.rowLogLikelihood(row, tv)
			if lh > bestLH {
				best, bestLH = n, lh
			}
		}
		res.Assignment[i] = nodes[best]
		res.CellLogLikelihood[i] = bestLH
		res.LogLikelihood += bestLH
	}
	return res, nil
}

// Apply scores t and stores the likelihood and cell assignment on it.
func (s *Scorer) Apply(t *phylo.Tree) (float64, error) {
	res, err := s.Score(t)
	if err != nil {
		return math.Inf(-1), err
	}
	t.Likelihood = res.LogLikelihood
	t.BestCellAssignment = res.Assignment
	return res.LogLikelihood, nil
}

// CellLogLikelihood is the log-probability of cell i's observations given a
// genotype profile.
func (s *Scorer) CellLogLikelihood(i int, profile []int) float64 {
	tv := make([]uint8, s.mutations)
	for j, v := range profile {
		if v > 0 {
			tv[j] = 1
		}
	}
	return s.rowLogLikelihood(s.obs[i], tv)
}

func (s *Scorer) rowLogLikelihood(row, truth []uint8) float64 {
	lh := 0.0
	for j, o := range row {
		if o == genotype.Missing {
			continue
		}
		lh += s.logp[o][truth[j]]
	}
	return lh
}
