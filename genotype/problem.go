package genotype

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Problem is the read-only context of a run. It is safe for concurrent use
// because nothing mutates it after NewProblem returns.
type Problem struct {
	obs   *mat.Dense
	names []string
	alpha float64
	beta  float64
	k     int
}

// NewProblem validates rows and builds a Problem.
// Complexity: O(cells × mutations).
func NewProblem(rows [][]int, opts ...Option) (*Problem, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewProblem: %w", ErrEmptyMatrix)
	}
	cells, muts := len(rows), len(rows[0])
	data := make([]float64, 0, cells*muts)
	for i, row := range rows {
		if len(row) != muts {
			return nil, fmt.Errorf("NewProblem: row %d has %d values, want %d: %w", i, len(row), muts, ErrRaggedMatrix)
		}
		for j, v := range row {
			if v != Absent && v != Present && v != Missing {
				return nil, fmt.Errorf("NewProblem: cell %d mutation %d = %d: %w", i, j, v, ErrBadObservation)
			}
			data = append(data, float64(v))
		}
	}

	return newProblem(mat.NewDense(cells, muts, data), opts...)
}

// FromDense builds a Problem over an existing gonum matrix. The matrix is
// copied so later writes by the caller cannot leak into a running search.
func FromDense(m mat.Matrix, opts ...Option) (*Problem, error) {
	if m == nil {
		return nil, fmt.Errorf("FromDense: %w", ErrEmptyMatrix)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("FromDense: %w", ErrEmptyMatrix)
	}
	obs := mat.DenseCopyOf(m)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := obs.At(i, j)
			if v != Absent && v != Present && v != Missing {
				return nil, fmt.Errorf("FromDense: cell %d mutation %d = %g: %w", i, j, v, ErrBadObservation)
			}
		}
	}

	return newProblem(obs, opts...)
}

func newProblem(obs *mat.Dense, opts ...Option) (*Problem, error) {
	p := &Problem{obs: obs, alpha: DefaultAlpha, beta: DefaultBeta, k: DefaultK}
	for _, opt := range opts {
		opt(p)
	}

	if !(p.alpha > 0 && p.alpha < 1) || !(p.beta > 0 && p.beta < 1) {
		return nil, fmt.Errorf("NewProblem: alpha=%g beta=%g: %w", p.alpha, p.beta, ErrBadRate)
	}
	if p.k < 0 {
		return nil, fmt.Errorf("NewProblem: k=%d: %w", p.k, ErrBadLossBudget)
	}

	_, muts := obs.Dims()
	if p.names == nil {
		p.names = make([]string, muts)
		for i := range p.names {
			p.names[i] = strconv.Itoa(i + 1)
		}
	}
	if len(p.names) != muts {
		return nil, fmt.Errorf("NewProblem: %d names for %d mutations: %w", len(p.names), muts, ErrNamesMismatch)
	}
	seen := make(map[string]int, muts)
	for j, name := range p.names {
		// Tree labels mark a loss by a trailing "-".
		if name == "" || strings.HasSuffix(name, "-") {
			return nil, fmt.Errorf("NewProblem: mutation %d name %q: %w", j, name, ErrBadName)
		}
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("NewProblem: mutations %d and %d both named %q: %w", prev, j, name, ErrBadName)
		}
		seen[name] = j
	}

	return p, nil
}

// Cells returns the number of rows (single cells).
func (p *Problem) Cells() int {
	r, _ := p.obs.Dims()
	return r
}

// Mutations returns the number of columns (mutation sites).
func (p *Problem) Mutations() int {
	_, c := p.obs.Dims()
	return c
}

// Observation returns the value observed for mutation j in cell i.
func (p *Problem) Observation(i, j int) int {
	return int(p.obs.At(i, j))
}

// Row returns a view of the observations of cell i.
func (p *Problem) Row(i int) mat.Vector {
	return p.obs.RowView(i)
}

// Name returns the label of mutation j.
func (p *Problem) Name(j int) string {
	return p.names[j]
}

// Names returns a copy of all mutation labels.
func (p *Problem) Names() []string {
	return append([]string(nil), p.names...)
}

// Alpha is the false-negative rate.
func (p *Problem) Alpha() float64 { return p.alpha }

// Beta is the false-positive rate.
func (p *Problem) Beta() float64 { return p.beta }

// K is the maximum number of losses allowed per mutation.
func (p *Problem) K() int { return p.k }
