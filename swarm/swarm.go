package swarm

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/phylopso/builder"
	"github.com/katalvlaran/phylopso/converters"
	"github.com/katalvlaran/phylopso/genotype"
	"github.com/katalvlaran/phylopso/likelihood"
	"github.com/katalvlaran/phylopso/phylo"
	"github.com/katalvlaran/phylopso/runlog"
)

const tracerName = "github.com/katalvlaran/phylopso/swarm"

// Swarm is the search state. It is not safe for concurrent use; rounds
// parallelize internally.
type Swarm struct {
	cfg     config
	problem *genotype.Problem
	scorer  *likelihood.Scorer

	particles    []*particle
	best         *phylo.Tree
	bestParticle int
	initial      float64
	round        int

	logger  logrus.FieldLogger
	tracer  trace.Tracer
	metrics *metrics
}

// Initialize builds one random binary tree per particle, scores it and
// records the initial particle and swarm bests.
func Initialize(ctx context.Context, p *genotype.Problem, opts ...Option) (*Swarm, error) {
	if p == nil {
		return nil, ErrNoProblem
	}
	cfg := newConfig(opts...)
	s := &Swarm{
		cfg:       cfg,
		problem:   p,
		scorer:    likelihood.NewScorer(p),
		particles: make([]*particle, cfg.particles),
		logger:    cfg.logger.WithFields(logrus.Fields{"component": "swarm", "run_id": cfg.runID}),
		tracer:    cfg.tracer.Tracer(tracerName),
		metrics:   newMetrics(cfg.registerer),
	}

	ctx, span := s.tracer.Start(ctx, "swarm.Initialize",
		trace.WithAttributes(
			attribute.Int("particles", cfg.particles),
			attribute.Int("cells", p.Cells()),
			attribute.Int("mutations", p.Mutations()),
			attribute.Int64("seed", cfg.seed),
		))
	defer span.End()
	start := time.Now()

	trees := make([]*phylo.Tree, cfg.particles)
	errs := make([]error, cfg.particles)
	wp := pool.New().WithMaxGoroutines(cfg.workers)
	for i := range trees {
		i := i
		wp.Go(func() {
			trees[i], errs[i] = s.randomTree(taskRNG(cfg.seed, 0, i))
		})
	}
	wp.Wait()

	lhs := make([]float64, cfg.particles)
	for i, t := range trees {
		if errs[i] != nil {
			span.RecordError(errs[i])
			span.SetStatus(codes.Error, "initialization failed")
			return nil, fmt.Errorf("Initialize: particle %d: %w", i, errs[i])
		}
		s.particles[i] = &particle{index: i, current: t, best: t}
		lhs[i] = t.Likelihood
		swarmBest := s.best == nil || t.Likelihood > s.best.Likelihood
		if swarmBest {
			s.best, s.bestParticle = t, i
		}
		s.recordBest(ctx, i, t, swarmBest)
	}
	s.initial = s.best.Likelihood
	s.metrics.setBest(s.best.Likelihood)

	d := time.Since(start)
	s.metrics.observeRound(d)
	s.recordRound(ctx, runlog.Summarize(cfg.runID, 0, s.best.Likelihood, lhs, 0, d))
	span.SetAttributes(attribute.Float64("best_loglikelihood", s.best.Likelihood))
	s.logger.WithFields(logrus.Fields{
		"particles":     cfg.particles,
		"best":          s.best.Likelihood,
		"best_particle": s.bestParticle,
	}).Info("swarm initialized")
	return s, nil
}

// randomTree builds and scores a random binary starting tree.
func (s *Swarm) randomTree(rng *rand.Rand) (*phylo.Tree, error) {
	t, err := builder.BuildTree(s.problem.Mutations(),
		[]builder.BuilderOption{
			builder.WithRand(rng),
			builder.WithNames(s.problem.Names()),
			builder.WithLossBudget(s.problem.K()),
		},
		builder.RandomBinary())
	if err != nil {
		return nil, err
	}
	if _, err := s.scorer.Apply(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Run executes the configured number of rounds (WithIterations).
func (s *Swarm) Run(ctx context.Context) error {
	return s.RunIterations(ctx, s.cfg.iterations)
}

// RunIterations executes n synchronous rounds. It stops early only when a
// tree invariant is violated.
func (s *Swarm) RunIterations(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		s.round++
		if err := s.runRound(ctx); err != nil {
			return fmt.Errorf("RunIterations: round %d: %w", s.round, err)
		}
	}
	return nil
}

func (s *Swarm) runRound(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "swarm.Round",
		trace.WithAttributes(attribute.Int("round", s.round)))
	defer span.End()
	start := time.Now()

	// 1) Snapshot
	tasks := make([]task, len(s.particles))
	for i, p := range s.particles {
		tasks[i] = task{
			current: p.current,
			pbest:   p.best,
			sbest:   s.best,
			rng:     taskRNG(s.cfg.seed, s.round, i),
		}
	}

	// 2) Fan-out
	results := make([]candidate, len(tasks))
	wp := pool.New().WithMaxGoroutines(s.cfg.workers)
	for i := range tasks {
		i := i
		wp.Go(func() {
			results[i] = s.move(tasks[i])
		})
	}
	wp.Wait()

	// 3) Reduction, in particle order
	lhs := make([]float64, len(results))
	improvements := 0
	for i, c := range results {
		if c.err != nil {
			span.RecordError(c.err)
			span.SetStatus(codes.Error, "invariant violation")
			s.logger.WithFields(logrus.Fields{
				"round":    s.round,
				"particle": i,
			}).WithError(c.err).Error("round aborted")
			return fmt.Errorf("particle %d: %w", i, c.err)
		}
		for _, o := range c.attempts {
			s.metrics.observeAttempt(o)
		}

		p := s.particles[i]
		p.current = c.tree
		lhs[i] = c.tree.Likelihood
		if c.tree.Likelihood <= p.best.Likelihood {
			continue
		}

		p.best = c.tree
		p.improvements++
		improvements++
		s.metrics.observeImprovement()

		swarmBest := c.tree.Likelihood > s.best.Likelihood
		if swarmBest {
			s.best, s.bestParticle = c.tree, i
			s.metrics.setBest(c.tree.Likelihood)
			s.logger.WithFields(logrus.Fields{
				"round":         s.round,
				"particle":      i,
				"loglikelihood": c.tree.Likelihood,
				"donor":         c.donor.String(),
			}).Info("new swarm best")
		}
		s.recordBest(ctx, i, c.tree, swarmBest)
	}

	d := time.Since(start)
	s.metrics.observeRound(d)
	s.recordRound(ctx, runlog.Summarize(s.cfg.runID, s.round, s.best.Likelihood, lhs, improvements, d))
	span.SetAttributes(
		attribute.Float64("best_loglikelihood", s.best.Likelihood),
		attribute.Int("improvements", improvements))
	s.logger.WithFields(logrus.Fields{
		"round":        s.round,
		"best":         s.best.Likelihood,
		"improvements": improvements,
		"elapsed":      d,
	}).Debug("round done")
	return nil
}

func (s *Swarm) recordBest(ctx context.Context, i int, t *phylo.Tree, swarmBest bool) {
	if s.cfg.recorder == nil {
		return
	}
	nw, err := converters.Newick(t)
	if err != nil {
		s.logger.WithError(err).Warn("newick rendering failed")
	}
	err = s.cfg.recorder.RecordBest(ctx, runlog.BestEvent{
		RunID:      s.cfg.runID,
		Round:      s.round,
		Particle:   i,
		Likelihood: t.Likelihood,
		Swarm:      swarmBest,
		Tree:       t.Snapshot(),
		Log:        t.Log,
		Newick:     nw,
	})
	if err != nil {
		s.logger.WithError(err).Warn("record best failed")
	}
}

func (s *Swarm) recordRound(ctx context.Context, r runlog.RoundSummary) {
	if s.cfg.recorder == nil {
		return
	}
	if err := s.cfg.recorder.RecordRound(ctx, r); err != nil {
		s.logger.WithField("round", r.Round).WithError(err).Warn("record round failed")
	}
}

// Best returns a copy of the swarm best tree, with its log-likelihood, cell
// assignment and edit log.
func (s *Swarm) Best() *phylo.Tree { return s.best.Copy() }

// BestLikelihood is the swarm best log-likelihood.
func (s *Swarm) BestLikelihood() float64 { return s.best.Likelihood }

// BestParticle is the index of the particle that found the swarm best.
func (s *Swarm) BestParticle() int { return s.bestParticle }

// InitialLikelihood is the best log-likelihood after initialization.
func (s *Swarm) InitialLikelihood() float64 { return s.initial }

// Round is the number of completed rounds.
func (s *Swarm) Round() int { return s.round }

// RunID identifies the run in recorded history.
func (s *Swarm) RunID() string { return s.cfg.runID }

// Particles returns one stats entry per particle, in index order.
func (s *Swarm) Particles() []ParticleStats {
	out := make([]ParticleStats, len(s.particles))
	for i, p := range s.particles {
		out[i] = ParticleStats{
			Index:             p.index,
			CurrentLikelihood: p.current.Likelihood,
			BestLikelihood:    p.best.Likelihood,
			Improvements:      p.improvements,
		}
	}
	return out
}

// ParticleBest returns a copy of particle i's best tree, or nil when i is
// out of range.
func (s *Swarm) ParticleBest(i int) *phylo.Tree {
	if i < 0 || i >= len(s.particles) {
		return nil
	}
	return s.particles[i].best.Copy()
}
