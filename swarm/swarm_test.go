package swarm_test

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/phylopso/converters"
	"github.com/katalvlaran/phylopso/likelihood"
	"github.com/katalvlaran/phylopso/runlog"
	"github.com/katalvlaran/phylopso/swarm"
)

func TestSwarm_EndToEndSingleParticle(t *testing.T) {
	ctx := context.Background()
	p := smallProblem(t)

	s, err := swarm.Initialize(ctx, p, swarm.WithParticles(1), swarm.WithSeed(2024))
	require.NoError(t, err)
	initial := s.InitialLikelihood()
	require.False(t, math.IsInf(initial, 0))
	assert.Equal(t, initial, s.Particles()[0].BestLikelihood)

	prev := initial
	for i := 0; i < 5; i++ {
		require.NoError(t, s.RunIterations(ctx, 1))
		best := s.Particles()[0].BestLikelihood
		assert.False(t, math.IsInf(best, 0) || math.IsNaN(best))
		assert.GreaterOrEqual(t, best, prev, "iteration %d", i)
		assert.GreaterOrEqual(t, best, initial)
		prev = best
	}
	assert.Equal(t, 5, s.Round())
	assert.Equal(t, prev, s.BestLikelihood())
}

func TestSwarm_BestIsConsistent(t *testing.T) {
	ctx := context.Background()
	p := noisyProblem(t, 5, 20, 8, 2)

	s, err := swarm.Initialize(ctx, p, swarm.WithParticles(4), swarm.WithSeed(9))
	require.NoError(t, err)
	require.NoError(t, s.RunIterations(ctx, 10))

	best := s.Best()
	require.NoError(t, best.CheckInvariants())
	assert.Equal(t, s.BestLikelihood(), best.Likelihood)
	require.Len(t, best.BestCellAssignment, p.Cells())
	for _, n := range best.BestCellAssignment {
		require.NotNil(t, n)
		assert.Same(t, best.NodeByUID(n.UID), n)
	}

	res, err := likelihood.NewScorer(p).Score(best)
	require.NoError(t, err)
	assert.Equal(t, best.Likelihood, res.LogLikelihood)

	for _, ps := range s.Particles() {
		assert.LessOrEqual(t, ps.BestLikelihood, s.BestLikelihood())
		assert.GreaterOrEqual(t, ps.BestLikelihood, ps.CurrentLikelihood)
		pb := s.ParticleBest(ps.Index)
		require.NotNil(t, pb)
		assert.Equal(t, ps.BestLikelihood, pb.Likelihood)
	}
	assert.Nil(t, s.ParticleBest(-1))
	assert.Nil(t, s.ParticleBest(4))

	// callers own the returned copy
	best.Likelihood = 0
	best.Root.Children()[0].Detach()
	assert.NotEqual(t, 0.0, s.BestLikelihood())
	require.NoError(t, s.Best().CheckInvariants())
}

func TestSwarm_DeterministicAcrossWorkers(t *testing.T) {
	ctx := context.Background()
	p := noisyProblem(t, 8, 15, 6, 1)

	run := func(workers int) *swarm.Swarm {
		s, err := swarm.Initialize(ctx, p,
			swarm.WithParticles(4),
			swarm.WithWorkers(workers),
			swarm.WithSeed(77))
		require.NoError(t, err)
		require.NoError(t, s.RunIterations(ctx, 6))
		return s
	}
	a, b := run(1), run(4)

	assert.Equal(t, a.BestLikelihood(), b.BestLikelihood())
	assert.Equal(t, a.BestParticle(), b.BestParticle())
	assert.Equal(t, a.Best().Snapshot(), b.Best().Snapshot())
	assert.Equal(t, a.Best().Log, b.Best().Log)
	assert.Equal(t, a.Particles(), b.Particles())
}

func TestSwarm_RecordsHistory(t *testing.T) {
	ctx := context.Background()
	rec := runlog.NewMemory()

	s, err := swarm.Initialize(ctx, smallProblem(t),
		swarm.WithParticles(3),
		swarm.WithIterations(4),
		swarm.WithSeed(5),
		swarm.WithRunID("run-1"),
		swarm.WithRecorder(rec))
	require.NoError(t, err)
	require.NoError(t, s.Run(ctx))
	assert.Equal(t, "run-1", s.RunID())

	rounds := rec.Rounds()
	require.Len(t, rounds, 5)
	for i, r := range rounds {
		assert.Equal(t, i, r.Round)
		assert.Equal(t, "run-1", r.RunID)
		if i > 0 {
			assert.GreaterOrEqual(t, r.Best, rounds[i-1].Best)
		}
	}
	assert.Equal(t, s.BestLikelihood(), rounds[4].Best)

	improvements := 0
	for _, ps := range s.Particles() {
		improvements += ps.Improvements
	}
	bests := rec.Bests()
	assert.Len(t, bests, 3+improvements)

	var lastSwarm runlog.BestEvent
	for _, e := range bests {
		if e.Swarm {
			lastSwarm = e
		}
	}
	assert.Equal(t, s.BestLikelihood(), lastSwarm.Likelihood)
	assert.Equal(t, s.Best().Snapshot(), lastSwarm.Tree)
	nw, err := converters.Newick(s.Best())
	require.NoError(t, err)
	assert.Equal(t, nw, lastSwarm.Newick)
}

func TestSwarm_BestNewickParses(t *testing.T) {
	ctx := context.Background()
	rec := runlog.NewMemory()
	p := noisyProblem(t, 11, 30, 8, 2)

	s, err := swarm.Initialize(ctx, p,
		swarm.WithParticles(4),
		swarm.WithIterations(6),
		swarm.WithSeed(3),
		swarm.WithRecorder(rec))
	require.NoError(t, err)
	require.NoError(t, s.Run(ctx))

	bests := rec.Bests()
	require.NotEmpty(t, bests)
	for _, e := range bests {
		require.NotEmpty(t, e.Newick)
		back, err := converters.ParseNewick(e.Newick, p.Names(), p.K())
		require.NoError(t, err, e.Newick)
		assert.Equal(t, len(e.Tree), back.Size())
		again, err := converters.Newick(back)
		require.NoError(t, err)
		assert.Equal(t, e.Newick, again)
	}
}

func TestSwarm_MetricsLoggingTracing(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.DebugLevel)

	s, err := swarm.Initialize(ctx, smallProblem(t),
		swarm.WithParticles(2),
		swarm.WithSeed(3),
		swarm.WithRegisterer(reg),
		swarm.WithLogger(logger),
		swarm.WithTracerProvider(noop.NewTracerProvider()))
	require.NoError(t, err)
	require.NoError(t, s.RunIterations(ctx, 3))

	families, err := reg.Gather()
	require.NoError(t, err)
	byName := make(map[string]float64)
	attempts := 0.0
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetGauge() != nil:
				byName[mf.GetName()] = m.GetGauge().GetValue()
			case mf.GetName() == "phylopso_operator_attempts_total":
				attempts += m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				byName[mf.GetName()] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	assert.Equal(t, s.BestLikelihood(), byName["phylopso_swarm_best_loglikelihood"])
	assert.Equal(t, 4.0, byName["phylopso_round_duration_seconds"])
	assert.Greater(t, attempts, 0.0)

	out := buf.String()
	assert.Contains(t, out, `"msg":"swarm initialized"`)
	assert.Contains(t, out, `"component":"swarm"`)
	assert.Contains(t, out, `"msg":"round done"`)
}

func TestSwarm_ZeroIterationsKeepsInitialState(t *testing.T) {
	ctx := context.Background()
	s, err := swarm.Initialize(ctx, smallProblem(t), swarm.WithIterations(0), swarm.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, s.Run(ctx))
	assert.Equal(t, 0, s.Round())
	assert.Equal(t, s.InitialLikelihood(), s.BestLikelihood())
	assert.Empty(t, s.Best().Log)
}

func TestInitialize_Errors(t *testing.T) {
	_, err := swarm.Initialize(context.Background(), nil)
	assert.ErrorIs(t, err, swarm.ErrNoProblem)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { swarm.WithParticles(0) })
	assert.Panics(t, func() { swarm.WithIterations(-1) })
	assert.Panics(t, func() { swarm.WithWorkers(0) })
	assert.Panics(t, func() { swarm.WithLearningFactors(-1, 0) })
	assert.Panics(t, func() { swarm.WithLearningFactors(0, math.NaN()) })
	assert.Panics(t, func() { swarm.WithInertia(math.Inf(1)) })
	assert.Panics(t, func() { swarm.WithLocalBias(-0.5) })
	assert.Panics(t, func() { swarm.WithRunID("") })
	assert.Panics(t, func() { swarm.WithLogger(nil) })
	assert.Panics(t, func() { swarm.WithRegisterer(nil) })
	assert.Panics(t, func() { swarm.WithRecorder(nil) })
	assert.Panics(t, func() { swarm.WithTracerProvider(nil) })
}

func TestDonor_String(t *testing.T) {
	assert.Equal(t, "current", swarm.DonorCurrent.String())
	assert.Equal(t, "particle-best", swarm.DonorParticleBest.String())
	assert.Equal(t, "swarm-best", swarm.DonorSwarmBest.String())
	assert.Equal(t, "unknown", swarm.Donor(9).String())
}
