package swarm

import (
	"io"
	"math"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/phylopso/runlog"
)

// Defaults.
const (
	DefaultParticles  = 5
	DefaultIterations = 3
	DefaultC1         = 0.25
	DefaultC2         = 0.75
	DefaultInertia    = 1.0
	DefaultLocalBias  = 2.0
)

// Option customizes a Swarm. Option constructors panic on meaningless input.
type Option func(*config)

type config struct {
	particles  int
	iterations int
	workers    int
	seed       int64

	c1, c2    float64
	inertia   float64
	localBias float64

	runID      string
	logger     logrus.FieldLogger
	registerer prometheus.Registerer
	recorder   runlog.Recorder
	tracer     trace.TracerProvider
}

func newConfig(opts ...Option) config {
	cfg := config{
		particles:  DefaultParticles,
		iterations: DefaultIterations,
		workers:    runtime.GOMAXPROCS(0),
		c1:         DefaultC1,
		c2:         DefaultC2,
		inertia:    DefaultInertia,
		localBias:  DefaultLocalBias,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.logger = l
	}
	if cfg.tracer == nil {
		cfg.tracer = otel.GetTracerProvider()
	}
	if cfg.runID == "" {
		cfg.runID = runlog.NewRunID(nil)
	}
	return cfg
}

// WithParticles sets the particle count. Panics on n < 1.
func WithParticles(n int) Option {
	if n < 1 {
		panic("swarm: WithParticles(n<1)")
	}
	return func(c *config) { c.particles = n }
}

// WithIterations sets the number of rounds executed by Run. Panics on n < 0.
func WithIterations(n int) Option {
	if n < 0 {
		panic("swarm: WithIterations(n<0)")
	}
	return func(c *config) { c.iterations = n }
}

// WithWorkers bounds the number of concurrently evaluated particles.
// Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("swarm: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithSeed sets the run seed; 0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithLearningFactors sets c1 (pull towards the particle best) and c2 (pull
// towards the swarm best). Panics on negative or non-finite values.
func WithLearningFactors(c1, c2 float64) Option {
	if !nonNegative(c1) || !nonNegative(c2) {
		panic("swarm: WithLearningFactors requires finite values >= 0")
	}
	return func(c *config) { c.c1, c.c2 = c1, c2 }
}

// WithInertia sets the weight of staying on the current tree.
// Panics on negative or non-finite values.
func WithInertia(w float64) Option {
	if !nonNegative(w) {
		panic("swarm: WithInertia requires a finite value >= 0")
	}
	return func(c *config) { c.inertia = w }
}

// WithLocalBias scales the inertia weight. Panics on negative or non-finite
// values.
func WithLocalBias(b float64) Option {
	if !nonNegative(b) {
		panic("swarm: WithLocalBias requires a finite value >= 0")
	}
	return func(c *config) { c.localBias = b }
}

// WithRunID sets the identifier used when recording the run.
func WithRunID(id string) Option {
	if id == "" {
		panic("swarm: WithRunID(\"\")")
	}
	return func(c *config) { c.runID = id }
}

// WithLogger sets the structured logger (a *logrus.Logger or *logrus.Entry).
// Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("swarm: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithRegisterer enables metrics on reg. Panics on nil.
func WithRegisterer(reg prometheus.Registerer) Option {
	if reg == nil {
		panic("swarm: WithRegisterer(nil)")
	}
	return func(c *config) { c.registerer = reg }
}

// WithRecorder sets the run history recorder. Panics on nil.
func WithRecorder(r runlog.Recorder) Option {
	if r == nil {
		panic("swarm: WithRecorder(nil)")
	}
	return func(c *config) { c.recorder = r }
}

// WithTracerProvider sets the tracer provider (default: the otel global).
// Panics on nil.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("swarm: WithTracerProvider(nil)")
	}
	return func(c *config) { c.tracer = tp }
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
