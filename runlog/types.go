package runlog

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/phylopso/phylo"
)

// ErrClosed is returned by a recorder used after Close.
var ErrClosed = errors.New("runlog: recorder closed")

// ErrNoDatabase is returned by OpenExisting for a missing database file.
var ErrNoDatabase = errors.New("runlog: database does not exist")

// RoundSummary describes one completed round.
type RoundSummary struct {
	RunID string `json:"run_id"`
	Round int    `json:"round"`
	// Best is the swarm-best log-likelihood after the round.
	Best float64 `json:"best"`
	// Mean, Median, StdDev, Min and Max summarize the finite candidate
	// likelihoods scored in the round.
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	// Improvements counts particles whose best improved.
	Improvements int           `json:"improvements"`
	Duration     time.Duration `json:"duration"`
}

// BestEvent marks a strict improvement of a particle best.
type BestEvent struct {
	RunID      string  `json:"run_id"`
	Round      int     `json:"round"`
	Particle   int     `json:"particle"`
	Likelihood float64 `json:"likelihood"`
	// Swarm is set when the improvement is also a new swarm best.
	Swarm bool              `json:"swarm"`
	Tree  []phylo.Record    `json:"tree"`
	Log   []phylo.Operation `json:"log,omitempty"`
	// Newick is the tree in Newick text, when the recorder caller renders it.
	Newick string `json:"newick,omitempty"`
}

// Recorder receives run history. Implementations must be safe for use by
// one writer at a time; the swarm records from its coordinating goroutine.
type Recorder interface {
	RecordRound(ctx context.Context, s RoundSummary) error
	RecordBest(ctx context.Context, e BestEvent) error
}

// NewRunID returns a uuid string drawn from r (nil: crypto random).
func NewRunID(r io.Reader) string {
	if r == nil {
		return uuid.NewString()
	}
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
