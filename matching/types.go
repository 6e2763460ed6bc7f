package matching

import "errors"

var (
	// ErrNegativeWeight is returned for weights below zero.
	ErrNegativeWeight = errors.New("matching: negative weight")

	// ErrNonFiniteWeight is returned for NaN or infinite weights.
	ErrNonFiniteWeight = errors.New("matching: non-finite weight")
)

// Pair is one matched edge.
type Pair struct {
	Row, Col int
	Weight   float64
}

// Result is a maximum-weight matching.
type Result struct {
	// Pairs are sorted by Row.
	Pairs []Pair
	// Weight is the sum of matched weights.
	Weight float64
}
