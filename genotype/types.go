package genotype

import "errors"

// Observation values as they appear in the input matrix.
const (
	Absent  = 0 // mutation not observed
	Present = 1 // mutation observed
	Missing = 2 // no information
)

// Sentinel errors for problem construction.
var (
	// ErrEmptyMatrix indicates a matrix with no cells or no mutations.
	ErrEmptyMatrix = errors.New("genotype: empty matrix")

	// ErrRaggedMatrix indicates rows of different length.
	ErrRaggedMatrix = errors.New("genotype: ragged matrix")

	// ErrBadObservation indicates a value outside {0,1,2}.
	ErrBadObservation = errors.New("genotype: observation out of range")

	// ErrBadRate indicates α or β outside (0,1).
	ErrBadRate = errors.New("genotype: noise rate out of range")

	// ErrBadLossBudget indicates a negative loss budget k.
	ErrBadLossBudget = errors.New("genotype: negative loss budget")

	// ErrNamesMismatch indicates that the mutation names do not match the columns.
	ErrNamesMismatch = errors.New("genotype: mutation names do not match matrix")

	// ErrBadName indicates an empty, duplicate or "-"-suffixed mutation name.
	ErrBadName = errors.New("genotype: invalid mutation name")

	// ErrSyntax indicates a token in a text matrix that is not an integer.
	ErrSyntax = errors.New("genotype: malformed matrix text")
)

// Option configures a Problem before validation.
type Option func(*Problem)

// WithNames sets the mutation labels. The slice is copied.
func WithNames(names []string) Option {
	return func(p *Problem) {
		p.names = append([]string(nil), names...)
	}
}

// WithRates sets the false-negative rate alpha and false-positive rate beta.
func WithRates(alpha, beta float64) Option {
	return func(p *Problem) {
		p.alpha, p.beta = alpha, beta
	}
}

// WithLossBudget sets k, the maximum number of losses per mutation.
func WithLossBudget(k int) Option {
	return func(p *Problem) {
		p.k = k
	}
}

// Defaults used when no option overrides them. They match the reference
// command line of the method.
const (
	DefaultAlpha = 0.15
	DefaultBeta  = 0.00001
	DefaultK     = 3
)
