package converters

import "errors"

var (
	// ErrNilTree is returned for a nil input tree.
	ErrNilTree = errors.New("converters: nil tree")

	// ErrUnknownLabel indicates a node label that names no mutation.
	ErrUnknownLabel = errors.New("converters: unknown node label")

	// ErrInvalidLoss indicates a loss with no matching gain above it.
	ErrInvalidLoss = errors.New("converters: loss without ancestral gain")

	// ErrMalformedNewick indicates Newick text that does not parse.
	ErrMalformedNewick = errors.New("converters: malformed newick")
)
