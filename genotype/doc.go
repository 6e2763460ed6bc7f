// Package genotype holds the immutable problem context shared by a whole run:
// the noisy cells × mutations observation matrix, the mutation names, the
// false-negative rate α, the false-positive rate β and the Dollo(k) loss
// budget k.
//
// Observations are stored in a gonum mat.Dense and take three values:
//
//	0 – mutation not observed in the cell
//	1 – mutation observed in the cell
//	2 – missing observation (no penalty when scoring)
//
// Read parses the same values from whitespace-separated text, one cell per
// line; ReadNames reads one mutation name per line.
//
// All validation happens here, at the boundary. Code downstream (scorer,
// operators, swarm) assumes a valid Problem and never re-checks it.
//
// Errors:
//
//	ErrEmptyMatrix      - zero cells or zero mutations.
//	ErrRaggedMatrix     - rows of different length.
//	ErrBadObservation   - a value outside {0,1,2}.
//	ErrBadRate          - α or β outside the open interval (0,1).
//	ErrBadLossBudget    - negative k.
//	ErrNamesMismatch    - number of names differs from the mutation count.
//	ErrBadName          - an empty or duplicate name, or one ending in "-".
//	ErrSyntax           - a non-integer token in a text matrix (Read).
package genotype
