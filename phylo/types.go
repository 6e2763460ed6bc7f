package phylo

import (
	"errors"
	"fmt"
)

// GermlineName is the label of every root node.
const GermlineName = "germline"

// GermlineUID is the uid of every root node; roots of copies share it.
const GermlineUID = "germline"

// GermlineMutation is the mutation id carried by the root.
const GermlineMutation = -1

// ErrInvariantViolation signals tree-model corruption. Callers must stop
// the search when errors.Is(err, ErrInvariantViolation) holds.
var ErrInvariantViolation = errors.New("phylo: invariant violation")

var (
	// ErrNotRoot is returned when clades are requested from a non-root node.
	ErrNotRoot = fmt.Errorf("phylo: clades requested from non-root node: %w", ErrInvariantViolation)

	// ErrBrokenParentage is returned when a child's parent reference does not
	// match the node holding it, or a node is reachable twice.
	ErrBrokenParentage = fmt.Errorf("phylo: broken parentage: %w", ErrInvariantViolation)

	// ErrLossBudgetExceeded is returned when a mutation is lost more than k times
	// after a completed repair pass.
	ErrLossBudgetExceeded = fmt.Errorf("phylo: loss budget exceeded: %w", ErrInvariantViolation)
)

var (
	// ErrRootNode is returned when a structural edit targets the root.
	ErrRootNode = errors.New("phylo: operation not allowed on root")

	// ErrNotALoss is returned when DeleteLoss receives a node that is not a
	// registered loss of the tree.
	ErrNotALoss = errors.New("phylo: node is not a registered loss")
)

// Payload is the per-node record carried by the tree container.
type Payload struct {
	// UID identifies the node and survives Copy.
	UID string
	// Name is the mutation label ("germline" for the root).
	Name string
	// MutationID indexes the mutation space; -1 only for the root.
	MutationID int
	// Loss marks a back-mutation of an ancestor's gain.
	Loss bool
}

// OpKind enumerates the recorded tree edits.
type OpKind int

// Recorded edit kinds.
const (
	OpBackMutation OpKind = iota
	OpDeleteMutation
	OpSwitchNodes
	OpPruneRegraft
	OpCladeGraft
)

var opNames = [...]string{"back-mutation", "delete-mutation", "switch-nodes", "prune-regraft", "clade-graft"}

// String returns the kebab-case name of the edit.
func (k OpKind) String() string {
	if k < 0 || int(k) >= len(opNames) {
		return fmt.Sprintf("op(%d)", int(k))
	}
	return opNames[k]
}

// Operation is one entry of a tree's edit log.
type Operation struct {
	Kind OpKind   `json:"kind"`
	UIDs []string `json:"uids"`
}

// Record is a flat, serialisable view of one node.
type Record struct {
	UID        string `json:"uid"`
	Name       string `json:"name"`
	MutationID int    `json:"mutation_id"`
	Loss       bool   `json:"loss,omitempty"`
	ParentUID  string `json:"parent_uid,omitempty"`
}
