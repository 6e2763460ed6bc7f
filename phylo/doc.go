// Package phylo defines the mutation tree used to model clonal evolution
// under the Dollo(k) loss model.
//
// A Tree owns exactly one root Node (the germline, MutationID == -1). Every
// other Node either gains a mutation (Loss == false) or marks the loss of a
// mutation gained by one of its ancestors (Loss == true). Walking from a node
// to the root and summing +1/-1 per mutation gives the node's genotype profile.
//
// Ownership: a Node owns its children; the parent field is a non-owning back
// reference kept consistent by AddChild, Detach and DeleteAndCollapse. Trees
// are never shared between goroutines while mutable: the search copies a tree
// (Copy keeps every UID) before editing it and treats scored trees as frozen.
//
// Loss bookkeeping (the losses list and the per-mutation loss counters) is
// derived from tree contents. RecomputeLosses rebuilds it and FixForLosses
// rebuilds it before repairing, so structural edits can never leave it stale.
//
// Core methods:
//
//	// Node algebra
//	AddChild, Detach, DeleteAndCollapse, Copy, PreOrder, PostOrder,
//	IsAncestorOf, GenotypeProfile, IsLossValid, IsAlreadyLost, Clades
//
//	// Tree aggregate
//	NewTree, Copy, Nodes, NodeByUID, Losses, KLosses, DeleteLoss,
//	RepairLosses, EnforceLossBudget, FixForLosses, CheckInvariants,
//	MutationCount, Snapshot, Record
//
// Errors:
//
//	ErrInvariantViolation  - tree-model corruption; the run must abort.
//	ErrNotRoot             - clades requested from a non-root node (wraps ErrInvariantViolation).
//	ErrBrokenParentage     - detached or cyclic parent/child links (wraps ErrInvariantViolation).
//	ErrLossBudgetExceeded  - a mutation lost more than k times (wraps ErrInvariantViolation).
//	ErrRootNode            - structural edit attempted on the root.
//	ErrNotALoss            - DeleteLoss called on a node that is not a registered loss.
package phylo
