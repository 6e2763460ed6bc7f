// Package operator implements the structural edits explored by the search:
//
//	BackMutation   insert a loss of an ancestor's mutation above a node
//	DeleteMutation delete-and-collapse an existing loss
//	SwitchNodes    exchange the payload of two non-root nodes
//	PruneRegraft   move a subtree under another node
//	GraftClade     import a copy of a clade from another tree
//
// Every operator has an explicit-operand form addressed by uid and, for the
// four local edits, a Random* form that draws its operands from an injected
// *rand.Rand. ApplyRandom walks a shuffled list of the four local kinds and
// stops at the first one that applies.
//
// Expected rejections (cycle-forming regraft, exhausted loss budget, empty
// candidate lists, ...) are reported as an Outcome with Applied == false and
// a Reason; the tree is left untouched. A non-nil error is only returned when
// the tree is corrupt, and then wraps phylo.ErrInvariantViolation or one of
// the structural phylo errors.
//
// Every applied edit runs the loss repair on the affected subtree and is
// appended to the tree's operation log.
package operator
