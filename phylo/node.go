// File: node.go
// Role: tree algebra on Node (attach, detach, collapse, copy, traversal).
// Determinism:
//   - Children keep insertion order; traversals are stable for a given shape.
//   - DeleteAndCollapse splices children at the removed node's position.

package phylo

import (
	"io"

	"github.com/google/uuid"
)

// Node is one vertex of a mutation tree.
// parent is a non-owning back reference; children are owned.
type Node struct {
	Payload

	parent   *Node
	children []*Node
}

// NewNode returns a detached node carrying p.
func NewNode(p Payload) *Node {
	return &Node{Payload: p}
}

// NewUID draws a fresh node uid from r. Passing a seeded *rand.Rand makes uids
// reproducible; a nil reader falls back to crypto randomness.
func NewUID(r io.Reader) string {
	if r == nil {
		return uuid.NewString()
	}
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Parent returns the parent, or nil for a root or detached node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the live child slice. Callers must not modify it.
func (n *Node) Children() []*Node { return n.children }

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Root climbs to the top of n's tree.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// AddChild appends c to n's children, detaching c from its old parent first.
// Complexity: O(deg(old parent)).
func (n *Node) AddChild(c *Node) {
	if c.parent != nil {
		c.Detach()
	}
	c.parent = n
	n.children = append(n.children, c)
}

// insertChildAt places a detached c at position i among n's children.
func (n *Node) insertChildAt(i int, c *Node) {
	c.parent = n
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
}

func (n *Node) childIndex(c *Node) int {
	for i, x := range n.children {
		if x == c {
			return i
		}
	}
	return -1
}

// Detach removes n (with its subtree) from its parent and returns n.
// Detaching a root is a no-op.
func (n *Node) Detach() *Node {
	p := n.parent
	if p == nil {
		return n
	}
	if i := p.childIndex(n); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	n.parent = nil
	return n
}

// InsertAbove splices the detached node m between n and n's parent:
// m takes n's position among the siblings and n becomes m's only child.
func (n *Node) InsertAbove(m *Node) error {
	p := n.parent
	if p == nil {
		return ErrRootNode
	}
	i := p.childIndex(n)
	if i < 0 {
		return ErrBrokenParentage
	}
	n.Detach()
	m.Detach()
	p.insertChildAt(i, m)
	m.AddChild(n)
	return nil
}

// DeleteAndCollapse removes n and re-parents its children onto n's parent,
// in order, at n's former position. The result may be non-dichotomous.
// Complexity: O(deg(parent) + deg(n)).
func (n *Node) DeleteAndCollapse() error {
	p := n.parent
	if p == nil {
		return ErrRootNode
	}
	i := p.childIndex(n)
	if i < 0 {
		return ErrBrokenParentage
	}
	kids := n.children
	n.children = nil
	n.parent = nil

	rest := append([]*Node(nil), p.children[i+1:]...)
	p.children = append(p.children[:i], kids...)
	p.children = append(p.children, rest...)
	for _, c := range kids {
		c.parent = p
	}
	return nil
}

// Copy deep-copies the subtree rooted at n. Every copied node keeps its
// Payload (uid included); the copy's root is detached.
// Complexity: O(size of subtree).
func (n *Node) Copy() *Node {
	cp := &Node{Payload: n.Payload}
	if len(n.children) > 0 {
		cp.children = make([]*Node, len(n.children))
		for i, c := range n.children {
			cc := c.Copy()
			cc.parent = cp
			cp.children[i] = cc
		}
	}
	return cp
}

// PreOrder returns the subtree rooted at n, parents before children.
func (n *Node) PreOrder() []*Node {
	out := make([]*Node, 0, 16)
	var walk func(*Node)
	walk = func(x *Node) {
		out = append(out, x)
		for _, c := range x.children {
			walk(c)
		}
	}
	walk(n)
	return out
}

// PostOrder returns the subtree rooted at n, children before parents.
func (n *Node) PostOrder() []*Node {
	out := make([]*Node, 0, 16)
	var walk func(*Node)
	walk = func(x *Node) {
		for _, c := range x.children {
			walk(c)
		}
		out = append(out, x)
	}
	walk(n)
	return out
}

// FindByUID searches n's subtree for uid.
func (n *Node) FindByUID(uid string) *Node {
	if n.UID == uid {
		return n
	}
	for _, c := range n.children {
		if f := c.FindByUID(uid); f != nil {
			return f
		}
	}
	return nil
}

// IsAncestorOf reports whether n is a proper ancestor of m.
func (n *Node) IsAncestorOf(m *Node) bool {
	for p := m.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Depth is the number of edges between n and its root.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Height is the number of nodes on the longest downward path from n.
func (n *Node) Height() int {
	h := 0
	for _, c := range n.children {
		if ch := c.Height(); ch > h {
			h = ch
		}
	}
	return h + 1
}

// GenotypeProfile walks from n to the root adding +1 for every gain and -1
// for every loss at the node's mutation id. profile must have one slot per
// mutation.
func (n *Node) GenotypeProfile(profile []int) {
	for cur := n; cur != nil && cur.MutationID != GermlineMutation; cur = cur.parent {
		if cur.Loss {
			profile[cur.MutationID]--
		} else {
			profile[cur.MutationID]++
		}
	}
}

// IsLossValid reports whether some proper ancestor gains n's mutation.
func (n *Node) IsLossValid() bool {
	for p := n.parent; p != nil; p = p.parent {
		if !p.Loss && p.MutationID == n.MutationID {
			return true
		}
	}
	return false
}

// IsAlreadyLost reports whether some proper ancestor already loses mutationID.
func (n *Node) IsAlreadyLost(mutationID int) bool {
	for p := n.parent; p != nil; p = p.parent {
		if p.Loss && p.MutationID == mutationID {
			return true
		}
	}
	return false
}

// Clades returns every non-root node of the tree rooted at n, in pre-order.
// Each entry stands for the subtree it roots. n must be a germline root.
func (n *Node) Clades() ([]*Node, error) {
	if n.parent != nil || n.MutationID != GermlineMutation {
		return nil, ErrNotRoot
	}
	all := n.PreOrder()
	return all[1:], nil
}
