package converters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/evolbioinfo/gotree/tree"

	"github.com/katalvlaran/phylopso/phylo"
)

// LossSuffix marks a loss node in labels.
const LossSuffix = "-"

// Label returns the gotree label of n.
func Label(n *phylo.Node) string {
	if n.Loss {
		return n.Name + LossSuffix
	}
	return n.Name
}

// ToGotree copies t into a rooted gotree tree; child order is preserved.
// Complexity: O(V).
func ToGotree(t *phylo.Tree) (*tree.Tree, error) {
	if t == nil || t.Root == nil {
		return nil, fmt.Errorf("ToGotree: %w", ErrNilTree)
	}
	gt := tree.NewTree()
	root := gt.NewNode()
	root.SetName(Label(t.Root))
	gt.SetRoot(root)

	var walk func(src *phylo.Node, dst *tree.Node)
	walk = func(src *phylo.Node, dst *tree.Node) {
		for _, c := range src.Children() {
			gc := gt.NewNode()
			gc.SetName(Label(c))
			gt.ConnectNodes(dst, gc)
			walk(c, gc)
		}
	}
	walk(t.Root, root)
	return gt, nil
}

// FromGotree rebuilds a mutation tree over names with loss budget k. Labels
// are matched against names, exact names first, then names followed by
// LossSuffix. The root label is ignored. Every loss must sit below a gain
// of its mutation; the result is bookkeeping-complete and invariant-checked.
// Complexity: O(V).
func FromGotree(gt *tree.Tree, names []string, k int) (*phylo.Tree, error) {
	if gt == nil || gt.Root() == nil {
		return nil, fmt.Errorf("FromGotree: %w", ErrNilTree)
	}
	ids := make(map[string]int, len(names))
	for i, name := range names {
		ids[name] = i
	}

	t := phylo.NewTree(len(names), k)
	seq := 0
	var walk func(src, prev *tree.Node, dst *phylo.Node) error
	walk = func(src, prev *tree.Node, dst *phylo.Node) error {
		for _, c := range src.Neigh() {
			if c == prev {
				continue
			}
			p, err := payload(c.Name(), ids)
			if err != nil {
				return err
			}
			seq++
			p.UID = "n" + strconv.Itoa(seq)
			n := phylo.NewNode(p)
			dst.AddChild(n)
			if err := walk(c, src, n); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(gt.Root(), nil, t.Root); err != nil {
		return nil, fmt.Errorf("FromGotree: %w", err)
	}

	t.RecomputeLosses()
	for _, n := range t.Losses() {
		if !n.IsLossValid() {
			return nil, fmt.Errorf("FromGotree: %s%s: %w", n.Name, LossSuffix, ErrInvalidLoss)
		}
	}
	if err := t.CheckInvariants(); err != nil {
		return nil, fmt.Errorf("FromGotree: %w", err)
	}
	return t, nil
}

func payload(label string, ids map[string]int) (phylo.Payload, error) {
	if m, ok := ids[label]; ok {
		return phylo.Payload{Name: label, MutationID: m}, nil
	}
	if name, ok := strings.CutSuffix(label, LossSuffix); ok {
		if m, ok := ids[name]; ok {
			return phylo.Payload{Name: name, MutationID: m, Loss: true}, nil
		}
	}
	return phylo.Payload{}, fmt.Errorf("%q: %w", label, ErrUnknownLabel)
}
