package phylo_test

import "github.com/katalvlaran/phylopso/phylo"

// gain attaches a new gain node for mutation m under parent.
func gain(parent *phylo.Node, uid string, m int) *phylo.Node {
	n := phylo.NewNode(phylo.Payload{UID: uid, Name: uid, MutationID: m})
	parent.AddChild(n)
	return n
}

// loss attaches a new loss node for mutation m under parent.
func loss(parent *phylo.Node, uid string, m int) *phylo.Node {
	n := phylo.NewNode(phylo.Payload{UID: uid, Name: uid + "-", MutationID: m, Loss: true})
	parent.AddChild(n)
	return n
}

func uids(nodes []*phylo.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.UID
	}
	return out
}
