package converters

import (
	"fmt"
	"strings"

	"github.com/evolbioinfo/gotree/tree"

	"github.com/katalvlaran/phylopso/phylo"
)

// labelSpecials are the characters that force a label into single quotes.
const labelSpecials = "()[]':;, \t\r\n"

// Newick renders t in Newick format, e.g. "((KRAS)TP53,EGFR)germline;".
// Every internal node is written as a parenthesized child list followed by
// its label, the root included, so a root with a single child reads
// "((...)TP53)germline;". Labels containing Newick punctuation or blanks
// are single-quoted with embedded quotes doubled.
// Complexity: O(V).
func Newick(t *phylo.Tree) (string, error) {
	gt, err := ToGotree(t)
	if err != nil {
		return "", fmt.Errorf("Newick: %w", err)
	}
	var b strings.Builder
	writeNewick(&b, gt.Root(), nil)
	b.WriteByte(';')
	return b.String(), nil
}

func writeNewick(b *strings.Builder, n, prev *tree.Node) {
	first := true
	for _, c := range n.Neigh() {
		if c == prev {
			continue
		}
		if first {
			b.WriteByte('(')
			first = false
		} else {
			b.WriteByte(',')
		}
		writeNewick(b, c, n)
	}
	if !first {
		b.WriteByte(')')
	}
	b.WriteString(quoteLabel(n.Name()))
}

func quoteLabel(s string) string {
	if s != "" && !strings.ContainsAny(s, labelSpecials) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// ParseNewick parses s into a gotree tree and rebuilds the mutation tree
// with FromGotree. Labels are always node names, numeric ones included.
// Branch lengths and bracketed comments are accepted and ignored.
// Complexity: O(len(s)).
func ParseNewick(s string, names []string, k int) (*phylo.Tree, error) {
	p := &newickParser{src: s, gt: tree.NewTree()}
	root, err := p.node()
	if err != nil {
		return nil, fmt.Errorf("ParseNewick: %w", err)
	}
	p.skip()
	if p.peek() != ';' {
		return nil, fmt.Errorf("ParseNewick: %w", p.errorf("expected ';'"))
	}
	p.pos++
	p.skip()
	if p.pos < len(p.src) {
		return nil, fmt.Errorf("ParseNewick: %w", p.errorf("trailing text"))
	}
	p.gt.SetRoot(root)

	t, err := FromGotree(p.gt, names, k)
	if err != nil {
		return nil, fmt.Errorf("ParseNewick: %w", err)
	}
	return t, nil
}

type newickParser struct {
	src string
	pos int
	gt  *tree.Tree
}

// peek returns the current byte, or 0 at the end of input.
func (p *newickParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *newickParser) errorf(format string, args ...any) error {
	return fmt.Errorf("offset %d: %s: %w", p.pos, fmt.Sprintf(format, args...), ErrMalformedNewick)
}

// skip consumes blanks and [comments].
func (p *newickParser) skip() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		case '[':
			end := strings.IndexByte(p.src[p.pos:], ']')
			if end < 0 {
				return
			}
			p.pos += end + 1
		default:
			return
		}
	}
}

func (p *newickParser) node() (*tree.Node, error) {
	n := p.gt.NewNode()
	p.skip()
	if p.peek() == '(' {
		p.pos++
		for {
			c, err := p.node()
			if err != nil {
				return nil, err
			}
			p.gt.ConnectNodes(n, c)
			p.skip()
			ch := p.peek()
			p.pos++
			if ch == ')' {
				break
			}
			if ch != ',' {
				p.pos--
				return nil, p.errorf("expected ',' or ')'")
			}
		}
	}

	label, err := p.label()
	if err != nil {
		return nil, err
	}
	n.SetName(label)

	p.skip()
	if p.peek() == ':' {
		p.pos++
		p.skip()
		start := p.pos
		for p.pos < len(p.src) && !strings.ContainsRune(labelSpecials, rune(p.src[p.pos])) {
			p.pos++
		}
		if p.pos == start {
			return nil, p.errorf("empty branch length")
		}
	}
	return n, nil
}

func (p *newickParser) label() (string, error) {
	p.skip()
	if p.peek() != '\'' {
		start := p.pos
		for p.pos < len(p.src) && !strings.ContainsRune(labelSpecials, rune(p.src[p.pos])) {
			p.pos++
		}
		return p.src[start:p.pos], nil
	}

	p.pos++
	var b strings.Builder
	for p.pos < len(p.src) {
		ch := p.src[p.pos]
		p.pos++
		if ch != '\'' {
			b.WriteByte(ch)
			continue
		}
		if p.peek() != '\'' {
			return b.String(), nil
		}
		b.WriteByte('\'')
		p.pos++
	}
	return "", p.errorf("unterminated quoted label")
}
