package grammar

import (
	"strings"
	"sync"

	"github.com/steveyegge/timespan/internal/types"
)

// Node is one node of the labeled parse tree: the rule that matched,
// which of its alternatives won, the exact substring covered, and the
// child nodes produced by rule references (literal elements leave no
// children). Nodes are immutable once returned.
type Node struct {
	Rule     string
	Alt      int
	Text     string
	Children []*Node
}

// Has reports whether a rule named name matched anywhere in this subtree.
func (n *Node) Has(name string) bool { return n.Find(name) != nil }

// Find returns the first node for the named rule in preorder, including
// n itself, or nil.
func (n *Node) Find(name string) *Node {
	if n.Rule == name {
		return n
	}
	for _, c := range n.Children {
		if m := c.Find(name); m != nil {
			return m
		}
	}
	return nil
}

// FindAll returns every node for the named rule in preorder.
func (n *Node) FindAll(name string) []*Node {
	var out []*Node
	if n.Rule == name {
		out = append(out, n)
	}
	for _, c := range n.Children {
		out = append(out, c.FindAll(name)...)
	}
	return out
}

// Child returns the first direct child for the named rule, or nil.
// Unlike Find it does not descend, so it cannot cross into nested
// subexpressions (the anchor of a relative offset, say).
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Rule == name {
			return c
		}
	}
	return nil
}

var (
	compileOnce sync.Once
	compiled    *Grammar
)

// Compiled returns the process-wide grammar, compiling it on first use.
// Safe to call from any number of goroutines.
func Compiled() *Grammar {
	compileOnce.Do(func() {
		compiled = compile("TOP", timeRules())
	})
	return compiled
}

// Parse matches the entire trimmed input against the top rule and
// returns the parse tree. The match is ordered-choice and depth-first:
// the first top-level alternative covering the whole input commits.
func Parse(input string) (*Node, error) {
	g := Compiled()
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, types.Parsef("cannot parse an empty string as a time expression")
	}
	top := g.rules[g.top]
	for ai, a := range top.alts {
		node, end, ok := g.matchAlt(g.top, ai, a, s, 0, 0)
		if ok && skipSpace(s, end) == len(s) {
			return node, nil
		}
	}
	return nil, types.Parsef("cannot parse %q as a time expression", input)
}

// maxDepth bounds rule recursion. The static rule graph is shallow;
// depth grows only through chained relative anchors ("2 days after 1
// week before ..."), each of which consumes input.
const maxDepth = 100

func (g *Grammar) match(name, s string, pos, depth int) (*Node, int, bool) {
	if depth > maxDepth {
		return nil, 0, false
	}
	r := g.rules[name]
	for ai, a := range r.alts {
		if node, end, ok := g.matchAlt(name, ai, a, s, pos, depth); ok {
			return node, end, true
		}
	}
	return nil, 0, false
}

// matchAlt matches one alternative's elements in sequence, skipping
// flexible whitespace between them. An optional element that fails is
// passed over; any other failure abandons the whole alternative.
func (g *Grammar) matchAlt(name string, ai int, a []element, s string, pos, depth int) (*Node, int, bool) {
	var children []*Node
	p := pos
	for i, el := range a {
		q := p
		if i > 0 {
			q = skipSpace(s, p)
		}
		child, np, ok := g.matchElement(el, s, q, depth)
		if !ok {
			if el.optional {
				continue
			}
			return nil, 0, false
		}
		if child != nil {
			children = append(children, child)
		}
		p = np
	}
	return &Node{Rule: name, Alt: ai, Text: s[pos:p], Children: children}, p, true
}

func (g *Grammar) matchElement(el element, s string, pos, depth int) (*Node, int, bool) {
	if el.ref != "" {
		return g.match(el.ref, s, pos, depth+1)
	}
	loc := el.re.FindStringIndex(s[pos:])
	if loc == nil {
		return nil, 0, false
	}
	return nil, pos + loc[1], true
}

func skipSpace(s string, pos int) int {
	for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t') {
		pos++
	}
	return pos
}
