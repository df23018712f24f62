// Package grammar recognizes English time expressions. It holds the
// lexical atoms, the ordered-choice rule table rooted at TOP, and the
// matcher that turns an input string into a labeled parse tree.
//
// The grammar is PEG-style: a rule's alternatives are tried in order
// and the first one that matches commits, so alternative order encodes
// disambiguation priority. Specific, greedy forms are listed before
// general ones (a full date with year before a bare ordinal day).
//
// Compilation happens once per process, lazily, behind a sync.Once; the
// compiled grammar is immutable and shared by all callers.
package grammar

import (
	"fmt"
	"regexp"
	"strings"
)

// element is one step of an alternative: either a literal pattern or a
// reference to another rule, optionally skippable.
type element struct {
	ref      string // rule name; empty for literals
	pattern  string // regex source for literals
	re       *regexp.Regexp
	optional bool
}

// rule is a named, ordered list of alternatives; each alternative is an
// ordered element sequence.
type rule struct {
	name string
	alts [][]element
}

// Grammar is the compiled rule table. Immutable after compile.
type Grammar struct {
	top   string
	rules map[string]*rule
	order []string // authored rule order, kept for dumps
}

// Builders for the rule table in rules.go.

func ref(name string) element        { return element{ref: name} }
func pat(pattern string) element     { return element{pattern: pattern} }
func opt(e element) element          { e.optional = true; return e }
func alt(elems ...element) []element { return elems }

func rl(name string, alts ...[]element) rule { return rule{name: name, alts: alts} }

// lit builds a literal element matching any of the given words,
// case-insensitively, longest first, with interior spaces flexible.
func lit(words ...string) element {
	sorted := make([]string, len(words))
	copy(sorted, words)
	// Longer words first so a prefix never shadows the full word.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && len(sorted[j]) > len(sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	parts := make([]string, len(sorted))
	for i, w := range sorted {
		p := regexp.QuoteMeta(w)
		p = strings.ReplaceAll(p, ` `, `\s+`)
		if isWordChar(w[len(w)-1]) {
			p += `\b`
		}
		parts[i] = p
	}
	return element{pattern: `(?:` + strings.Join(parts, `|`) + `)`}
}

func isWordChar(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// compile resolves references, checks reachability from the top rule,
// and compiles every literal pattern anchored at the scan position.
// The rule table is static, so failures are programming errors and
// panic, like regexp.MustCompile.
func compile(top string, rules []rule) *Grammar {
	g := &Grammar{top: top, rules: make(map[string]*rule, len(rules))}
	for i := range rules {
		r := &rules[i]
		if _, dup := g.rules[r.name]; dup {
			panic(fmt.Sprintf("grammar: duplicate rule %q", r.name))
		}
		g.rules[r.name] = r
		g.order = append(g.order, r.name)
	}
	if _, ok := g.rules[top]; !ok {
		panic(fmt.Sprintf("grammar: missing top rule %q", top))
	}

	reachable := map[string]bool{}
	var walk func(name string)
	walk = func(name string) {
		if reachable[name] {
			return
		}
		reachable[name] = true
		r, ok := g.rules[name]
		if !ok {
			panic(fmt.Sprintf("grammar: reference to undefined rule %q", name))
		}
		for ai := range r.alts {
			for ei := range r.alts[ai] {
				el := &r.alts[ai][ei]
				if el.ref != "" {
					walk(el.ref)
				} else {
					el.re = regexp.MustCompile(`\A(?i:` + el.pattern + `)`)
				}
			}
		}
	}
	walk(top)

	for _, name := range g.order {
		if !reachable[name] {
			panic(fmt.Sprintf("grammar: rule %q unreachable from %q", name, top))
		}
	}
	return g
}

// RuleDoc is a display form of one rule, used by the grammar dump.
type RuleDoc struct {
	Rule         string   `yaml:"rule"`
	Alternatives []string `yaml:"alternatives"`
}

// Docs renders the rule table in authored order. References appear as
// <name>, literals as /pattern/, optional elements with a ? suffix.
func (g *Grammar) Docs() []RuleDoc {
	docs := make([]RuleDoc, 0, len(g.order))
	for _, name := range g.order {
		r := g.rules[name]
		doc := RuleDoc{Rule: name}
		for _, a := range r.alts {
			var b strings.Builder
			for i, el := range a {
				if i > 0 {
					b.WriteByte(' ')
				}
				if el.ref != "" {
					b.WriteString("<" + el.ref + ">")
				} else {
					b.WriteString("/" + el.pattern + "/")
				}
				if el.optional {
					b.WriteByte('?')
				}
			}
			doc.Alternatives = append(doc.Alternatives, b.String())
		}
		docs = append(docs, doc)
	}
	return docs
}
