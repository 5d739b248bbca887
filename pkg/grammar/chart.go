package grammar

import "strings"

// tree is one derivation node: a category covering a span, with either a
// terminal word or child derivations.
type tree struct {
	label    string
	word     string
	children []*tree
}

func (t *tree) render(b *strings.Builder) {
	b.WriteString("(")
	b.WriteString(t.label)
	if t.word != "" {
		b.WriteString(" ")
		b.WriteString(t.word)
	}
	for _, c := range t.children {
		b.WriteString(" ")
		c.render(b)
	}
	b.WriteString(")")
}

func (t *tree) String() string {
	var b strings.Builder
	t.render(&b)
	return b.String()
}

type chartKey struct {
	sym   string
	start int
	end   int
}

// chart memoizes every (symbol, span) cell so each constituent is built
// exactly once regardless of how many derivations reuse it.
type chart struct {
	grammar *Grammar
	tokens  []string
	cells   map[chartKey][]*tree
}

func newChart(g *Grammar, tokens []string) *chart {
	return &chart{
		grammar: g,
		tokens:  tokens,
		cells:   make(map[chartKey][]*tree),
	}
}

// parses enumerates all derivations of sym over tokens[start:end], in the
// grammar's production order. Results are returned in the chart's natural
// enumeration order and are not reordered.
func (c *chart) parses(sym string, start, end int) []*tree {
	key := chartKey{sym: sym, start: start, end: end}
	if cached, ok := c.cells[key]; ok {
		return cached
	}
	// Seed the cell before recursing so a cyclic unary chain cannot loop.
	c.cells[key] = nil

	var results []*tree

	if end-start == 1 {
		word := c.tokens[start]
		for _, cat := range c.grammar.Categories(word) {
			if cat == sym {
				results = append(results, &tree{label: sym, word: word})
			}
		}
	}

	for _, p := range c.grammar.Productions {
		if p.LHS != sym {
			continue
		}
		for _, children := range c.sequence(p.RHS, start, end) {
			results = append(results, &tree{label: sym, children: children})
		}
	}

	c.cells[key] = results
	return results
}

// sequence enumerates all ways to derive the symbol sequence over the
// span, splitting left to right.
func (c *chart) sequence(syms []string, start, end int) [][]*tree {
	if len(syms) == 0 {
		if start == end {
			return [][]*tree{{}}
		}
		return nil
	}

	// Each remaining symbol must cover at least one token.
	var results [][]*tree
	last := end - (len(syms) - 1)
	for split := start + 1; split <= last; split++ {
		heads := c.parses(syms[0], start, split)
		if len(heads) == 0 {
			continue
		}
		tails := c.sequence(syms[1:], split, end)
		for _, head := range heads {
			for _, tail := range tails {
				children := append([]*tree{head}, tail...)
				results = append(results, children)
			}
		}
	}
	return results
}
