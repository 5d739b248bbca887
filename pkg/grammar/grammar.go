package grammar

import (
	"sort"
	"strings"
)

// Production is a single context-free rule LHS -> RHS.
type Production struct {
	LHS string
	RHS []string
}

// Grammar is the fixed toy grammar: a closed set of phrase-structure
// rules over preterminal categories, plus a closed lexicon mapping each
// preterminal to its terminal words.
type Grammar struct {
	Productions []Production
	Lexicon     map[string][]string

	// words indexes the lexicon by terminal for O(1) membership checks.
	words map[string][]string
}

// NewToyGrammar compiles the hardcoded demo grammar.
func NewToyGrammar() *Grammar {
	g := &Grammar{
		Productions: []Production{
			{LHS: "S", RHS: []string{"NP", "VP"}},
			{LHS: "NP", RHS: []string{"Det", "Nom"}},
			{LHS: "NP", RHS: []string{"Nom"}},
			{LHS: "NP", RHS: []string{"NP", "PP"}},
			{LHS: "NP", RHS: []string{"PropN"}},
			{LHS: "NP", RHS: []string{"Pro"}},
			{LHS: "Nom", RHS: []string{"Adj", "Nom"}},
			{LHS: "Nom", RHS: []string{"N"}},
			{LHS: "VP", RHS: []string{"V"}},
			{LHS: "VP", RHS: []string{"V", "NP"}},
			{LHS: "VP", RHS: []string{"V", "NP", "PP"}},
			{LHS: "VP", RHS: []string{"V", "PP"}},
			{LHS: "VP", RHS: []string{"V", "Adv"}},
			{LHS: "PP", RHS: []string{"P", "NP"}},
		},
		Lexicon: map[string][]string{
			"Det": {"the", "a", "an", "this", "that", "my", "your", "every"},
			"N": {
				"cat", "dog", "man", "woman", "child", "bird", "fish",
				"park", "telescope", "house", "ball", "book", "tree",
				"mouse", "garden", "street", "apple", "startup",
				"company", "city",
			},
			"PropN": {"john", "mary", "alice", "bob", "london"},
			"Pro":   {"i", "you", "he", "she", "it", "we", "they"},
			"V": {
				"sat", "saw", "walked", "ran", "ate", "chased", "liked",
				"bought", "sold", "read", "met", "slept", "jumped",
				"barked", "sang", "is", "was", "buying", "chases",
			},
			"Adj": {"big", "small", "old", "young", "happy", "sad", "black", "white", "quick", "lazy"},
			"Adv": {"quickly", "slowly", "quietly", "loudly", "today", "yesterday"},
			"P":   {"in", "on", "with", "by", "near", "under", "over"},
		},
	}

	g.words = make(map[string][]string)
	for cat, ws := range g.Lexicon {
		for _, w := range ws {
			g.words[w] = append(g.words[w], cat)
		}
	}
	for _, cats := range g.words {
		sort.Strings(cats)
	}

	return g
}

// Categories returns the preterminal categories of a word, or nil if the
// word is not in the lexicon.
func (g *Grammar) Categories(word string) []string {
	return g.words[word]
}

// InLexicon reports whether the word is a terminal of the grammar.
func (g *Grammar) InLexicon(word string) bool {
	return len(g.words[word]) > 0
}

// RulesText renders the grammar the way it appears in parse responses:
// phrase-structure rules first, then one lexical rule per category.
func (g *Grammar) RulesText() string {
	var b strings.Builder
	for _, p := range g.Productions {
		b.WriteString(p.LHS)
		b.WriteString(" -> ")
		b.WriteString(strings.Join(p.RHS, " "))
		b.WriteString("\n")
	}

	cats := make([]string, 0, len(g.Lexicon))
	for cat := range g.Lexicon {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	for _, cat := range cats {
		quoted := make([]string, len(g.Lexicon[cat]))
		for i, w := range g.Lexicon[cat] {
			quoted[i] = "'" + w + "'"
		}
		b.WriteString(cat)
		b.WriteString(" -> ")
		b.WriteString(strings.Join(quoted, " | "))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
