package grammar

import (
	"fmt"
	"strings"

	"github.com/lingokit/lingo/internal"
	"github.com/lingokit/lingo/pkg/models"
)

var log = internal.GetLogger()

var _ models.GrammarParser = &Parser{}

// Parser parses sentences against the fixed toy grammar. The grammar is
// compiled once at construction; parsing itself is stateless, so a single
// Parser is shared across requests.
type Parser struct {
	grammar   *Grammar
	rulesText string
}

func NewParser() *Parser {
	g := NewToyGrammar()
	return &Parser{
		grammar:   g,
		rulesText: g.RulesText(),
	}
}

var punctStripper = strings.NewReplacer(".", "", ",", "", "!", "", "?", "")

// Tokenize lowercases the input, strips sentence punctuation and splits
// on whitespace.
func Tokenize(sentence string) []string {
	return strings.Fields(punctStripper.Replace(strings.ToLower(sentence)))
}

// Parse returns all derivations of the sentence under the toy grammar.
// Zero derivations is a normal outcome, not an error: the grammar's
// coverage is necessarily tiny.
func (p *Parser) Parse(sentence string) *models.CFGParseResult {
	result := &models.CFGParseResult{
		Sentence:     sentence,
		Trees:        []string{},
		GrammarRules: p.rulesText,
	}

	tokens := Tokenize(sentence)
	if len(tokens) == 0 {
		result.ErrorMessage = "no tokens after tokenization; the sentence is empty or punctuation-only"
		return result
	}

	var unknown []string
	for _, tok := range tokens {
		if !p.grammar.InLexicon(tok) {
			unknown = append(unknown, tok)
		}
	}
	if len(unknown) > 0 {
		result.ErrorMessage = fmt.Sprintf(
			"cannot parse tokens [%s]: words not in grammar lexicon: %s",
			strings.Join(tokens, " "),
			strings.Join(unknown, ", "),
		)
		return result
	}

	c := newChart(p.grammar, tokens)
	derivations := c.parses("S", 0, len(tokens))
	if len(derivations) == 0 {
		result.ErrorMessage = fmt.Sprintf(
			"no valid parse for tokens [%s] under the grammar",
			strings.Join(tokens, " "),
		)
		return result
	}

	log.Debugf("grammar: %d derivation(s) for %q", len(derivations), sentence)

	for _, d := range derivations {
		result.Trees = append(result.Trees, d.String())
	}
	result.Success = true
	return result
}
