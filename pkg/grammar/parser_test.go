package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name     string
		sentence string
		expected []string
	}{
		{
			name:     "simple sentence",
			sentence: "The cat sat.",
			expected: []string{"the", "cat", "sat"},
		},
		{
			name:     "punctuation stripped inside words",
			sentence: "Apple is buying a startup in the U.K.",
			expected: []string{"apple", "is", "buying", "a", "startup", "in", "the", "uk"},
		},
		{
			name:     "punctuation only",
			sentence: "?! ...",
			expected: []string{},
		},
		{
			name:     "extra whitespace collapsed",
			sentence: "  the   dog  barked!  ",
			expected: []string{"the", "dog", "barked"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tokenize(tc.sentence))
		})
	}
}

func TestParseSimpleSentence(t *testing.T) {
	parser := NewParser()

	result := parser.Parse("the cat sat")
	require.True(t, result.Success)
	require.NotEmpty(t, result.Trees)
	assert.Empty(t, result.ErrorMessage)
	assert.Equal(t, "the cat sat", result.Sentence)
	assert.Contains(t, result.Trees, "(S (NP (Det the) (Nom (N cat))) (VP (V sat)))")
	assert.NotEmpty(t, result.GrammarRules)
}

func TestParseOutOfLexicon(t *testing.T) {
	parser := NewParser()

	result := parser.Parse("Apple is buying a startup in the U.K.")
	assert.False(t, result.Success)
	assert.Empty(t, result.Trees)
	require.NotEmpty(t, result.ErrorMessage)
	// "u.k." loses its periods during tokenization and "uk" is not a terminal
	assert.Contains(t, result.ErrorMessage, "uk")
	assert.Contains(t, result.ErrorMessage, "apple is buying a startup in the uk")
}

func TestParseAmbiguousSentence(t *testing.T) {
	parser := NewParser()

	// PP attachment is ambiguous: "with the telescope" modifies either
	// the seeing or the man.
	result := parser.Parse("john saw the man with the telescope")
	require.True(t, result.Success)
	assert.GreaterOrEqual(t, len(result.Trees), 2)

	for _, tree := range result.Trees {
		assert.True(t, strings.HasPrefix(tree, "(S "))
	}
}

func TestParseEmptySentence(t *testing.T) {
	parser := NewParser()

	result := parser.Parse("...")
	assert.False(t, result.Success)
	assert.Empty(t, result.Trees)
	assert.NotEmpty(t, result.ErrorMessage)
}

func TestParseInLexiconNoDerivation(t *testing.T) {
	parser := NewParser()

	// Every token is a terminal but the sequence has no S derivation.
	result := parser.Parse("the the the")
	assert.False(t, result.Success)
	assert.Empty(t, result.Trees)
	assert.Contains(t, result.ErrorMessage, "no valid parse")
}

func TestGrammarRulesText(t *testing.T) {
	g := NewToyGrammar()
	text := g.RulesText()

	assert.Contains(t, text, "S -> NP VP")
	assert.Contains(t, text, "PP -> P NP")
	assert.Contains(t, text, "'cat'")
}

func TestLexiconLookup(t *testing.T) {
	g := NewToyGrammar()

	assert.True(t, g.InLexicon("cat"))
	assert.True(t, g.InLexicon("sat"))
	assert.False(t, g.InLexicon("uk"))
	assert.Contains(t, g.Categories("cat"), "N")
}
