package annotation

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingokit/lingo/pkg/models"
	"github.com/lingokit/lingo/pkg/testutils"
)

func newTestAnnotator() *ProseAnnotator {
	cfg := testutils.NewTestConfig()
	cfg.Annotation.CacheTTLSeconds = 60
	return NewProseAnnotator(cfg)
}

func TestPOSCorpus(t *testing.T) {
	annotator := newTestAnnotator()

	for _, sentence := range testutils.TestSentences {
		tokens, err := annotator.POS(context.Background(), sentence)
		require.NoError(t, err, "sentence: %s", sentence)
		require.NotEmpty(t, tokens, "sentence: %s", sentence)
		for _, tok := range tokens {
			assert.Equal(t, tok.Text, sentence[tok.Start:tok.End])
			assert.NotEmpty(t, tok.POS)
		}
	}
}

func TestPOSOffsets(t *testing.T) {
	annotator := newTestAnnotator()

	text := "The quick brown fox jumped over the lazy dog."
	tokens, err := annotator.POS(context.Background(), text)
	require.NoError(t, err)
	require.NotEmpty(t, tokens)

	// Concatenated spans reconstruct the input modulo whitespace.
	var rebuilt strings.Builder
	prevEnd := 0
	for _, tok := range tokens {
		assert.GreaterOrEqual(t, tok.Start, prevEnd)
		assert.LessOrEqual(t, tok.End, len(text))
		assert.Equal(t, len(tok.Text), tok.End-tok.Start)
		assert.Equal(t, tok.Text, text[tok.Start:tok.End])
		rebuilt.WriteString(tok.Text)
		prevEnd = tok.End
	}
	assert.Equal(t,
		strings.Join(strings.Fields(strings.ReplaceAll(text, ".", " .")), ""),
		rebuilt.String(),
	)
}

func TestPOSAnnotations(t *testing.T) {
	annotator := newTestAnnotator()

	tokens, err := annotator.POS(context.Background(), "the cat sat")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, "the", tokens[0].Text)
	assert.Equal(t, "DET", tokens[0].POS)
	assert.Equal(t, "cat", tokens[1].Text)
	assert.Equal(t, "NOUN", tokens[1].POS)
	assert.Equal(t, "sat", tokens[2].Text)
	assert.Equal(t, "VERB", tokens[2].POS)

	for _, tok := range tokens {
		assert.NotEmpty(t, tok.Tag)
		assert.NotEmpty(t, tok.Lemma)
		assert.NotEmpty(t, tok.Dep)
	}
	assert.Equal(t, "ROOT", tokens[2].Dep)
	assert.Equal(t, "nsubj", tokens[1].Dep)
}

func TestNERSpans(t *testing.T) {
	annotator := newTestAnnotator()

	text := "Barack Obama met Angela Merkel in Berlin."
	entities, err := annotator.NER(context.Background(), text)
	require.NoError(t, err)

	prevEnd := 0
	for _, ent := range entities {
		assert.GreaterOrEqual(t, ent.Start, prevEnd, "spans must not overlap")
		assert.LessOrEqual(t, ent.End, len(text))
		assert.Equal(t, text[ent.Start:ent.End], ent.Text)
		assert.NotEmpty(t, ent.Label)
		prevEnd = ent.End
	}
}

func TestDependencyEdges(t *testing.T) {
	annotator := newTestAnnotator()

	diagram, edges, err := annotator.Dependency(context.Background(), "the cat sat on the mat")
	require.NoError(t, err)
	require.NotEmpty(t, edges)
	assert.True(t, strings.HasPrefix(diagram, "graph TD"))

	roots := 0
	for _, edge := range edges {
		if edge.Dep == "ROOT" {
			roots++
			assert.Equal(t, edge.Text, edge.Head)
		}
		assert.NotNil(t, edge.Children)
	}
	assert.Equal(t, 1, roots, "dependency tree must have exactly one root")
}

func TestAttachIsATree(t *testing.T) {
	tokens := []models.Token{
		{Text: "the", POS: "DET"},
		{Text: "big", POS: "ADJ"},
		{Text: "dog", POS: "NOUN"},
		{Text: "slept", POS: "VERB"},
		{Text: "in", POS: "ADP"},
		{Text: "the", POS: "DET"},
		{Text: "garden", POS: "NOUN"},
		{Text: "quietly", POS: "ADV"},
	}

	heads, labels := attach(tokens)
	require.Len(t, heads, len(tokens))

	roots := 0
	for i, head := range heads {
		if head == i {
			roots++
			assert.Equal(t, "ROOT", labels[i])
		}
	}
	assert.Equal(t, 1, roots)

	// Every head chain terminates at the root without cycling.
	for i := range tokens {
		seen := map[int]bool{}
		j := i
		for heads[j] != j {
			require.False(t, seen[j], "cycle detected at token %d", j)
			seen[j] = true
			j = heads[j]
		}
	}

	assert.Equal(t, 2, heads[0], "determiner attaches to the following noun")
	assert.Equal(t, "det", labels[0])
	assert.Equal(t, "amod", labels[1])
	assert.Equal(t, "nsubj", labels[2])
	assert.Equal(t, "pobj", labels[6])
	assert.Equal(t, "advmod", labels[7])
}

func TestConstituencyHeuristic(t *testing.T) {
	annotator := newTestAnnotator()

	diagram, treeText, err := annotator.Constituency(context.Background(), "the cat sat")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(treeText, "(S "))
	assert.Contains(t, treeText, "(NP the cat)")
	assert.Contains(t, treeText, "(VP sat)")
	assert.True(t, strings.HasPrefix(diagram, "graph TD"))

	// The heuristic is deterministic.
	_, again, err := annotator.Constituency(context.Background(), "the cat sat")
	require.NoError(t, err)
	assert.Equal(t, treeText, again)
}

func TestPOSCaching(t *testing.T) {
	annotator := newTestAnnotator()

	first, err := annotator.POS(context.Background(), "the cat sat")
	require.NoError(t, err)
	second, err := annotator.POS(context.Background(), "the cat sat")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUniversalTag(t *testing.T) {
	testCases := map[string]string{
		"NN":   "NOUN",
		"NNP":  "PROPN",
		"VBD":  "VERB",
		"JJ":   "ADJ",
		"RB":   "ADV",
		"DT":   "DET",
		"IN":   "ADP",
		"PRP":  "PRON",
		"CD":   "NUM",
		".":    "PUNCT",
		"ZZZQ": "X",
	}
	for ptb, expected := range testCases {
		assert.Equal(t, expected, universalTag(ptb), "tag %s", ptb)
	}
}
