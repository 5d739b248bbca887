package annotation

import (
	"context"
	"fmt"
	"strings"

	"github.com/lingokit/lingo/pkg/models"
)

// Constituency produces a best-effort phrase-structure approximation.
// The tagging pipeline has no constituency model, so runs of nominal
// material are grouped into NP leaves and verbs into VP leaves. The
// result is a deterministic heuristic, not a linguistically correct
// parse; callers must treat it as an approximation.
func (a *ProseAnnotator) Constituency(
	ctx context.Context,
	sentence string,
) (string, string, error) {
	tokens, err := a.POS(ctx, sentence)
	if err != nil {
		return "", "", err
	}

	chunks := chunk(tokens)
	treeText := renderTree(chunks)
	return constituencyDiagram(chunks), treeText, nil
}

type phrase struct {
	label string
	words []string
}

// chunk groups consecutive determiner/adjective/nominal tokens into NP
// phrases and verb runs into VP phrases; anything else stands alone.
func chunk(tokens []models.Token) []phrase {
	var phrases []phrase

	flush := func(label string, words []string) []string {
		if len(words) > 0 {
			phrases = append(phrases, phrase{label: label, words: words})
		}
		return nil
	}

	var npRun, vpRun []string
	for _, tok := range tokens {
		switch tok.POS {
		case "DET", "ADJ", "NOUN", "PROPN", "PRON", "NUM":
			vpRun = flush("VP", vpRun)
			npRun = append(npRun, tok.Text)
		case "VERB":
			npRun = flush("NP", npRun)
			vpRun = append(vpRun, tok.Text)
		case "PUNCT":
			npRun = flush("NP", npRun)
			vpRun = flush("VP", vpRun)
		default:
			npRun = flush("NP", npRun)
			vpRun = flush("VP", vpRun)
			phrases = append(phrases, phrase{label: "", words: []string{tok.Text}})
		}
	}
	flush("NP", npRun)
	flush("VP", vpRun)

	return phrases
}

func renderTree(phrases []phrase) string {
	if len(phrases) == 0 {
		return "(S)"
	}

	parts := make([]string, 0, len(phrases))
	for _, p := range phrases {
		joined := strings.Join(p.words, " ")
		if p.label == "" {
			parts = append(parts, joined)
		} else {
			parts = append(parts, fmt.Sprintf("(%s %s)", p.label, joined))
		}
	}
	return fmt.Sprintf("(S %s)", strings.Join(parts, " "))
}

func constituencyDiagram(phrases []phrase) string {
	var b strings.Builder
	b.WriteString("graph TD\n")
	b.WriteString("    S[S]\n")
	for i, p := range phrases {
		label := p.label
		if label == "" {
			label = "X"
		}
		b.WriteString(fmt.Sprintf("    S --> P%d[%s]\n", i, label))
		for j, w := range p.words {
			b.WriteString(fmt.Sprintf("    P%d --> W%d_%d[\"%s\"]\n", i, i, j, w))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
