package annotation

import (
	"context"
	"fmt"
	"strings"

	"github.com/lingokit/lingo/pkg/models"
)

// attach assigns every token a head index and a dependency label. The
// rules are deliberately simple but guarantee a well-formed tree: there
// is exactly one root (its head is itself) and every non-root head chain
// terminates at the root in at most three hops, so cycles cannot occur.
func attach(tokens []models.Token) (heads []int, labels []string) {
	n := len(tokens)
	heads = make([]int, n)
	labels = make([]string, n)
	if n == 0 {
		return heads, labels
	}

	root := 0
	for i, tok := range tokens {
		if tok.POS == "VERB" {
			root = i
			break
		}
	}

	nextNominal := func(from int) int {
		for j := from + 1; j < n; j++ {
			switch tokens[j].POS {
			case "NOUN", "PROPN", "PRON":
				return j
			}
		}
		return -1
	}

	precedingAdposition := func(from int) int {
		for j := from - 1; j >= 0; j-- {
			switch tokens[j].POS {
			case "ADP":
				return j
			case "NOUN", "PROPN", "PRON", "VERB":
				return -1
			}
		}
		return -1
	}

	for i, tok := range tokens {
		if i == root {
			heads[i] = i
			labels[i] = "ROOT"
			continue
		}

		switch tok.POS {
		case "DET":
			if j := nextNominal(i); j >= 0 {
				heads[i], labels[i] = j, "det"
			} else {
				heads[i], labels[i] = root, "dep"
			}
		case "ADJ":
			if j := nextNominal(i); j >= 0 {
				heads[i], labels[i] = j, "amod"
			} else {
				heads[i], labels[i] = root, "amod"
			}
		case "NOUN", "PROPN", "PRON":
			if j := precedingAdposition(i); j >= 0 {
				heads[i], labels[i] = j, "pobj"
			} else if i < root {
				heads[i], labels[i] = root, "nsubj"
			} else {
				heads[i], labels[i] = root, "dobj"
			}
		case "ADP":
			heads[i], labels[i] = root, "prep"
		case "ADV":
			heads[i], labels[i] = root, "advmod"
		case "VERB":
			heads[i], labels[i] = root, "conj"
		case "PUNCT":
			heads[i], labels[i] = root, "punct"
		default:
			heads[i], labels[i] = root, "dep"
		}
	}

	return heads, labels
}

// Dependency returns a mermaid rendering of the dependency tree along
// with one edge record per token. The root token's head is its own text.
func (a *ProseAnnotator) Dependency(
	ctx context.Context,
	sentence string,
) (string, []models.DependencyEdge, error) {
	tokens, err := a.POS(ctx, sentence)
	if err != nil {
		return "", nil, err
	}
	if len(tokens) == 0 {
		return "", []models.DependencyEdge{}, nil
	}

	heads, labels := attach(tokens)

	children := make([][]string, len(tokens))
	for i, head := range heads {
		if head == i {
			continue
		}
		children[head] = append(children[head], tokens[i].Text)
	}

	edges := make([]models.DependencyEdge, len(tokens))
	for i, tok := range tokens {
		kids := children[i]
		if kids == nil {
			kids = []string{}
		}
		edges[i] = models.DependencyEdge{
			Text:     tok.Text,
			Dep:      labels[i],
			Head:     tokens[heads[i]].Text,
			POS:      tok.POS,
			Children: kids,
		}
	}

	return dependencyDiagram(tokens, heads, labels), edges, nil
}

func dependencyDiagram(tokens []models.Token, heads []int, labels []string) string {
	var b strings.Builder
	b.WriteString("graph TD\n")
	for i, tok := range tokens {
		if heads[i] == i {
			b.WriteString(fmt.Sprintf("    T%d[\"%s (ROOT)\"]\n", i, tok.Text))
			continue
		}
		b.WriteString(fmt.Sprintf("    T%d[\"%s\"] -->|%s| T%d[\"%s\"]\n",
			i, tok.Text, labels[i], heads[i], tokens[heads[i]].Text))
	}
	return strings.TrimRight(b.String(), "\n")
}
