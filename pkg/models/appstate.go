package models

import (
	"context"

	"github.com/lingokit/lingo/config"
)

// Annotator exposes the pretrained linguistic-annotation pipelines.
type Annotator interface {
	POS(ctx context.Context, text string) ([]Token, error)
	NER(ctx context.Context, text string) ([]Entity, error)
	Dependency(ctx context.Context, sentence string) (string, []DependencyEdge, error)
	Constituency(ctx context.Context, sentence string) (string, string, error)
}

// GrammarParser parses sentences against the fixed toy grammar.
type GrammarParser interface {
	Parse(sentence string) *CFGParseResult
}

// AIClient delegates diagram generation and semantic-role labeling to a
// generative model. Implementations report failure in-band via AIOutcome.
type AIClient interface {
	CFGTree(ctx context.Context, sentence string) AIOutcome
	SemanticRoles(ctx context.Context, sentence string) AIOutcome
}

// Translator delegates translation to an external service.
type Translator interface {
	Translate(ctx context.Context, text string, targetLanguage string) (*TranslationResult, error)
	Languages() map[string]string
}

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	Annotator  Annotator
	Grammar    GrammarParser
	AI         AIClient
	Translator Translator
	Config     *config.Config
}
