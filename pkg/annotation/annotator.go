package annotation

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
	gocache "github.com/patrickmn/go-cache"

	"github.com/lingokit/lingo/config"
	"github.com/lingokit/lingo/internal"
	"github.com/lingokit/lingo/pkg/models"
)

var log = internal.GetLogger()

var _ models.Annotator = &ProseAnnotator{}

// ProseAnnotator wraps two pretrained prose pipelines: an
// accuracy-oriented configuration for tagging and dependency work, and a
// lightweight configuration for entity extraction. The two pipelines may
// tokenize differently, so offsets from one are never matched against
// the other.
//
// Pipelines are initialized at most once per process. A failed
// initialization is a configuration fault and stays failed: it signals a
// missing local model dependency, not a transient condition.
type ProseAnnotator struct {
	initOnce sync.Once
	initErr  error

	lemmatizer *golem.Lemmatizer

	// Results are cached as a pure optimization; both pipelines are
	// deterministic for a given input.
	cache *gocache.Cache
}

func NewProseAnnotator(cfg *config.Config) *ProseAnnotator {
	a := &ProseAnnotator{}
	if ttl := cfg.Annotation.CacheTTLSeconds; ttl > 0 {
		d := time.Duration(ttl) * time.Second
		a.cache = gocache.New(d, 2*d)
	}
	return a
}

// init lazily loads the lemmatizer dictionary and warms the prose model.
func (a *ProseAnnotator) init() error {
	a.initOnce.Do(func() {
		lemmatizer, err := golem.New(en.New())
		if err != nil {
			a.initErr = models.NewConfigurationError(
				"english lemmatizer dictionary is not available", err)
			return
		}
		a.lemmatizer = lemmatizer

		// Force the tagging model to load now so a broken installation
		// fails on first use rather than deep inside a request.
		if _, err := prose.NewDocument("warmup", prose.WithExtraction(false)); err != nil {
			a.initErr = models.NewConfigurationError(
				"prose tagging model failed to load", err)
			return
		}

		log.Info("annotation pipelines initialized")
	})
	return a.initErr
}

// taggingDoc runs the accuracy-oriented pipeline: tagging on, entity
// extraction off.
func (a *ProseAnnotator) taggingDoc(text string) (*prose.Document, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, models.NewConfigurationError("tagging pipeline failed", err)
	}
	return doc, nil
}

// entityDoc runs the lightweight pipeline with entity extraction enabled.
func (a *ProseAnnotator) entityDoc(text string) (*prose.Document, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, models.NewConfigurationError("entity pipeline failed", err)
	}
	return doc, nil
}

// POS tags each token of the text with the accuracy-oriented pipeline.
func (a *ProseAnnotator) POS(_ context.Context, text string) ([]models.Token, error) {
	if err := a.init(); err != nil {
		return nil, err
	}

	if cached, ok := a.cacheGet("pos:" + text); ok {
		return cached.([]models.Token), nil
	}

	doc, err := a.taggingDoc(text)
	if err != nil {
		return nil, err
	}

	proseTokens := doc.Tokens()
	tokens := make([]models.Token, 0, len(proseTokens))

	cursor := 0
	for _, tok := range proseTokens {
		start, end := locate(text, tok.Text, &cursor)
		tokens = append(tokens, models.Token{
			Text:  tok.Text,
			POS:   universalTag(tok.Tag),
			Tag:   tok.Tag,
			Lemma: a.lemma(tok.Text),
			Start: start,
			End:   end,
		})
	}

	// Dependency labels come from the rule-based attacher; prose itself
	// has no dependency model.
	_, labels := attach(tokens)
	for i := range tokens {
		tokens[i].Dep = labels[i]
	}

	a.cacheSet("pos:"+text, tokens)
	return tokens, nil
}

// NER extracts entity spans with the lightweight pipeline. Spans are
// non-overlapping and offsets index the original text.
func (a *ProseAnnotator) NER(_ context.Context, text string) ([]models.Entity, error) {
	if err := a.init(); err != nil {
		return nil, err
	}

	if cached, ok := a.cacheGet("ner:" + text); ok {
		return cached.([]models.Entity), nil
	}

	doc, err := a.entityDoc(text)
	if err != nil {
		return nil, err
	}

	proseEntities := doc.Entities()
	entities := make([]models.Entity, 0, len(proseEntities))

	cursor := 0
	for _, ent := range proseEntities {
		start, end := locate(text, ent.Text, &cursor)
		entities = append(entities, models.Entity{
			Text:  text[start:end],
			Label: ent.Label,
			Start: start,
			End:   end,
		})
	}

	a.cacheSet("ner:"+text, entities)
	return entities, nil
}

func (a *ProseAnnotator) lemma(word string) string {
	if lemma := a.lemmatizer.Lemma(word); lemma != "" {
		return strings.ToLower(lemma)
	}
	return strings.ToLower(word)
}

func (a *ProseAnnotator) cacheGet(key string) (interface{}, bool) {
	if a.cache == nil {
		return nil, false
	}
	return a.cache.Get(key)
}

func (a *ProseAnnotator) cacheSet(key string, value interface{}) {
	if a.cache == nil {
		return
	}
	a.cache.Set(key, value, gocache.DefaultExpiration)
}

// locate finds the next occurrence of token at or after *cursor and
// advances the cursor past it. Token offsets remain valid indices into
// the original text even when the tokenizer normalized whitespace.
func locate(text, token string, cursor *int) (int, int) {
	idx := strings.Index(text[*cursor:], token)
	if idx < 0 {
		// The tokenizer rewrote the surface form; pin the span at the
		// cursor so offsets stay ordered and in range.
		start := *cursor
		end := start + len(token)
		if end > len(text) {
			end = len(text)
		}
		*cursor = end
		return start, end
	}
	start := *cursor + idx
	end := start + len(token)
	*cursor = end
	return start, end
}
