package models

// Token is a single token of the input text with its grammatical
// annotations. Start and End are byte offsets into the original text.
type Token struct {
	Text  string `json:"text"`
	POS   string `json:"pos"`
	Tag   string `json:"tag"`
	Lemma string `json:"lemma"`
	Dep   string `json:"dep"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Entity is a named-entity span. Spans are non-overlapping and Text
// equals the input substring at [Start, End).
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// DependencyEdge is one node of the dependency tree. Head holds the text
// of the head token; the root token's Head equals its own text.
type DependencyEdge struct {
	Text     string   `json:"text"`
	Dep      string   `json:"dep"`
	Head     string   `json:"head"`
	POS      string   `json:"pos"`
	Children []string `json:"children"`
}

type AnalysisResponse struct {
	Tokens   []Token  `json:"tokens"`
	Entities []Entity `json:"entities"`
}

type POSResponse struct {
	Tokens []Token `json:"tokens"`
}

type NERResponse struct {
	Entities []Entity `json:"entities"`
}

type DependencyResponse struct {
	Sentence     string           `json:"sentence"`
	Diagram      string           `json:"diagram"`
	Dependencies []DependencyEdge `json:"dependencies"`
}

type ConstituencyResponse struct {
	Sentence string `json:"sentence"`
	Diagram  string `json:"diagram"`
	TextTree string `json:"text_tree"`
}

// TextRequest is the request body shared by the analysis routes.
type TextRequest struct {
	Text string `json:"text" validate:"required"`
}
