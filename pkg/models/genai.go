package models

// SemanticRole links a word or phrase to its role for a predicate. Role
// labels are an open set of linguistic role names (Agent, Theme,
// Location, ...) and are not validated against a closed enum.
type SemanticRole struct {
	Word      string `json:"word"`
	Role      string `json:"role"`
	Predicate string `json:"predicate"`
}

// AIOutcome is the generative-AI adapter's result. The adapter never
// returns an error for upstream faults: a failed call is represented
// in-band as an empty MermaidCode and Roles with the failure described
// in Explanation. Callers must check Failed rather than rely on an error.
type AIOutcome struct {
	MermaidCode string
	Roles       []SemanticRole
	Explanation string
}

// Failed reports whether the outcome carries an in-band failure.
func (o AIOutcome) Failed() bool {
	return o.MermaidCode == "" && len(o.Roles) == 0
}

// FailedAIOutcome builds the in-band failure shape from an error.
func FailedAIOutcome(err error) AIOutcome {
	return AIOutcome{Explanation: "AI request failed: " + err.Error()}
}

type CFGTreeResponse struct {
	Sentence    string `json:"sentence"`
	MermaidCode string `json:"mermaid_code"`
	Explanation string `json:"explanation"`
}

type SemanticResponse struct {
	Sentence    string         `json:"sentence"`
	MermaidCode string         `json:"mermaid_code"`
	Roles       []SemanticRole `json:"roles"`
	Explanation string         `json:"explanation"`
}
