package models

// CFGParseResult is the outcome of parsing a sentence against the toy
// grammar. A grammar-coverage miss is a normal outcome: Success is false,
// Trees is empty and ErrorMessage is populated.
type CFGParseResult struct {
	Sentence     string   `json:"sentence"`
	Trees        []string `json:"trees"`
	GrammarRules string   `json:"grammar_rules"`
	Success      bool     `json:"success"`
	ErrorMessage string   `json:"error_message,omitempty"`
}
