package genai

const cfgTreePromptTemplate = `You are a linguistics assistant. Derive a context-free-grammar parse tree
for the sentence below and render it as mermaid diagram code (graph TD).

Sentence: {{.Sentence}}

Respond with a single JSON object conforming to this JSON Schema, and
nothing else:

{{.Schema}}

"mermaid_code" must contain the mermaid diagram of the parse tree.
"explanation" must briefly describe the derivation.`

type CFGTreePromptTemplateData struct {
	Sentence string
	Schema   string
}

const semanticRolesPromptTemplate = `You are a linguistics assistant. Perform semantic role labeling on the
sentence below: identify each predicate and the role (Agent, Theme,
Location, Instrument, Beneficiary, Time, ...) of every argument. Also
render the predicate-argument structure as mermaid diagram code (graph TD).

Sentence: {{.Sentence}}

Respond with a single JSON object conforming to this JSON Schema, and
nothing else:

{{.Schema}}

"roles" must contain one entry per word or phrase that fills a role.
"explanation" must briefly justify the labeling.`

type SemanticRolesPromptTemplateData struct {
	Sentence string
	Schema   string
}
