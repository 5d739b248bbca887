package testutils

// TestSentences is a small corpus exercising the annotation pipeline:
// plain declaratives, entities, abbreviations, and punctuation.
var TestSentences = []string{
	"The quick brown fox jumped over the lazy dog.",
	"Apple is buying a startup in the U.K.",
	"The cat sat on the mat.",
	"John saw the man with the telescope.",
	"London is the capital of the United Kingdom.",
	"She read a book, and then she slept.",
	"Is this a question?",
	"Go!",
}
