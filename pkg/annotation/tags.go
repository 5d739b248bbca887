package annotation

import "strings"

// universalTag maps a Penn Treebank tag to its coarse universal
// part-of-speech category.
func universalTag(ptb string) string {
	switch ptb {
	case "NN", "NNS":
		return "NOUN"
	case "NNP", "NNPS":
		return "PROPN"
	case "VB", "VBD", "VBG", "VBN", "VBP", "VBZ", "MD":
		return "VERB"
	case "JJ", "JJR", "JJS":
		return "ADJ"
	case "RB", "RBR", "RBS", "WRB":
		return "ADV"
	case "DT", "PDT", "WDT":
		return "DET"
	case "IN":
		return "ADP"
	case "PRP", "PRP$", "WP", "WP$", "EX":
		return "PRON"
	case "CC":
		return "CCONJ"
	case "CD":
		return "NUM"
	case "TO", "RP", "POS":
		return "PRT"
	case "UH":
		return "INTJ"
	case "FW", "LS", "SYM":
		return "X"
	}
	if len(ptb) > 0 && strings.ContainsAny(ptb[:1], ".,:()\"'`$#") {
		return "PUNCT"
	}
	return "X"
}
