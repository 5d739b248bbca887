package models

// TranslationResult is the reshaped reply of the external translation
// service. Confidence is 0.0 when the service omits one; it means
// "unknown", not measured low confidence.
type TranslationResult struct {
	OriginalText   string  `json:"original_text"`
	TranslatedText string  `json:"translated_text"`
	SourceLanguage string  `json:"source_language"`
	TargetLanguage string  `json:"target_language"`
	Confidence     float64 `json:"confidence"`
}

type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}
