package server

import (
	"net/http"

	"github.com/lingokit/lingo/pkg/models"
	"github.com/lingokit/lingo/pkg/server/handlertools"
)

// TranslateHandler returns a handler for POST requests to /translate.
// The adapter distinguishes caller faults (empty text, unknown code)
// from upstream faults; the status mapping follows the error's tag.
func TranslateHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TranslateRequest
		if err := handlertools.DecodeJSON(r, &req); err != nil {
			handlertools.RenderErrorWithStatus(w, err, http.StatusBadRequest)
			return
		}

		result, err := appState.Translator.Translate(r.Context(), req.Text, req.TargetLanguage)
		if err != nil {
			handlertools.RenderError(w, err)
			return
		}

		if err := handlertools.EncodeJSON(w, result); err != nil {
			handlertools.RenderErrorWithStatus(w, err, http.StatusInternalServerError)
		}
	}
}

// LanguagesHandler returns a handler for GET requests to /languages.
// The mapping served here is the same table Translate validates
// against, so the two endpoints stay consistent.
func LanguagesHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if err := handlertools.EncodeJSON(w, appState.Translator.Languages()); err != nil {
			handlertools.RenderErrorWithStatus(w, err, http.StatusInternalServerError)
		}
	}
}
