package server

import (
	"net/http"

	"github.com/lingokit/lingo/pkg/models"
	"github.com/lingokit/lingo/pkg/server/handlertools"
)

// CFGGeminiHandler returns a handler for POST requests to /cfg-gemini.
// AI faults never become error statuses: a failed upstream call still
// answers 200 with an empty diagram and the failure in explanation.
func CFGGeminiHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeTextRequest(w, r)
		if !ok {
			return
		}

		outcome := appState.AI.CFGTree(r.Context(), req.Text)

		resp := models.CFGTreeResponse{
			Sentence:    req.Text,
			MermaidCode: outcome.MermaidCode,
			Explanation: outcome.Explanation,
		}
		if err := handlertools.EncodeJSON(w, resp); err != nil {
			handlertools.RenderErrorWithStatus(w, err, http.StatusInternalServerError)
		}
	}
}

// SemanticHandler returns a handler for POST requests to /semantic,
// with the same in-band failure policy as /cfg-gemini.
func SemanticHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeTextRequest(w, r)
		if !ok {
			return
		}

		outcome := appState.AI.SemanticRoles(r.Context(), req.Text)

		roles := outcome.Roles
		if roles == nil {
			roles = []models.SemanticRole{}
		}
		resp := models.SemanticResponse{
			Sentence:    req.Text,
			MermaidCode: outcome.MermaidCode,
			Roles:       roles,
			Explanation: outcome.Explanation,
		}
		if err := handlertools.EncodeJSON(w, resp); err != nil {
			handlertools.RenderErrorWithStatus(w, err, http.StatusInternalServerError)
		}
	}
}
