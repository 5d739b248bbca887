package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/lingokit/lingo/pkg/models"
	"github.com/lingokit/lingo/pkg/server/handlertools"
)

var validate = validator.New()

// decodeTextRequest decodes and validates the shared {text} body. It
// renders the error itself and returns false when the request is bad.
func decodeTextRequest(w http.ResponseWriter, r *http.Request) (models.TextRequest, bool) {
	var req models.TextRequest
	if err := handlertools.DecodeJSON(r, &req); err != nil {
		handlertools.RenderErrorWithStatus(w, err, http.StatusBadRequest)
		return req, false
	}
	if err := validate.Struct(req); err != nil {
		handlertools.RenderError(w, models.NewValidationError("text is required"))
		return req, false
	}
	return req, true
}

// AnalyzeHandler returns a handler for POST requests to /analyze.
// Tokens come from the accuracy-oriented pipeline and entities from the
// lightweight one; their offsets are not guaranteed to align.
func AnalyzeHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeTextRequest(w, r)
		if !ok {
			return
		}

		tokens, err := appState.Annotator.POS(r.Context(), req.Text)
		if err != nil {
			handlertools.RenderError(w, err)
			return
		}
		entities, err := appState.Annotator.NER(r.Context(), req.Text)
		if err != nil {
			handlertools.RenderError(w, err)
			return
		}

		resp := models.AnalysisResponse{Tokens: tokens, Entities: entities}
		if err := handlertools.EncodeJSON(w, resp); err != nil {
			handlertools.RenderErrorWithStatus(w, err, http.StatusInternalServerError)
		}
	}
}

// POSHandler returns a handler for POST requests to /pos
func POSHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeTextRequest(w, r)
		if !ok {
			return
		}

		tokens, err := appState.Annotator.POS(r.Context(), req.Text)
		if err != nil {
			handlertools.RenderError(w, err)
			return
		}

		if err := handlertools.EncodeJSON(w, models.POSResponse{Tokens: tokens}); err != nil {
			handlertools.RenderErrorWithStatus(w, err, http.StatusInternalServerError)
		}
	}
}

// NERHandler returns a handler for POST requests to /ner
func NERHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeTextRequest(w, r)
		if !ok {
			return
		}

		entities, err := appState.Annotator.NER(r.Context(), req.Text)
		if err != nil {
			handlertools.RenderError(w, err)
			return
		}

		if err := handlertools.EncodeJSON(w, models.NERResponse{Entities: entities}); err != nil {
			handlertools.RenderErrorWithStatus(w, err, http.StatusInternalServerError)
		}
	}
}

// DependencyHandler returns a handler for POST requests to /dependency
func DependencyHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeTextRequest(w, r)
		if !ok {
			return
		}

		diagram, edges, err := appState.Annotator.Dependency(r.Context(), req.Text)
		if err != nil {
			handlertools.RenderError(w, err)
			return
		}

		resp := models.DependencyResponse{
			Sentence:     req.Text,
			Diagram:      diagram,
			Dependencies: edges,
		}
		if err := handlertools.EncodeJSON(w, resp); err != nil {
			handlertools.RenderErrorWithStatus(w, err, http.StatusInternalServerError)
		}
	}
}

// ConstituencyHandler returns a handler for POST requests to
// /constituency. The tree is a heuristic approximation, not a true
// constituency parse.
func ConstituencyHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeTextRequest(w, r)
		if !ok {
			return
		}

		diagram, treeText, err := appState.Annotator.Constituency(r.Context(), req.Text)
		if err != nil {
			handlertools.RenderError(w, err)
			return
		}

		resp := models.ConstituencyResponse{
			Sentence: req.Text,
			Diagram:  diagram,
			TextTree: treeText,
		}
		if err := handlertools.EncodeJSON(w, resp); err != nil {
			handlertools.RenderErrorWithStatus(w, err, http.StatusInternalServerError)
		}
	}
}
