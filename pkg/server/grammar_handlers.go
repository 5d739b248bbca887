package server

import (
	"net/http"

	"github.com/lingokit/lingo/pkg/models"
	"github.com/lingokit/lingo/pkg/server/handlertools"
)

// CFGHandler returns a handler for POST requests to /cfg. A
// grammar-coverage miss is a normal response with success=false; it is
// never an error status.
func CFGHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeTextRequest(w, r)
		if !ok {
			return
		}

		result := appState.Grammar.Parse(req.Text)
		if err := handlertools.EncodeJSON(w, result); err != nil {
			handlertools.RenderErrorWithStatus(w, err, http.StatusInternalServerError)
		}
	}
}
