package handlertools

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lingokit/lingo/internal"
	"github.com/lingokit/lingo/pkg/models"
)

var log = internal.GetLogger()

// EncodeJSON encodes data into JSON and writes it to the response writer.
func EncodeJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}

// DecodeJSON decodes a JSON request body into the provided data struct.
func DecodeJSON(r *http.Request, data interface{}) error {
	return json.NewDecoder(r.Body).Decode(&data)
}

// StatusForError maps the fault taxonomy to HTTP statuses with a pure
// lookup. Adapters tag their errors; nothing else decides statuses.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RenderError renders an error response with the status implied by the
// error's taxonomy tag.
func RenderError(w http.ResponseWriter, err error) {
	status := StatusForError(err)
	if status >= http.StatusInternalServerError {
		log.Error(err)
	}
	http.Error(w, err.Error(), status)
}

// RenderErrorWithStatus renders an error response with an explicit
// status, for transport-level failures that carry no taxonomy tag.
func RenderErrorWithStatus(w http.ResponseWriter, err error, status int) {
	if status >= http.StatusInternalServerError {
		log.Error(err)
	}
	http.Error(w, err.Error(), status)
}
