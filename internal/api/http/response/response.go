// Package response writes JSON bodies for the REST API.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/dtroode/gocalendar/internal/apperrors"
)

// ErrorBody is the stable error schema returned by every endpoint.
type ErrorBody struct {
	Error   apperrors.Kind `json:"error"`
	Message string         `json:"message"`
}

// MessageBody is returned by endpoints that only confirm an action.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes body with the given status code.
func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Error writes err using its kind and HTTP code.
func Error(w http.ResponseWriter, err *apperrors.APIError) {
	JSON(w, err.HTTPCode, ErrorBody{Error: err.Kind, Message: err.Message})
}
