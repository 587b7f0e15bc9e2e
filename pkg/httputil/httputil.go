// Package httputil centralizes JSON encoding and domain error translation so
// handlers stay thin and error envelopes stay consistent.
package httputil

import (
	"encoding/json"
	"net/http"

	"belegcheck/pkg/domerr"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into its HTTP envelope.
func WriteError(w http.ResponseWriter, err error) {
	code := domerr.CodeOf(err)
	WriteJSON(w, domerr.HTTPStatus(code), ErrorResponse{
		Error:   string(code),
		Message: err.Error(),
	})
}

// Decode parses the request body into T. On failure it writes a 400 envelope
// and returns ok=false; the handler should simply return.
func Decode[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		WriteError(w, domerr.Wrap(domerr.CodeInvalidInput, "malformed request body", err))
		return v, false
	}
	return v, true
}
