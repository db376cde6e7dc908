package api

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeClassified routes an error through the classifier and writes the
// resulting body with its status.
func writeClassified(w http.ResponseWriter, err error) {
	dto := Classify(err)
	writeJSON(w, dto.HTTPStatus, dto)
}

// decodeJSON decodes a JSON request body
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
