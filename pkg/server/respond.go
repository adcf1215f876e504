package server

import (
	"encoding/json"
	"net/http"
)

// messageResponse is the body shape of every non-payload response.
type messageResponse struct {
	Message string `json:"message"`
}

// respondJSON writes data as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// respondMessage writes a single-message JSON body.
func respondMessage(w http.ResponseWriter, code int, msg string) {
	respondJSON(w, code, messageResponse{Message: msg})
}
