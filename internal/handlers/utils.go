package handlers

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// NotFound answers unmatched POST paths with 404; anything else unmatched
// falls through to the method-not-allowed response, mirroring the original
// method-first dispatch.
func NotFound(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Not Found"})
		return
	}
	MethodNotAllowed(w, r)
}

// MethodNotAllowed answers requests whose method has no handler.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, MessageResponse{Message: "Method Not Allowed"})
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
