package rest

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// envelope wraps every successful response.
type envelope struct {
	Data       any     `json:"data"`
	Success    bool    `json:"success"`
	NextCursor *string `json:"nextCursor,omitempty"`
	HasMore    *bool   `json:"hasMore,omitempty"`
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Data: data, Success: true})
}

// writePage writes a list response with cursor fields. hasMore is always
// present; nextCursor only when there is a next page.
func writePage(w http.ResponseWriter, data any, next *uuid.UUID, hasMore bool) {
	env := envelope{Data: data, Success: true, HasMore: &hasMore}
	if next != nil {
		s := next.String()
		env.NextCursor = &s
	}
	writeJSON(w, http.StatusOK, env)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
