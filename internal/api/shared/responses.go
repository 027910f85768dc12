// Package shared holds the response and context helpers used by every
// route handler.
package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// MessageResponse is the `{"message": ...}` body used by error
// responses and by a few resource routes.
type MessageResponse struct {
	Message string `json:"message"`
}

// EnvelopeResponse is the `{"message", "json"}` body the customer and
// team routes wrap their documents in. The key really is named "json".
type EnvelopeResponse struct {
	Message string      `json:"message"`
	JSON    interface{} `json:"json"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithMessage writes a `{"message": ...}` JSON response with the
// given status code.
func RespondWithMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, MessageResponse{Message: message})
}

// RespondWithEnvelope writes a `{"message", "json"}` JSON response with
// the given status code.
func RespondWithEnvelope(w http.ResponseWriter, r *http.Request, status int, message string, payload interface{}) {
	RespondWithJSON(w, r, status, EnvelopeResponse{Message: message, JSON: payload})
}

// RespondWithText writes a plain text response with the given status
// code. The signup and login endpoints answer in text.
func RespondWithText(w http.ResponseWriter, r *http.Request, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(text)); err != nil {
		slog.Error("failed to write text response", "error", err)
	}
}
