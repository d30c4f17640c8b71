// Package server provides the HTTP server, router, middleware, and JSON
// response helpers for the Gazette API.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mgrundel/gazette/internal/apierror"
)

// errorResponse is the error body shape: {"msg": "..."}.
type errorResponse struct {
	Msg string `json:"msg"`
}

// JSON writes a JSON response with the given status code. Callers pass
// the full body, including the resource wrapper key (e.g.
// map{"articles": ...}).
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		// At this point headers are already sent, so we can only log.
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// Error maps an error onto its API response. Errors from the apierror
// taxonomy carry their own status and message; anything else is logged
// and surfaced as a generic 500 so storage-engine details never leak.
func Error(w http.ResponseWriter, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		JSON(w, apiErr.Status, errorResponse{Msg: apiErr.Msg})
		return
	}

	slog.Error("unhandled error", "error", err)
	JSON(w, http.StatusInternalServerError, errorResponse{Msg: "internal server error"})
}
