package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mgrundel/gazette/internal/server"
)

// Handler provides HTTP handlers for user endpoints.
type Handler struct {
	store *Store
}

// NewHandler creates a new user Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// List handles GET /users.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.List(r.Context())
	if err != nil {
		server.Error(w, err)
		return
	}

	server.JSON(w, http.StatusOK, map[string]any{"users": users})
}

// Get handles GET /users/{username}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		server.Error(w, err)
		return
	}

	server.JSON(w, http.StatusOK, map[string]any{"user": user})
}
