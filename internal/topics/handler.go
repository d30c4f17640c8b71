package topics

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mgrundel/gazette/internal/apierror"
	"github.com/mgrundel/gazette/internal/server"
)

// Handler provides HTTP handlers for topic endpoints.
type Handler struct {
	store    *Store
	validate *validator.Validate
}

// NewHandler creates a new topic Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// List handles GET /topics.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.store.List(r.Context())
	if err != nil {
		server.Error(w, err)
		return
	}

	server.JSON(w, http.StatusOK, map[string]any{"topics": topics})
}

// Create handles POST /topics.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in NewTopicInput
	if err := server.DecodeBody(w, r, &in); err != nil {
		server.Error(w, err)
		return
	}
	if err := h.validate.Struct(in); err != nil {
		server.Error(w, apierror.ErrInvalidBody)
		return
	}

	topic, err := h.store.Insert(r.Context(), in)
	if err != nil {
		server.Error(w, err)
		return
	}

	server.JSON(w, http.StatusCreated, map[string]any{"topic": topic})
}
