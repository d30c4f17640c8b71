package articles

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mgrundel/gazette/internal/apierror"
	"github.com/mgrundel/gazette/internal/server"
)

// Handler provides HTTP handlers for article endpoints.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new article Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// votePatch is the body of a vote-increment request. The raw message
// distinguishes a missing or null field (invalid body) from a present
// but non-integer one (bad request).
type votePatch struct {
	IncVotes json.RawMessage `json:"inc_votes"`
}

// delta validates the patch body and returns the vote delta.
func (p votePatch) delta() (int, error) {
	if len(p.IncVotes) == 0 || string(p.IncVotes) == "null" {
		return 0, apierror.ErrInvalidBody
	}
	var n json.Number
	if err := json.Unmarshal(p.IncVotes, &n); err != nil {
		return 0, apierror.ErrBadRequest
	}
	delta, err := n.Int64()
	if err != nil {
		return 0, apierror.ErrBadRequest
	}
	return int(delta), nil
}

// List handles GET /articles.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	p, err := ParseListParams(r.URL.Query())
	if err != nil {
		server.Error(w, err)
		return
	}

	arts, total, err := h.service.List(r.Context(), p)
	if err != nil {
		server.Error(w, err)
		return
	}

	server.JSON(w, http.StatusOK, map[string]any{
		"articles":    arts,
		"total_count": total,
	})
}

// Get handles GET /articles/{article_id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	art, err := h.service.Get(r.Context(), chi.URLParam(r, "article_id"))
	if err != nil {
		server.Error(w, err)
		return
	}

	server.JSON(w, http.StatusOK, map[string]any{"article": art})
}

// Create handles POST /articles.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in NewArticleInput
	if err := server.DecodeBody(w, r, &in); err != nil {
		server.Error(w, err)
		return
	}
	if err := h.validate.Struct(in); err != nil {
		server.Error(w, apierror.ErrInvalidBody)
		return
	}

	art, err := h.service.Create(r.Context(), in)
	if err != nil {
		server.Error(w, err)
		return
	}

	server.JSON(w, http.StatusCreated, map[string]any{"article": art})
}

// Patch handles PATCH /articles/{article_id}.
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	var patch votePatch
	if err := server.DecodeBody(w, r, &patch); err != nil {
		server.Error(w, err)
		return
	}
	delta, err := patch.delta()
	if err != nil {
		server.Error(w, err)
		return
	}

	art, err := h.service.IncrementVotes(r.Context(), chi.URLParam(r, "article_id"), delta)
	if err != nil {
		server.Error(w, err)
		return
	}

	server.JSON(w, http.StatusOK, map[string]any{"article": art})
}

// Delete handles DELETE /articles/{article_id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "article_id")); err != nil {
		server.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
