package comments

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mgrundel/gazette/internal/apierror"
	"github.com/mgrundel/gazette/internal/params"
	"github.com/mgrundel/gazette/internal/server"
)

// Handler provides HTTP handlers for comment endpoints.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new comment Handler.
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

// ListForArticle handles GET /articles/{article_id}/comments.
func (h *Handler) ListForArticle(w http.ResponseWriter, r *http.Request) {
	if err := params.CheckAllowed(r.URL.Query(), "limit", "p"); err != nil {
		server.Error(w, err)
		return
	}
	page, err := params.ParsePage(r.URL.Query())
	if err != nil {
		server.Error(w, err)
		return
	}

	cmts, err := h.service.ListForArticle(r.Context(), chi.URLParam(r, "article_id"), page)
	if err != nil {
		server.Error(w, err)
		return
	}

	server.JSON(w, http.StatusOK, map[string]any{"comments": cmts})
}

// CreateForArticle handles POST /articles/{article_id}/comments.
func (h *Handler) CreateForArticle(w http.ResponseWriter, r *http.Request) {
	var in NewCommentInput
	if err := server.DecodeBody(w, r, &in); err != nil {
		server.Error(w, err)
		return
	}
	if err := h.validate.Struct(in); err != nil {
		server.Error(w, apierror.ErrInvalidBody)
		return
	}

	cmt, err := h.service.CreateForArticle(r.Context(), chi.URLParam(r, "article_id"), in)
	if err != nil {
		server.Error(w, err)
		return
	}

	server.JSON(w, http.StatusCreated, map[string]any{"comment": cmt})
}

// Get handles GET /comments/{comment_id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	cmt, err := h.service.Get(r.Context(), chi.URLParam(r, "comment_id"))
	if err != nil {
		server.Error(w, err)
		return
	}

	server.JSON(w, http.StatusOK, map[string]any{"comment": cmt})
}

// Patch handles PATCH /comments/{comment_id}.
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

	cmt, err := h.service.IncrementVotes(r.Context(), chi.URLParam(r, "comment_id"), delta)
	if err != nil {
		server.Error(w, err)
		return
	}

	server.JSON(w, http.StatusOK, map[string]any{"comment": cmt})
}

// Delete handles DELETE /comments/{comment_id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "comment_id")); err != nil {
		server.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
