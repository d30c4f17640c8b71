package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// ArticleHandler defines the article endpoints, allowing the router to be
// decoupled from the concrete handler implementation.
type ArticleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Patch(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// CommentHandler defines the comment endpoints, both nested under an
// article and addressed directly by comment id.
type CommentHandler interface {
	ListForArticle(w http.ResponseWriter, r *http.Request)
	CreateForArticle(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Patch(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// TopicHandler defines the topic endpoints.
type TopicHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

// UserHandler defines the user endpoints.
type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

// Dependencies holds all injectable dependencies used by route handlers.
type Dependencies struct {
	Articles  ArticleHandler
	Comments  CommentHandler
	Topics    TopicHandler
	Users     UserHandler
	Endpoints Endpoints
	DevMode   bool
}

// NewRouter builds the chi router with the full route tree and middleware
// stack.
func NewRouter(deps Dependencies) chi.Router {
	r := chi.NewRouter()

	// --- Global middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(deps.DevMode))
	r.Use(requireJSON)

	r.Get("/healthcheck", healthcheckHandler)
	r.Get("/", endpointsHandler(deps.Endpoints))

	r.Route("/topics", func(r chi.Router) {
		r.Get("/", deps.Topics.List)
		r.Post("/", deps.Topics.Create)
	})

	r.Route("/articles", func(r chi.Router) {
		r.Get("/", deps.Articles.List)
		r.Post("/", deps.Articles.Create)
		r.Get("/{article_id}", deps.Articles.Get)
		r.Patch("/{article_id}", deps.Articles.Patch)
		r.Delete("/{article_id}", deps.Articles.Delete)
		r.Get("/{article_id}/comments", deps.Comments.ListForArticle)
		r.Post("/{article_id}/comments", deps.Comments.CreateForArticle)
	})

	r.Route("/comments", func(r chi.Router) {
		r.Get("/{comment_id}", deps.Comments.Get)
		r.Patch("/{comment_id}", deps.Comments.Patch)
		r.Delete("/{comment_id}", deps.Comments.Delete)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", deps.Users.List)
		r.Get("/{username}", deps.Users.Get)
	})

	return r
}

// corsMiddleware returns a CORS middleware configured for the application.
// In dev mode local frontend origins are allowed; in production only
// same-origin requests are permitted by default.
func corsMiddleware(devMode bool) func(http.Handler) http.Handler {
	var allowedOrigins []string
	if devMode {
		allowedOrigins = []string{"http://localhost:5173", "http://localhost:9090"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	})
}

// healthcheckHandler reports that the server is accepting requests.
func healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"msg": "server online"})
}

// endpointsHandler serves the static API descriptor at the root path.
func endpointsHandler(endpoints Endpoints) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		JSON(w, http.StatusOK, map[string]any{"endpoints": endpoints})
	}
}
