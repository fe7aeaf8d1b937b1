package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// RouterOptions configures the HTTP router
type RouterOptions struct {
	// AllowedOrigins lists CORS origins; empty allows any
	AllowedOrigins []string
	// Events serves the SSE stream, if set
	Events http.Handler
}

// NewRouter wires every route and the middleware chain
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(Logger(h.logger))

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/health", h.Health)

	router.Route("/api", func(r chi.Router) {
		r.Get("/state", h.GetState)
		r.Delete("/state", h.ResetState)
		r.Get("/search", h.Search)
		r.Get("/recipes/{id}", h.LoadRecipe)

		r.Route("/recipe", func(r chi.Router) {
			r.Get("/", h.CurrentRecipe)
			r.Post("/servings", h.UpdateServings)
			r.Post("/list", h.AddRecipeToList)
			r.Post("/like", h.ToggleLike)
		})

		r.Route("/list", func(r chi.Router) {
			r.Get("/", h.ListItems)
			r.Post("/", h.AddItem)
			r.Patch("/{id}", h.UpdateItem)
			r.Delete("/{id}", h.DeleteItem)
		})

		r.Route("/likes", func(r chi.Router) {
			r.Get("/", h.ListLikes)
			r.Post("/", h.AddLike)
			r.Delete("/{id}", h.DeleteLike)
		})

		r.Get("/export/{format}", h.Export)
		r.Post("/import/{format}", h.Import)
	})

	if opts.Events != nil {
		router.Method(http.MethodGet, "/events", opts.Events)
	}

	return router
}

// Logger logs one line per request
func Logger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", chimiddleware.GetReqID(r.Context())),
				zap.String("remote_addr", r.RemoteAddr),
			)
		})
	}
}
