package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Get("/version", h.getServerVersion)
		r.With(withGZip).Get("/file/{name}", h.download)
	})

	// routes guarded by the shared secret
	router.Group(func(r chi.Router) {
		r.Use(h.apiKey)
		r.Post("/upload", h.upload)
	})

	return router
}
