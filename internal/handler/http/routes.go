package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(withCORS, h.withTraceID, h.withLogging, h.withMetrics, h.withRecovery)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Method(http.MethodGet, "/metrics", h.metrics.handler())
	router.Get("/uploads/{name}", h.serveImage)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Get("/test", h.testConnection)
		})

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", h.listLocations)
			r.Get("/{id}", h.getLocation)

			// routes with authorization
			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.createLocation)
				r.Post("/{id}/comments", h.addComment)
				r.With(h.limitUploadSize).Post("/{id}/images", h.addImages)
			})
		})
	})

	return router
}
