package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// public configuration, never proxied
	router.Get("/api/env", h.getEnv)
	router.Get("/api/health", h.getHealth)

	// everything else under /api goes to the backend
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		router.Method(method, "/api/*", h.proxy)
	}

	// server-rendered pages
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Use(h.withBootstrap)

		r.Get("/", h.homePage)
		r.Post("/", h.registerWebhook)
		r.Get("/notices", h.noticesPage)
	})

	router.Get("/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
