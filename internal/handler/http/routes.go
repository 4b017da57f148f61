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
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind the auth middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/records/{collection}", func(r chi.Router) {
			r.Post("/", h.createRecord)
			r.Get("/", h.listRecords)
			r.Get("/query", h.queryRecords)
			r.Get("/subscribe", h.subscribe)
			r.Patch("/{id}", h.updateRecord)
			r.Delete("/{id}", h.deleteRecord)
		})

		r.Post("/api/photos/presign", h.presignPhoto)
		r.Get("/api/photos/resolve", h.resolvePhoto)
	})

	return router
}
