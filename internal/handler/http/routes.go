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
		r.Post("/api-token-auth/", h.obtainToken)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/dictionaries/", h.listDictionaries)
		r.Post("/api/dictionaries/", h.createDictionary)
		r.Delete("/api/dictionaries/{id}/", h.deleteDictionary)

		r.Get("/api/words/", h.listWords)
		r.Post("/api/words/", h.createWord)
		r.Get("/api/words/{id}/", h.getWord)
		r.Put("/api/words/{id}/", h.updateWord)
		r.Delete("/api/words/{id}/", h.deleteWord)

		r.Get("/api/users/{id}", h.getUser)
		r.Get("/api/users/{id}/", h.getUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
