package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. The session gate wraps the whole privileged
// namespace, so no admin handler can run — or cause a side effect — before
// the token check has passed.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/offers", h.listPublicOffers)
	})

	// privileged API routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Route("/api/admin", func(r chi.Router) {
			r.Get("/offers", h.listOffers)
			r.Post("/offers", h.createOffer)
			r.Get("/offers/{id}", h.getOffer)
			r.Put("/offers/{id}", h.updateOffer)
			r.Delete("/offers/{id}", h.deleteOffer)
			r.Patch("/offers/{id}/toggle", h.toggleOffer)

			r.Post("/upload/signed-url", h.createUploadGrant)
		})
	})

	// interactive administrator pages, rendered by an external collaborator
	if h.adminPages != nil {
		router.Handle("/admin", h.authPage(h.adminPages))
		router.Handle("/admin/*", h.authPage(h.adminPages))
	}

	return router
}
