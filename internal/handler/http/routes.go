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
	router.Use(withGZip)
	router.Use(h.withSession)

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Post("/logout", h.logout)

			// routes requiring an authenticated session
			r.Group(func(r chi.Router) {
				r.Use(h.requireAuth)
				r.Get("/check", h.check)
			})
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.listPosts)

			r.Group(func(r chi.Router) {
				r.Use(h.requireAuth)
				r.Post("/", h.createPost)
			})

			r.Route("/{postID}", func(r chi.Router) {
				r.Use(h.withPost)
				r.Get("/", h.getPost)

				// mutations require an authenticated session owning the post
				r.Group(func(r chi.Router) {
					r.Use(h.requireAuth)
					r.Use(h.checkPostOwner)
					r.Patch("/", h.updatePost)
					r.Delete("/", h.deletePost)
				})
			})
		})

		r.Get("/version", h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
