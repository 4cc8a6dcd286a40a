// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware runs outermost first: trace id,
// access log, metrics, panic recovery, CORS, gzip, body limit, timeout.
// Unknown paths and unsupported methods both answer the JSON 404.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withRecovery,
		h.withCORS,
		withGZip,
		withBodyLimit(h.cfg.Server.BodyLimit),
	)
	if h.cfg.Server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.Server.RequestTimeout))
	}

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	router.Get("/", h.root)
	router.Get("/metrics", h.metrics.Handler().ServeHTTP)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		if h.cfg.App.EnableDebugRoutes {
			r.Get("/debug/test-nodemailer", h.testMail)
		}

		r.Route("/auth", func(r chi.Router) {
			r.Post("/logout", h.logout)

			r.With(h.requireDatabase).Post("/register", h.register)
			r.With(h.requireDatabase).Post("/login", h.login)
			r.With(h.auth, h.requireDatabase).Get("/me", h.me)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth, h.requireDatabase)

			r.Route("/quiz", h.quizzes.routes)
			r.Route("/folders", func(r chi.Router) {
				h.folders.routes(r)
				r.Get("/{id}/quizzes", h.folderQuizzes)
			})
			r.Route("/bookmarks", h.bookmarks.routes)
			r.Route("/students", func(r chi.Router) {
				r.Post("/import", h.importStudents)
				r.Get("/export", h.exportStudents)
				h.students.routes(r)
			})
			r.Route("/student-quiz", h.studentQuizzes.routes)
		})
	})

	return router
}
