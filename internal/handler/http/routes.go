// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Get("/version/", h.getServerVersion)
		r.Get("/users/{id}", h.getUser)
		r.Get("/credits/{identity}", h.getCredits)

		// signed operations
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/users", h.createUser)
			r.Delete("/users/{id}", h.removeUser)
			r.Post("/transfers", h.transfer)
		})
	})

	router.MethodNotAllowed(methodNotFound)

	return router
}
