// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/popayan-tourism/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.settings.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.settings.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/register", h.register)
		r.Post("/request-reset-password", h.requestPasswordReset)
		r.Get("/reset-password/{uid}/{token}", h.checkPasswordReset)
		r.Post("/reset-password/{uid}/{token}", h.confirmPasswordReset)
		r.Get("/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/cultural_place", h.listCulturalPlaces)
		r.Post("/cultural_place", h.createCulturalPlace)
		r.Get("/cultural_place/{id}", h.getCulturalPlace)
		r.Put("/cultural_place/{id}", h.updateCulturalPlace)
		r.Delete("/cultural_place/{id}", h.deleteCulturalPlace)
		r.Patch("/cultural_place/{id}/deactivate", h.deactivateCulturalPlace)

		r.Post("/user_place_preference", h.upsertPreference)
		r.Get("/user_place_preferences", h.listPreferences)

		r.Get("/activity_category", h.listActivityCategories)
		r.Get("/leisure_activity", h.listLeisureActivities)
		r.Get("/leisure_activity/{id}", h.getLeisureActivity)
		r.Post("/user_activity_preference", h.upsertActivityPreference)
		r.Get("/user_activity_preferences", h.listActivityPreferences)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrorMessage(w, http.StatusNotFound, app.MsgNotFound)
	})

	return router
}
