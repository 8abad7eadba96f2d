// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/internal/service"
	"github.com/MKhiriev/popayan-tourism/internal/utils"
	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/google/uuid"
)

func (h *Handler) listActivityCategories(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromRequest(r); !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	categories, err := h.services.LeisureActivityService.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewActivityCategoryListResponse(categories), http.StatusOK)
}

// listLeisureActivities accepts an optional ?category=<uuid> filter next to
// the usual page and per_page parameters.
func (h *Handler) listLeisureActivities(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	query := r.URL.Query()

	var categoryID *uuid.UUID
	if raw := query.Get("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("category", raw).Msg("invalid category filter")
			writeError(w, r, ErrInvalidQuery)
			return
		}
		categoryID = &id
	}

	page := service.ParsePage(query.Get("page"))
	perPage := service.ParsePerPage(query.Get("per_page"))

	activities, err := h.services.LeisureActivityService.List(r.Context(), actor, categoryID, page, perPage)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewLeisureActivityListResponse(activities, actor.IsSuperuser), http.StatusOK)
}

func (h *Handler) getLeisureActivity(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := pathTarget(w, r)
	if !ok {
		return
	}

	activity, err := h.services.LeisureActivityService.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewLeisureActivityResponse(activity, actor.IsSuperuser), http.StatusOK)
}

func (h *Handler) upsertActivityPreference(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := actorFromRequest(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	var req models.ActivityPreferenceRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidBody)
		return
	}

	pref, created, err := h.services.LeisureActivityService.UpsertPreference(r.Context(), actor, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, models.NewActivityPreferenceResponse(pref), status)
}

func (h *Handler) listActivityPreferences(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	prefs, err := h.services.LeisureActivityService.ListPreferences(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewActivityPreferenceListResponse(prefs), http.StatusOK)
}
