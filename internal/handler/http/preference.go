// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/internal/service"
	"github.com/MKhiriev/popayan-tourism/internal/utils"
	"github.com/MKhiriev/popayan-tourism/models"
)

// upsertPreference answers 201 when the rating is new and 200 when an
// existing one was replaced.
func (h *Handler) upsertPreference(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := actorFromRequest(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	var req models.PreferenceRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidBody)
		return
	}

	pref, created, err := h.services.PreferenceService.Upsert(r.Context(), actor, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, models.NewPreferenceResponse(pref), status)
}

func (h *Handler) listPreferences(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	prefs, err := h.services.PreferenceService.ListForActor(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewPreferenceListResponse(prefs), http.StatusOK)
}
