// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/popayan-tourism/internal/app"
	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/internal/service"
	"github.com/MKhiriev/popayan-tourism/internal/utils"
	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) listCulturalPlaces(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	query := r.URL.Query()
	page := service.ParsePage(query.Get("page"))
	perPage := service.ParsePerPage(query.Get("per_page"))

	places, err := h.services.CulturalPlaceService.List(r.Context(), actor, page, perPage)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewCulturalPlaceListResponse(places, actor.IsSuperuser), http.StatusOK)
}

func (h *Handler) getCulturalPlace(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := pathTarget(w, r)
	if !ok {
		return
	}

	place, err := h.services.CulturalPlaceService.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewCulturalPlaceResponse(place, actor.IsSuperuser), http.StatusOK)
}

func (h *Handler) createCulturalPlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := actorFromRequest(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	var req models.CulturalPlaceRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidBody)
		return
	}

	place, err := h.services.CulturalPlaceService.Create(r.Context(), actor, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Stringer("place_id", place.ID).Msg("cultural place created")
	writePlaceDetail(w, app.MsgPlaceCreated, place, actor, http.StatusCreated)
}

func (h *Handler) updateCulturalPlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, id, ok := pathTarget(w, r)
	if !ok {
		return
	}

	var req models.CulturalPlaceRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidBody)
		return
	}

	place, err := h.services.CulturalPlaceService.Update(r.Context(), actor, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writePlaceDetail(w, app.MsgPlaceUpdated, place, actor, http.StatusOK)
}

func (h *Handler) deleteCulturalPlace(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := pathTarget(w, r)
	if !ok {
		return
	}

	if err := h.services.CulturalPlaceService.Delete(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Stringer("place_id", id).Msg("cultural place deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deactivateCulturalPlace(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := pathTarget(w, r)
	if !ok {
		return
	}

	place, err := h.services.CulturalPlaceService.Deactivate(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writePlaceDetail(w, app.MsgPlaceDeactivated, place, actor, http.StatusOK)
}

// pathTarget resolves the actor and the {id} path parameter, answering the
// request itself when either is missing.
func pathTarget(w http.ResponseWriter, r *http.Request) (models.User, uuid.UUID, bool) {
	actor, ok := actorFromRequest(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return models.User{}, uuid.Nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, ErrInvalidPathID)
		return models.User{}, uuid.Nil, false
	}

	return actor, id, true
}

func writePlaceDetail(w http.ResponseWriter, detail string, place models.CulturalPlace, actor models.User, status int) {
	utils.WriteJSON(w, models.CulturalPlaceDetailResponse{
		Detail: detail,
		Place:  models.NewCulturalPlaceResponse(place, actor.IsSuperuser),
	}, status)
}
