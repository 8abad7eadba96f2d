// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/popayan-tourism/internal/app"
	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/internal/service"
	"github.com/MKhiriev/popayan-tourism/internal/utils"
	"github.com/MKhiriev/popayan-tourism/internal/validators"
	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PasswordResetRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidBody)
		return
	}

	if err := h.services.AuthService.RequestPasswordReset(r.Context(), req.Email, h.resetBaseURL(r)); err != nil {
		writeResetError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgResetLinkSent}, http.StatusOK)
}

func (h *Handler) checkPasswordReset(w http.ResponseWriter, r *http.Request) {
	uid, token := chi.URLParam(r, "uid"), chi.URLParam(r, "token")

	if _, err := h.services.AuthService.CheckPasswordResetToken(r.Context(), uid, token); err != nil {
		writeResetError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ResetLinkResponse{UID: uid, Token: token}, http.StatusOK)
}

func (h *Handler) confirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	uid, token := chi.URLParam(r, "uid"), chi.URLParam(r, "token")

	var req models.PasswordResetConfirmRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidBody)
		return
	}

	if err := h.services.AuthService.ConsumePasswordReset(r.Context(), uid, token, req.NewPassword); err != nil {
		writeResetError(w, r, err)
		return
	}

	log.Info().Msg("password has been reset")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgPasswordHasBeenReset}, http.StatusOK)
}

// resetBaseURL prefers the configured public URL over the request host.
func (h *Handler) resetBaseURL(r *http.Request) string {
	if h.settings.ResetBaseURL != "" {
		return h.settings.ResetBaseURL
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// writeResetError answers the reset endpoints with a flat {"error"} body.
// On the link routes an unknown uid reads as an invalid link.
func writeResetError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *validators.Error

	switch {
	case errors.As(err, &vErr):
		writeErrorMessage(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, service.ErrActorNotFound) && chi.URLParam(r, "uid") != "":
		writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidResetLink)
	default:
		writeError(w, r, err)
	}
}
