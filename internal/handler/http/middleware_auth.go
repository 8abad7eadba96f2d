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
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization" header, resolves it via
// [service.AuthService.VerifyToken] and on success stores the actor in the
// request context with [utils.WithActor].
//
// Every failure is answered with 401 Unauthorized:
//   - no header: "authentication credentials were not provided";
//   - an expired token: "token is expired";
//   - anything else (bad scheme, bad signature, deleted user): "token is
//     expired or invalid".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			writeErrorMessage(w, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid)
			return
		}

		result := h.services.AuthService.VerifyToken(r.Context(), tokenString)
		if !result.Authenticated() {
			log.Info().Stringer("reason", result.Reason).Msg("authentication failed")
			if result.Reason == service.AuthExpired {
				writeErrorMessage(w, http.StatusUnauthorized, app.MsgTokenIsExpired)
				return
			}
			writeErrorMessage(w, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithActor(r.Context(), result.User)))
	})
}

// actorFromRequest returns the user stored by the auth middleware.
func actorFromRequest(r *http.Request) (models.User, bool) {
	return utils.GetActorFromContext(r.Context())
}
