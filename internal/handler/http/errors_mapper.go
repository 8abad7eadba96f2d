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
)

var errorStatusMap = map[error]int{
	service.ErrValidation:          http.StatusBadRequest,
	service.ErrForbidden:           http.StatusForbidden,
	service.ErrNotFound:            http.StatusNotFound,
	service.ErrAlreadyDeactivated:  http.StatusBadRequest,
	service.ErrUnauthenticated:     http.StatusUnauthorized,
	service.ErrInvalidCredentials:  http.StatusBadRequest,
	service.ErrActorNotFound:       http.StatusBadRequest,
	service.ErrInvalidToken:        http.StatusBadRequest,
	service.ErrMissingPassword:     http.StatusBadRequest,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	ErrEmptyAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidPathID:            http.StatusNotFound,
	ErrInvalidBody:              http.StatusBadRequest,
	ErrInvalidQuery:             http.StatusBadRequest,
}

var errorMessageMap = map[error]string{
	service.ErrForbidden:          app.MsgForbidden,
	service.ErrNotFound:           app.MsgNotFound,
	service.ErrAlreadyDeactivated: app.MsgPlaceAlreadyDeactivated,
	service.ErrUnauthenticated:    service.ErrUnauthenticated.Error(),
	service.ErrInvalidCredentials: app.MsgInvalidCredentials,
	service.ErrActorNotFound:      app.MsgUserNotFound,
	service.ErrInvalidToken:       app.MsgInvalidToken,
	service.ErrMissingPassword:    app.MsgPasswordRequired,

	ErrEmptyAuthorizationHeader: service.ErrUnauthenticated.Error(),
	ErrInvalidPathID:            app.MsgNotFound,
	ErrInvalidBody:              app.MsgInvalidDataProvided,
	ErrInvalidQuery:             app.MsgInvalidDataProvided,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse builds the client-facing body for err. Internal failures
// never leak their message.
func errorResponse(err error, status int) models.ErrorResponse {
	var vErr *validators.Error
	if errors.As(err, &vErr) {
		fields := vErr.FieldMessages()
		if len(fields) == 0 {
			return models.ErrorResponse{Error: vErr.Error()}
		}
		return models.ErrorResponse{Error: app.MsgValidationFailed, Fields: fields}
	}

	if status >= http.StatusInternalServerError {
		return models.ErrorResponse{Error: app.MsgInternalServerError}
	}

	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return models.ErrorResponse{Error: msg}
		}
	}
	return models.ErrorResponse{Error: http.StatusText(status)}
}

// writeError is the single translation point from service errors to HTTP.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, errorResponse(err, status), status)
}

// writeErrorMessage writes a fixed message, for endpoints whose wording
// depends on the route rather than on the error.
func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msg}, status)
}
