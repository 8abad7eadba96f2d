// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/internal/service"
)

// Settings tunes the HTTP handler.
type Settings struct {
	// ResetBaseURL prefixes password reset links. When empty the scheme and
	// host of the incoming request are used.
	ResetBaseURL string

	// RequestTimeout cancels the request context of slow handlers. Zero
	// disables the timeout.
	RequestTimeout time.Duration
}

type Handler struct {
	services *service.Services
	settings Settings

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		settings: settings,
		logger:   logger,
	}
}
