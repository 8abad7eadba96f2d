// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the transport handlers of the tourism server from
// the service layer and the loaded configuration.
package handler

import (
	"github.com/MKhiriev/popayan-tourism/internal/config"
	"github.com/MKhiriev/popayan-tourism/internal/handler/http"
	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	settings := http.Settings{
		ResetBaseURL:   cfg.App.ResetBaseURL,
		RequestTimeout: cfg.Server.RequestTimeout,
	}

	return &Handlers{
		HTTP: http.NewHandler(services, settings, logger),
	}, nil
}
