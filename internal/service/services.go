// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the tourism server: token
// authentication and password reset, the cultural place lifecycle, user
// place preferences, the leisure activity catalogue and pagination.
package service

import (
	"github.com/MKhiriev/popayan-tourism/internal/config"
	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/internal/store"
	"github.com/MKhiriev/popayan-tourism/models"
)

type Services struct {
	AuthService            AuthService
	CulturalPlaceService   CulturalPlaceService
	PreferenceService      PreferenceService
	LeisureActivityService LeisureActivityService
	AppInfoService         AppInfoService
}

func NewServices(storages *store.Storages, notifier Notifier, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:            NewAuthService(storages.UserRepository, notifier, cfg.App, logger),
		CulturalPlaceService:   NewCulturalPlaceService(storages.CulturalPlaceRepository, logger),
		PreferenceService:      NewPreferenceService(storages.PreferenceRepository, logger),
		LeisureActivityService: NewLeisureActivityService(storages.LeisureActivityRepository, logger),
		AppInfoService:         appInfo,
	}, nil
}
