// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/popayan-tourism/internal/logger"

// Storages groups every repository consumed by the service layer.
type Storages struct {
	UserRepository            UserRepository
	CulturalPlaceRepository   CulturalPlaceRepository
	PreferenceRepository      PreferenceRepository
	LeisureActivityRepository LeisureActivityRepository
}

// NewStorages builds the PostgreSQL repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:            NewUserRepository(db, log),
		CulturalPlaceRepository:   NewCulturalPlaceRepository(db, log),
		PreferenceRepository:      NewPreferenceRepository(db, log),
		LeisureActivityRepository: NewLeisureActivityRepository(db, log),
	}
}
