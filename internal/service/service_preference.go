// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/internal/store"
	"github.com/MKhiriev/popayan-tourism/internal/utils"
	"github.com/MKhiriev/popayan-tourism/internal/validators"
	"github.com/MKhiriev/popayan-tourism/models"
)

type preferenceService struct {
	preferences store.PreferenceRepository
	validator   validators.Validator
	ids         IDGenerator
	now         func() time.Time
	logger      *logger.Logger
}

func NewPreferenceService(preferences store.PreferenceRepository, logger *logger.Logger) PreferenceService {
	return &preferenceService{
		preferences: preferences,
		validator:   validators.NewPreferenceValidator(),
		ids:         utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}
}

// Upsert stores the rating of actor for a place in one atomic statement.
// Any integer rating is accepted.
func (s *preferenceService) Upsert(ctx context.Context, actor models.User, req models.PreferenceRequest) (models.UserPlacePreference, bool, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.UserPlacePreference{}, false, err
	}

	pref := models.UserPlacePreference{
		ID:      s.ids.Generate(),
		UserID:  actor.UserID,
		PlaceID: *req.Place,
		Rating:  *req.Rating,
	}
	stampCreated(&pref.Audit, actor, s.now())

	saved, created, err := s.preferences.UpsertPreference(ctx, pref)
	if err != nil {
		return models.UserPlacePreference{}, false, notFoundOr(err, "error saving preference")
	}

	msg := "user place preference updated"
	if created {
		msg = "user place preference created"
	}
	log.Info().Str("user_id", actor.UserID.String()).Str("place_id", saved.PlaceID.String()).Msg(msg)

	return saved, created, nil
}

// ListForActor returns the preferences of actor in insertion order.
func (s *preferenceService) ListForActor(ctx context.Context, actor models.User) ([]models.UserPlacePreference, error) {
	prefs, err := s.preferences.ListPreferencesByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("error listing preferences: %w", err)
	}
	return prefs, nil
}
