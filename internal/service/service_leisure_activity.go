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
	"github.com/google/uuid"
)

// leisureActivityService serves the read-only activity catalogue and the
// users' activity ratings. Inactive activities and categories are visible to
// privileged actors only.
type leisureActivityService struct {
	activities store.LeisureActivityRepository
	validator  validators.Validator
	ids        IDGenerator
	now        func() time.Time
	logger     *logger.Logger
}

func NewLeisureActivityService(activities store.LeisureActivityRepository, logger *logger.Logger) LeisureActivityService {
	return &leisureActivityService{
		activities: activities,
		validator:  validators.NewActivityPreferenceValidator(),
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *leisureActivityService) ListCategories(ctx context.Context) ([]models.ActivityCategory, error) {
	categories, err := s.activities.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing activity categories: %w", err)
	}
	return categories, nil
}

// List returns one page of the activities visible to actor, optionally
// limited to one category.
func (s *leisureActivityService) List(ctx context.Context, actor models.User, categoryID *uuid.UUID, page, perPage int) (models.Page[models.LeisureActivity], error) {
	filter := models.ActivityFilter{OnlyActive: !actor.IsSuperuser, CategoryID: categoryID}

	result, err := Paginate(ctx, page, perPage,
		func(ctx context.Context) (int, error) {
			return s.activities.CountActivities(ctx, filter)
		},
		func(ctx context.Context, limit, offset int) ([]models.LeisureActivity, error) {
			return s.activities.FindAllActivities(ctx, filter, limit, offset)
		},
	)
	if err != nil {
		return models.Page[models.LeisureActivity]{}, fmt.Errorf("error listing leisure activities: %w", err)
	}

	return result, nil
}

func (s *leisureActivityService) Get(ctx context.Context, actor models.User, id uuid.UUID) (models.LeisureActivity, error) {
	activity, err := s.activities.FindActivityByID(ctx, id, models.ActivityFilter{OnlyActive: !actor.IsSuperuser})
	if err != nil {
		return models.LeisureActivity{}, notFoundOr(err, "error getting leisure activity")
	}
	return activity, nil
}

// UpsertPreference stores the rating of actor for an activity in one atomic
// statement. Any integer rating is accepted.
func (s *leisureActivityService) UpsertPreference(ctx context.Context, actor models.User, req models.ActivityPreferenceRequest) (models.UserActivityPreference, bool, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.UserActivityPreference{}, false, err
	}

	pref := models.UserActivityPreference{
		ID:         s.ids.Generate(),
		UserID:     actor.UserID,
		ActivityID: *req.Activity,
		Rating:     *req.Rating,
	}
	stampCreated(&pref.Audit, actor, s.now())

	saved, created, err := s.activities.UpsertActivityPreference(ctx, pref)
	if err != nil {
		return models.UserActivityPreference{}, false, notFoundOr(err, "error saving activity preference")
	}

	log.Info().
		Str("user_id", actor.UserID.String()).
		Str("activity_id", saved.ActivityID.String()).
		Bool("created", created).
		Msg("user activity preference saved")

	return saved, created, nil
}

func (s *leisureActivityService) ListPreferences(ctx context.Context, actor models.User) ([]models.UserActivityPreference, error) {
	prefs, err := s.activities.ListActivityPreferencesByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("error listing activity preferences: %w", err)
	}
	return prefs, nil
}
