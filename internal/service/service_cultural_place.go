// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/popayan-tourism/internal/app"
	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/internal/store"
	"github.com/MKhiriev/popayan-tourism/internal/utils"
	"github.com/MKhiriev/popayan-tourism/internal/validators"
	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/google/uuid"
)

// culturalPlaceService owns every state transition of a cultural place:
// active places may be updated, deleted or deactivated, inactive ones are
// visible to privileged actors only.
type culturalPlaceService struct {
	places    store.CulturalPlaceRepository
	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time
	logger    *logger.Logger
}

func NewCulturalPlaceService(places store.CulturalPlaceRepository, logger *logger.Logger) CulturalPlaceService {
	return &culturalPlaceService{
		places:    places,
		validator: validators.NewCulturalPlaceValidator(validators.NewOpeningHoursValidator(false)),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// visibleTo returns the filter limiting actor to the places it may see.
func visibleTo(actor models.User) models.PlaceFilter {
	return models.PlaceFilter{OnlyActive: !actor.IsSuperuser}
}

// List returns one page of the places visible to actor.
func (s *culturalPlaceService) List(ctx context.Context, actor models.User, page, perPage int) (models.Page[models.CulturalPlace], error) {
	filter := visibleTo(actor)

	result, err := Paginate(ctx, page, perPage,
		func(ctx context.Context) (int, error) {
			return s.places.CountPlaces(ctx, filter)
		},
		func(ctx context.Context, limit, offset int) ([]models.CulturalPlace, error) {
			return s.places.FindAllPlaces(ctx, filter, limit, offset)
		},
	)
	if err != nil {
		return models.Page[models.CulturalPlace]{}, fmt.Errorf("error listing cultural places: %w", err)
	}

	return result, nil
}

// Get hides inactive places from unprivileged actors behind ErrNotFound.
func (s *culturalPlaceService) Get(ctx context.Context, actor models.User, id uuid.UUID) (models.CulturalPlace, error) {
	place, err := s.places.FindPlaceByID(ctx, id, visibleTo(actor))
	if err != nil {
		return models.CulturalPlace{}, notFoundOr(err, "error getting cultural place")
	}
	return place, nil
}

// Create validates the payload and stores a new active place owned by actor.
func (s *culturalPlaceService) Create(ctx context.Context, actor models.User, req models.CulturalPlaceRequest) (models.CulturalPlace, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.CulturalPlace{}, err
	}

	hours, err := req.DecodeOpeningHours()
	if err != nil {
		return models.CulturalPlace{}, validators.NewFieldError(validators.FieldOpeningHours, app.MsgOpeningHoursNotObject)
	}

	place := models.CulturalPlace{
		ID:           s.ids.Generate(),
		Name:         *req.Name,
		Description:  *req.Description,
		Address:      *req.Address,
		OpeningHours: hours,
		Image:        req.Image,
	}
	stampCreated(&place.Audit, actor, s.now())

	saved, err := s.places.SavePlace(ctx, place)
	if errors.Is(err, store.ErrPlaceNameTaken) {
		return models.CulturalPlace{}, validators.NewFieldError(validators.FieldName, app.MsgPlaceNameTaken)
	}
	if err != nil {
		log.Err(err).Str("name", place.Name).Msg("error saving cultural place")
		return models.CulturalPlace{}, fmt.Errorf("error saving cultural place: %w", err)
	}

	log.Info().Str("place_id", saved.ID.String()).Str("created_by", actor.UserID.String()).Msg("cultural place created")
	return saved, nil
}

// Update applies the supplied fields to an active place. Only the creator or
// a privileged actor may update, and the check happens before any write.
func (s *culturalPlaceService) Update(ctx context.Context, actor models.User, id uuid.UUID, req models.CulturalPlaceRequest) (models.CulturalPlace, error) {
	log := logger.FromContext(ctx)

	existing, err := s.places.FindPlaceByID(ctx, id, models.PlaceFilter{OnlyActive: true})
	if err != nil {
		return models.CulturalPlace{}, notFoundOr(err, "error getting cultural place")
	}

	if !canModify(actor, existing) {
		log.Info().Str("place_id", id.String()).Str("actor", actor.UserID.String()).Msg("update forbidden")
		return models.CulturalPlace{}, ErrForbidden
	}

	if fields := validators.SuppliedPlaceFields(req); len(fields) > 0 {
		if err = s.validator.Validate(ctx, req, fields...); err != nil {
			return models.CulturalPlace{}, err
		}
	}

	update := models.CulturalPlaceUpdate{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Image:       req.Image,
	}
	if req.HasOpeningHours() {
		if update.OpeningHours, err = req.DecodeOpeningHours(); err != nil {
			return models.CulturalPlace{}, validators.NewFieldError(validators.FieldOpeningHours, app.MsgOpeningHoursNotObject)
		}
	}
	stampUpdated(&update.Audit, actor, s.now())

	updated, err := s.places.UpdatePlace(ctx, update)
	if errors.Is(err, store.ErrPlaceNameTaken) {
		return models.CulturalPlace{}, validators.NewFieldError(validators.FieldName, app.MsgPlaceNameTaken)
	}
	if err != nil {
		return models.CulturalPlace{}, notFoundOr(err, "error updating cultural place")
	}

	log.Info().Str("place_id", id.String()).Str("updated_by", actor.UserID.String()).Msg("cultural place updated")
	return updated, nil
}

// Delete removes an active place. Permission is checked before the place is
// looked up, so unprivileged actors learn nothing about existence.
func (s *culturalPlaceService) Delete(ctx context.Context, actor models.User, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	if !actor.IsSuperuser {
		return ErrForbidden
	}

	if err := s.places.DeletePlace(ctx, id); err != nil {
		return notFoundOr(err, "error deleting cultural place")
	}

	log.Info().Str("place_id", id.String()).Str("deleted_by", actor.UserID.String()).Msg("cultural place deleted")
	return nil
}

// Deactivate soft-deletes an active place. A second deactivation fails with
// ErrAlreadyDeactivated.
func (s *culturalPlaceService) Deactivate(ctx context.Context, actor models.User, id uuid.UUID) (models.CulturalPlace, error) {
	log := logger.FromContext(ctx)

	if !actor.IsSuperuser {
		return models.CulturalPlace{}, ErrForbidden
	}

	place, err := s.places.FindPlaceByID(ctx, id, models.PlaceFilter{})
	if err != nil {
		return models.CulturalPlace{}, notFoundOr(err, "error getting cultural place")
	}
	if !place.Active {
		return models.CulturalPlace{}, ErrAlreadyDeactivated
	}

	var audit models.Audit
	stampUpdated(&audit, actor, s.now())

	deactivated, err := s.places.DeactivatePlace(ctx, id, audit.UpdatedBy, audit.UpdatedAt)
	if errors.Is(err, store.ErrPlaceNotActive) {
		return models.CulturalPlace{}, ErrAlreadyDeactivated
	}
	if err != nil {
		log.Err(err).Str("place_id", id.String()).Msg("error deactivating cultural place")
		return models.CulturalPlace{}, fmt.Errorf("error deactivating cultural place: %w", err)
	}

	log.Info().Str("place_id", id.String()).Str("updated_by", actor.UserID.String()).Msg("cultural place deactivated")
	return deactivated, nil
}

func canModify(actor models.User, place models.CulturalPlace) bool {
	return actor.IsSuperuser || place.CreatedBy == actor.UserID
}

func stampCreated(audit *models.Audit, actor models.User, now time.Time) {
	audit.Active = true
	audit.CreatedBy = actor.UserID
	audit.CreatedAt = now.UTC()
	stampUpdated(audit, actor, now)
}

func stampUpdated(audit *models.Audit, actor models.User, now time.Time) {
	audit.UpdatedBy = actor.UserID
	audit.UpdatedAt = now.UTC()
}

// notFoundOr maps the store not-found family to ErrNotFound and wraps
// everything else with msg.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
