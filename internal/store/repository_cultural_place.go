// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// culturalPlaceRepository is the PostgreSQL-backed implementation of
// [CulturalPlaceRepository] working on the "cultural_place" table.
type culturalPlaceRepository struct {
	*DB
	logger *logger.Logger
}

// NewCulturalPlaceRepository constructs a [CulturalPlaceRepository].
func NewCulturalPlaceRepository(db *DB, logger *logger.Logger) CulturalPlaceRepository {
	logger.Debug().Msg("creating cultural place repository")
	return &culturalPlaceRepository{
		DB:     db,
		logger: logger,
	}
}

// FindPlaceByID returns [ErrPlaceNotFound] when no place matches id and filter.
func (p *culturalPlaceRepository) FindPlaceByID(ctx context.Context, id uuid.UUID, filter models.PlaceFilter) (models.CulturalPlace, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPlaceByIDQuery(ctx, id, filter)
	if err != nil {
		log.Err(err).Str("func", "*culturalPlaceRepository.FindPlaceByID").Msg("failed to create query")
		return models.CulturalPlace{}, err
	}

	var place models.CulturalPlace
	err = p.retryRead(ctx, func() error {
		var scanErr error
		place, scanErr = scanPlace(p.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if !errors.Is(err, ErrPlaceNotFound) {
			log.Err(err).Str("func", "*culturalPlaceRepository.FindPlaceByID").Str("place_id", id.String()).Msg("error finding place")
		}
		return models.CulturalPlace{}, err
	}

	return place, nil
}

// CountPlaces returns the number of places matching filter.
func (p *culturalPlaceRepository) CountPlaces(ctx context.Context, filter models.PlaceFilter) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountPlacesQuery(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*culturalPlaceRepository.CountPlaces").Msg("failed to create query")
		return 0, err
	}

	var total int
	err = p.retryRead(ctx, func() error {
		return p.DB.QueryRowContext(ctx, query, args...).Scan(&total)
	})
	if err != nil {
		log.Err(err).Str("func", "*culturalPlaceRepository.CountPlaces").Msg("failed to count places")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// FindAllPlaces returns a window of places ordered by name.
func (p *culturalPlaceRepository) FindAllPlaces(ctx context.Context, filter models.PlaceFilter, limit, offset int) ([]models.CulturalPlace, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPlacesQuery(ctx, filter, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*culturalPlaceRepository.FindAllPlaces").Msg("failed to create query")
		return nil, err
	}

	var places []models.CulturalPlace
	err = p.retryRead(ctx, func() error {
		var queryErr error
		places, queryErr = p.queryPlaces(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*culturalPlaceRepository.FindAllPlaces").
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to list places")
		return nil, err
	}

	return places, nil
}

func (p *culturalPlaceRepository) queryPlaces(ctx context.Context, query string, args []any) ([]models.CulturalPlace, error) {
	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	places := make([]models.CulturalPlace, 0, 16)
	for rows.Next() {
		place, scanErr := scanPlace(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		places = append(places, place)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return places, nil
}

// SavePlace inserts a place and returns the stored row.
func (p *culturalPlaceRepository) SavePlace(ctx context.Context, place models.CulturalPlace) (models.CulturalPlace, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, savePlace,
		place.ID,
		place.Name,
		place.Description,
		place.Address,
		place.OpeningHours,
		place.Image,
		place.Active,
		place.CreatedBy,
		place.UpdatedBy,
		place.CreatedAt,
		place.UpdatedAt,
	)

	saved, err := scanPlace(row)
	if err != nil {
		log.Err(err).Str("func", "*culturalPlaceRepository.SavePlace").Str("name", place.Name).Msg("error saving place")
		return models.CulturalPlace{}, placeWriteError(err)
	}

	return saved, nil
}

// UpdatePlace applies a partial update to an active place.
func (p *culturalPlaceRepository) UpdatePlace(ctx context.Context, update models.CulturalPlaceUpdate) (models.CulturalPlace, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePlaceQuery(ctx, update)
	if err != nil {
		log.Err(err).Str("func", "*culturalPlaceRepository.UpdatePlace").Msg("failed to create query")
		return models.CulturalPlace{}, err
	}

	updated, err := scanPlace(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, ErrPlaceNotFound) {
			log.Err(err).Str("func", "*culturalPlaceRepository.UpdatePlace").Str("place_id", update.ID.String()).Msg("error updating place")
		}
		return models.CulturalPlace{}, placeWriteError(err)
	}

	return updated, nil
}

// DeactivatePlace flips the active flag of an active place. A missing or
// already inactive place yields [ErrPlaceNotActive].
func (p *culturalPlaceRepository) DeactivatePlace(ctx context.Context, id, updatedBy uuid.UUID, at time.Time) (models.CulturalPlace, error) {
	log := logger.FromContext(ctx)

	place, err := scanPlace(p.DB.QueryRowContext(ctx, deactivatePlace, id, updatedBy, at))
	if errors.Is(err, ErrPlaceNotFound) {
		return models.CulturalPlace{}, ErrPlaceNotActive
	}
	if err != nil {
		log.Err(err).Str("func", "*culturalPlaceRepository.DeactivatePlace").Str("place_id", id.String()).Msg("error deactivating place")
		return models.CulturalPlace{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return place, nil
}

// DeletePlace removes an active place. Preferences referencing it are
// removed by the foreign key cascade.
func (p *culturalPlaceRepository) DeletePlace(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deletePlace, id)
	if err != nil {
		log.Err(err).Str("func", "*culturalPlaceRepository.DeletePlace").Str("place_id", id.String()).Msg("error deleting place")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrPlaceNotFound)
}

func placeWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrPlaceNameTaken
	case "":
		return err
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

func scanPlace(row rowScanner) (models.CulturalPlace, error) {
	var (
		place models.CulturalPlace
		image sql.NullString
	)

	err := row.Scan(
		&place.ID,
		&place.Name,
		&place.Description,
		&place.Address,
		&place.OpeningHours,
		&image,
		&place.Active,
		&place.CreatedBy,
		&place.UpdatedBy,
		&place.CreatedAt,
		&place.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CulturalPlace{}, ErrPlaceNotFound
	}
	if err != nil {
		if postgresError(err) != "" {
			return models.CulturalPlace{}, err
		}
		return models.CulturalPlace{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if image.Valid {
		place.Image = &image.String
	}

	return place, nil
}
