// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

type preferenceRepository struct {
	*DB
	logger *logger.Logger
}

// NewPreferenceRepository constructs a [PreferenceRepository].
func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	logger.Debug().Msg("creating preference repository")
	return &preferenceRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertPreference relies on the (user_id, place_id) unique index so that
// concurrent requests for the same pair never produce two rows. A missing
// place surfaces as a foreign key violation and is reported as
// [ErrPlaceNotFound].
func (p *preferenceRepository) UpsertPreference(ctx context.Context, pref models.UserPlacePreference) (models.UserPlacePreference, bool, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, upsertPreference,
		pref.ID, pref.UserID, pref.PlaceID, pref.Rating, pref.UpdatedBy, pref.UpdatedAt)

	var created bool
	saved, err := scanPreference(row, &created)
	if err != nil {
		log.Err(err).
			Str("func", "*preferenceRepository.UpsertPreference").
			Str("user_id", pref.UserID.String()).
			Str("place_id", pref.PlaceID.String()).
			Msg("error upserting preference")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.UserPlacePreference{}, false, ErrPlaceNotFound
		case "":
			return models.UserPlacePreference{}, false, err
		default:
			return models.UserPlacePreference{}, false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return saved, created, nil
}

// ListPreferencesByUser returns the preferences of userID in insertion order.
func (p *preferenceRepository) ListPreferencesByUser(ctx context.Context, userID uuid.UUID) ([]models.UserPlacePreference, error) {
	log := logger.FromContext(ctx)

	var prefs []models.UserPlacePreference
	err := p.retryRead(ctx, func() error {
		rows, err := p.DB.QueryContext(ctx, listPreferencesByUser, userID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		prefs = make([]models.UserPlacePreference, 0, 8)
		for rows.Next() {
			pref, scanErr := scanPreference(rows, nil)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			prefs = append(prefs, pref)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*preferenceRepository.ListPreferencesByUser").Str("user_id", userID.String()).Msg("error listing preferences")
		return nil, err
	}

	return prefs, nil
}

// scanPreference reads a preference row. When created is not nil the row is
// expected to carry the trailing "created" column of the upsert.
func scanPreference(row rowScanner, created *bool) (models.UserPlacePreference, error) {
	var pref models.UserPlacePreference

	dest := []any{
		&pref.ID,
		&pref.UserID,
		&pref.PlaceID,
		&pref.Rating,
		&pref.Active,
		&pref.CreatedBy,
		&pref.UpdatedBy,
		&pref.CreatedAt,
		&pref.UpdatedAt,
	}
	if created != nil {
		dest = append(dest, created)
	}

	err := row.Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserPlacePreference{}, ErrNotFound
	}
	if err != nil {
		if postgresError(err) != "" {
			return models.UserPlacePreference{}, err
		}
		return models.UserPlacePreference{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return pref, nil
}
