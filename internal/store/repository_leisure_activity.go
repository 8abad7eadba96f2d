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

// leisureActivityRepository reads the activity catalogue and stores the
// users' activity ratings.
type leisureActivityRepository struct {
	*DB
	logger *logger.Logger
}

func NewLeisureActivityRepository(db *DB, logger *logger.Logger) LeisureActivityRepository {
	logger.Debug().Msg("creating leisure activity repository")
	return &leisureActivityRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *leisureActivityRepository) ListCategories(ctx context.Context) ([]models.ActivityCategory, error) {
	log := logger.FromContext(ctx)

	var categories []models.ActivityCategory
	err := r.retryRead(ctx, func() error {
		rows, err := r.DB.QueryContext(ctx, listActiveCategories)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		categories = make([]models.ActivityCategory, 0, 8)
		for rows.Next() {
			var c models.ActivityCategory
			if err = rows.Scan(&c.ID, &c.Name, &c.Active); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			categories = append(categories, c)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*leisureActivityRepository.ListCategories").Msg("error listing activity categories")
		return nil, err
	}

	return categories, nil
}

func (r *leisureActivityRepository) FindActivityByID(ctx context.Context, id uuid.UUID, filter models.ActivityFilter) (models.LeisureActivity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectActivityByIDQuery(ctx, id, filter)
	if err != nil {
		return models.LeisureActivity{}, err
	}

	var activity models.LeisureActivity
	err = r.retryRead(ctx, func() error {
		var scanErr error
		activity, scanErr = scanActivity(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if !errors.Is(err, ErrActivityNotFound) {
			log.Err(err).Str("func", "*leisureActivityRepository.FindActivityByID").Str("activity_id", id.String()).Msg("error finding activity")
		}
		return models.LeisureActivity{}, err
	}

	return activity, nil
}

func (r *leisureActivityRepository) CountActivities(ctx context.Context, filter models.ActivityFilter) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountActivitiesQuery(ctx, filter)
	if err != nil {
		return 0, err
	}

	var total int
	err = r.retryRead(ctx, func() error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&total)
	})
	if err != nil {
		log.Err(err).Str("func", "*leisureActivityRepository.CountActivities").Msg("failed to count activities")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// FindAllActivities returns a window of activities ordered by name.
func (r *leisureActivityRepository) FindAllActivities(ctx context.Context, filter models.ActivityFilter, limit, offset int) ([]models.LeisureActivity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectActivitiesQuery(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	var activities []models.LeisureActivity
	err = r.retryRead(ctx, func() error {
		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		activities = make([]models.LeisureActivity, 0, 16)
		for rows.Next() {
			activity, scanErr := scanActivity(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			activities = append(activities, activity)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).
			Str("func", "*leisureActivityRepository.FindAllActivities").
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to list activities")
		return nil, err
	}

	return activities, nil
}

// UpsertActivityPreference relies on the (user_id, activity_id) unique
// index. A missing activity surfaces as a foreign key violation and is
// reported as [ErrActivityNotFound].
func (r *leisureActivityRepository) UpsertActivityPreference(ctx context.Context, pref models.UserActivityPreference) (models.UserActivityPreference, bool, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, upsertActivityPreference,
		pref.ID, pref.UserID, pref.ActivityID, pref.Rating, pref.UpdatedBy, pref.UpdatedAt)

	var created bool
	saved, err := scanActivityPreference(row, &created)
	if err != nil {
		log.Err(err).
			Str("func", "*leisureActivityRepository.UpsertActivityPreference").
			Str("user_id", pref.UserID.String()).
			Str("activity_id", pref.ActivityID.String()).
			Msg("error upserting activity preference")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.UserActivityPreference{}, false, ErrActivityNotFound
		case "":
			return models.UserActivityPreference{}, false, err
		default:
			return models.UserActivityPreference{}, false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return saved, created, nil
}

func (r *leisureActivityRepository) ListActivityPreferencesByUser(ctx context.Context, userID uuid.UUID) ([]models.UserActivityPreference, error) {
	log := logger.FromContext(ctx)

	var prefs []models.UserActivityPreference
	err := r.retryRead(ctx, func() error {
		rows, err := r.DB.QueryContext(ctx, listActivityPreferencesByUser, userID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		prefs = make([]models.UserActivityPreference, 0, 8)
		for rows.Next() {
			pref, scanErr := scanActivityPreference(rows, nil)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			prefs = append(prefs, pref)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*leisureActivityRepository.ListActivityPreferencesByUser").Str("user_id", userID.String()).Msg("error listing activity preferences")
		return nil, err
	}

	return prefs, nil
}

func scanActivity(row rowScanner) (models.LeisureActivity, error) {
	var (
		activity models.LeisureActivity
		image    sql.NullString
	)

	err := row.Scan(
		&activity.ID,
		&activity.Name,
		&activity.Description,
		&image,
		&activity.CategoryID,
		&activity.CategoryName,
		&activity.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LeisureActivity{}, ErrActivityNotFound
	}
	if err != nil {
		return models.LeisureActivity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if image.Valid {
		activity.Image = &image.String
	}
	return activity, nil
}

// scanActivityPreference mirrors scanPreference for the activity table.
func scanActivityPreference(row rowScanner, created *bool) (models.UserActivityPreference, error) {
	var pref models.UserActivityPreference

	dest := []any{
		&pref.ID,
		&pref.UserID,
		&pref.ActivityID,
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
		return models.UserActivityPreference{}, ErrNotFound
	}
	if err != nil {
		if postgresError(err) != "" {
			return models.UserActivityPreference{}, err
		}
		return models.UserActivityPreference{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return pref, nil
}
