// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/popayan-tourism/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	userColumns = `id, username, email, password, date_of_birth, is_superuser, last_login, date_joined`

	createUser = `INSERT INTO users (id, username, email, password, date_of_birth, is_superuser, date_joined)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	updateLastLogin = `UPDATE users
    SET last_login = $2
    WHERE id = $1;`

	updatePassword = `UPDATE users
    SET password = $3
    WHERE id = $1 AND password = $2;`
)

const (
	placeColumns = `id, name, description, address, opening_hours, image, active, created_by, updated_by, created_at, updated_at`

	savePlace = `INSERT INTO cultural_place (id, name, description, address, opening_hours, image, active, created_by, updated_by, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    RETURNING ` + placeColumns + `;`

	deactivatePlace = `UPDATE cultural_place
    SET active = FALSE, updated_by = $2, updated_at = $3
    WHERE id = $1 AND active = TRUE
    RETURNING ` + placeColumns + `;`

	deletePlace = `DELETE FROM cultural_place
    WHERE id = $1 AND active = TRUE;`
)

const (
	preferenceColumns = `id, user_id, place_id, rating, active, created_by, updated_by, created_at, updated_at`

	// (xmax = 0) is true only for rows inserted by this statement.
	upsertPreference = `INSERT INTO user_place_preference (id, user_id, place_id, rating, active, created_by, updated_by, created_at, updated_at)
    VALUES ($1, $2, $3, $4, TRUE, $5, $5, $6, $6)
    ON CONFLICT (user_id, place_id) DO UPDATE
    SET rating = EXCLUDED.rating, updated_by = EXCLUDED.updated_by, updated_at = EXCLUDED.updated_at
    RETURNING ` + preferenceColumns + `, (xmax = 0) AS created;`

	listPreferencesByUser = `SELECT ` + preferenceColumns + `
    FROM user_place_preference
    WHERE user_id = $1
    ORDER BY created_at, id;`
)

// buildSelectPlacesQuery selects a page of places ordered by name.
// A non-positive limit selects every matching row.
func buildSelectPlacesQuery(_ context.Context, filter models.PlaceFilter, limit, offset int) (string, []any, error) {
	builder := psql.
		Select(placeColumns).
		From(models.CulturalPlace{}.TableName()).
		OrderBy("name", "id")

	builder = applyPlaceFilter(builder, filter)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectPlaceByIDQuery selects a single place honouring filter.
func buildSelectPlaceByIDQuery(_ context.Context, id any, filter models.PlaceFilter) (string, []any, error) {
	builder := psql.
		Select(placeColumns).
		From(models.CulturalPlace{}.TableName()).
		Where(sq.Eq{"id": id})

	builder = applyPlaceFilter(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildCountPlacesQuery counts places matching filter.
func buildCountPlacesQuery(_ context.Context, filter models.PlaceFilter) (string, []any, error) {
	builder := psql.
		Select("COUNT(*)").
		From(models.CulturalPlace{}.TableName())

	builder = applyPlaceFilter(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdatePlaceQuery sets only the supplied columns of an active place.
// The audit columns are always written.
func buildUpdatePlaceQuery(_ context.Context, update models.CulturalPlaceUpdate) (string, []any, error) {
	builder := psql.
		Update(models.CulturalPlace{}.TableName()).
		Set("updated_by", update.UpdatedBy).
		Set("updated_at", update.UpdatedAt)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Address != nil {
		builder = builder.Set("address", *update.Address)
	}
	if update.OpeningHours != nil {
		builder = builder.Set("opening_hours", update.OpeningHours)
	}
	if update.Image != nil {
		builder = builder.Set("image", *update.Image)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID, "active": true}).
		Suffix("RETURNING " + placeColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func applyPlaceFilter(builder sq.SelectBuilder, filter models.PlaceFilter) sq.SelectBuilder {
	if filter.OnlyActive {
		builder = builder.Where(sq.Eq{"active": true})
	}
	return builder
}

const (
	listActiveCategories = `SELECT id, name, active
    FROM activity_category
    WHERE active = TRUE
    ORDER BY name, id;`

	activityPreferenceColumns = `id, user_id, activity_id, rating, active, created_by, updated_by, created_at, updated_at`

	// (xmax = 0) is true only for rows inserted by this statement.
	upsertActivityPreference = `INSERT INTO user_activity_preference (id, user_id, activity_id, rating, active, created_by, updated_by, created_at, updated_at)
    VALUES ($1, $2, $3, $4, TRUE, $5, $5, $6, $6)
    ON CONFLICT (user_id, activity_id) DO UPDATE
    SET rating = EXCLUDED.rating, updated_by = EXCLUDED.updated_by, updated_at = EXCLUDED.updated_at
    RETURNING ` + activityPreferenceColumns + `, (xmax = 0) AS created;`

	listActivityPreferencesByUser = `SELECT ` + activityPreferenceColumns + `
    FROM user_activity_preference
    WHERE user_id = $1
    ORDER BY created_at, id;`
)

var activityColumns = []string{"a.id", "a.name", "a.description", "a.image", "a.category_id", "c.name", "a.active"}

func activitiesFrom(builder sq.SelectBuilder, filter models.ActivityFilter) sq.SelectBuilder {
	builder = builder.
		From(models.LeisureActivity{}.TableName() + " a").
		Join(models.ActivityCategory{}.TableName() + " c ON c.id = a.category_id")

	if filter.OnlyActive {
		builder = builder.Where(sq.Eq{"a.active": true, "c.active": true})
	}
	if filter.CategoryID != nil {
		builder = builder.Where(sq.Eq{"a.category_id": *filter.CategoryID})
	}
	return builder
}

// buildSelectActivitiesQuery selects a page of activities with their
// category name, ordered by activity name.
func buildSelectActivitiesQuery(_ context.Context, filter models.ActivityFilter, limit, offset int) (string, []any, error) {
	builder := activitiesFrom(psql.Select(activityColumns...), filter).OrderBy("a.name", "a.id")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountActivitiesQuery(_ context.Context, filter models.ActivityFilter) (string, []any, error) {
	query, args, err := activitiesFrom(psql.Select("COUNT(*)"), filter).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectActivityByIDQuery(_ context.Context, id any, filter models.ActivityFilter) (string, []any, error) {
	query, args, err := activitiesFrom(psql.Select(activityColumns...), filter).
		Where(sq.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
