// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store contains the persistence layer of the tourism server:
// repository interfaces consumed by the service layer and their PostgreSQL
// implementations.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/google/uuid"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a user and returns it with server-assigned fields.
	// Returns [ErrUsernameTaken] or [ErrEmailTaken] on unique violations.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns [ErrUserNotFound] when no row matches.
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)

	// FindUserByUsername performs an exact, case-sensitive lookup.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByEmail performs an exact, case-sensitive lookup.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// UpdateLastLogin sets last_login of the user to at.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// UpdatePassword replaces the password hash only if the stored hash
	// still equals oldHash. Returns [ErrPasswordChanged] otherwise.
	UpdatePassword(ctx context.Context, id uuid.UUID, oldHash, newHash string) error
}

// CulturalPlaceRepository persists cultural places.
type CulturalPlaceRepository interface {
	FindPlaceByID(ctx context.Context, id uuid.UUID, filter models.PlaceFilter) (models.CulturalPlace, error)
	CountPlaces(ctx context.Context, filter models.PlaceFilter) (int, error)
	FindAllPlaces(ctx context.Context, filter models.PlaceFilter, limit, offset int) ([]models.CulturalPlace, error)

	// SavePlace inserts a place. Returns [ErrPlaceNameTaken] when the name
	// is used by another place.
	SavePlace(ctx context.Context, place models.CulturalPlace) (models.CulturalPlace, error)

	// UpdatePlace writes the supplied columns of an active place. Returns
	// [ErrPlaceNotFound] when the place is missing or inactive.
	UpdatePlace(ctx context.Context, update models.CulturalPlaceUpdate) (models.CulturalPlace, error)

	// DeactivatePlace flips active to false for an active place. Returns
	// [ErrPlaceNotActive] when the place exists but is already inactive.
	DeactivatePlace(ctx context.Context, id, updatedBy uuid.UUID, at time.Time) (models.CulturalPlace, error)

	// DeletePlace removes an active place.
	DeletePlace(ctx context.Context, id uuid.UUID) error
}

// PreferenceRepository persists user ratings of places.
type PreferenceRepository interface {
	// UpsertPreference inserts or updates the (user, place) preference in a
	// single statement. created reports whether a new row was inserted.
	UpsertPreference(ctx context.Context, pref models.UserPlacePreference) (models.UserPlacePreference, bool, error)

	// ListPreferencesByUser returns the preferences of a user in insertion order.
	ListPreferencesByUser(ctx context.Context, userID uuid.UUID) ([]models.UserPlacePreference, error)
}

// LeisureActivityRepository reads the leisure activity catalogue and
// persists user ratings of activities. The catalogue itself is maintained
// outside the API.
type LeisureActivityRepository interface {
	// ListCategories returns the active categories ordered by name.
	ListCategories(ctx context.Context) ([]models.ActivityCategory, error)

	// FindActivityByID returns [ErrActivityNotFound] when no activity
	// matches id and filter.
	FindActivityByID(ctx context.Context, id uuid.UUID, filter models.ActivityFilter) (models.LeisureActivity, error)
	CountActivities(ctx context.Context, filter models.ActivityFilter) (int, error)
	FindAllActivities(ctx context.Context, filter models.ActivityFilter, limit, offset int) ([]models.LeisureActivity, error)

	// UpsertActivityPreference inserts or updates the (user, activity)
	// preference in a single statement. created reports whether a new row
	// was inserted.
	UpsertActivityPreference(ctx context.Context, pref models.UserActivityPreference) (models.UserActivityPreference, bool, error)
	ListActivityPreferencesByUser(ctx context.Context, userID uuid.UUID) ([]models.UserActivityPreference, error)
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
