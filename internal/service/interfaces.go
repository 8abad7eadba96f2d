// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/google/uuid"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// VerifyToken never fails: the outcome is carried by [AuthResult].
	VerifyToken(ctx context.Context, tokenString string) AuthResult

	GeneratePasswordResetToken(user models.User) (uid, token string)
	CheckPasswordResetToken(ctx context.Context, uid, token string) (models.User, error)
	RequestPasswordReset(ctx context.Context, email, baseURL string) error
	ConsumePasswordReset(ctx context.Context, uid, token, newPassword string) error
}

type CulturalPlaceService interface {
	List(ctx context.Context, actor models.User, page, perPage int) (models.Page[models.CulturalPlace], error)
	Get(ctx context.Context, actor models.User, id uuid.UUID) (models.CulturalPlace, error)
	Create(ctx context.Context, actor models.User, req models.CulturalPlaceRequest) (models.CulturalPlace, error)
	Update(ctx context.Context, actor models.User, id uuid.UUID, req models.CulturalPlaceRequest) (models.CulturalPlace, error)
	Delete(ctx context.Context, actor models.User, id uuid.UUID) error
	Deactivate(ctx context.Context, actor models.User, id uuid.UUID) (models.CulturalPlace, error)
}

type PreferenceService interface {
	// Upsert reports created=true when a new preference was stored.
	Upsert(ctx context.Context, actor models.User, req models.PreferenceRequest) (models.UserPlacePreference, bool, error)
	ListForActor(ctx context.Context, actor models.User) ([]models.UserPlacePreference, error)
}

type LeisureActivityService interface {
	ListCategories(ctx context.Context) ([]models.ActivityCategory, error)

	// List filters by category when categoryID is not nil.
	List(ctx context.Context, actor models.User, categoryID *uuid.UUID, page, perPage int) (models.Page[models.LeisureActivity], error)
	Get(ctx context.Context, actor models.User, id uuid.UUID) (models.LeisureActivity, error)

	// UpsertPreference reports created=true when a new preference was stored.
	UpsertPreference(ctx context.Context, actor models.User, req models.ActivityPreferenceRequest) (models.UserActivityPreference, bool, error)
	ListPreferences(ctx context.Context, actor models.User) ([]models.UserActivityPreference, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionResponse
}

// Notifier delivers password reset links. Implementations must not block
// the calling request.
type Notifier interface {
	Enqueue(ctx context.Context, notification models.PasswordResetNotification) error
}

// IDGenerator produces identifiers for new rows.
type IDGenerator interface {
	Generate() uuid.UUID
}
