// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/popayan-tourism/internal/config"
	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/internal/store"
	"github.com/MKhiriev/popayan-tourism/internal/utils"
	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenarios run the services against the in-memory repositories so that
// state carried across calls is observable.

type scenario struct {
	users       *memUsers
	places      *memPlaces
	preferences *memPreferences
	notifier    *captureNotifier
	services    *Services
}

func newScenario(t *testing.T, users ...models.User) *scenario {
	t.Helper()

	s := &scenario{
		users:    newMemUsers(users...),
		places:   newMemPlaces(),
		notifier: &captureNotifier{},
	}
	s.preferences = newMemPreferences(s.places)

	storages := &store.Storages{
		UserRepository:          s.users,
		CulturalPlaceRepository: s.places,
		PreferenceRepository:    s.preferences,
	}

	cfg := config.StructuredConfig{App: testAppConfig()}
	cfg.App.Version = "v1.0.0-test"

	services, err := NewServices(storages, s.notifier, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	s.services = services

	return s
}

// ── cultural place lifecycle ──

func TestScenario_DeactivatedPlaceIsHidden(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	places := s.services.CulturalPlaceService

	created, err := places.Create(ctx, owner, validPlaceRequest())
	require.NoError(t, err)

	got, err := places.Get(ctx, other, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)

	deactivated, err := places.Deactivate(ctx, admin, created.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.Active)

	_, err = places.Get(ctx, other, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err = places.Get(ctx, admin, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	_, err = places.Deactivate(ctx, admin, created.ID)
	assert.ErrorIs(t, err, ErrAlreadyDeactivated)

	// inactive places can no longer be updated or deleted
	_, err = places.Update(ctx, owner, created.ID, models.CulturalPlaceRequest{Description: ptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, places.Delete(ctx, admin, created.ID), ErrNotFound)

	regular, err := places.List(ctx, other, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, regular.Items)
	assert.Equal(t, 0, regular.Total)

	privileged, err := places.List(ctx, admin, 1, 10)
	require.NoError(t, err)
	assert.Len(t, privileged.Items, 1)
}

func TestScenario_ForbiddenUpdateLeavesPlaceUnchanged(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	places := s.services.CulturalPlaceService

	created, err := places.Create(ctx, owner, validPlaceRequest())
	require.NoError(t, err)

	_, err = places.Update(ctx, other, created.ID, models.CulturalPlaceRequest{Name: ptr("Hijacked")})
	require.ErrorIs(t, err, ErrForbidden)

	got, err := places.Get(ctx, other, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := places.Update(ctx, admin, created.ID, models.CulturalPlaceRequest{Name: ptr("Teatro Guillermo Valencia")})
	require.NoError(t, err)
	assert.Equal(t, "Teatro Guillermo Valencia", updated.Name)
	assert.Equal(t, owner.UserID, updated.CreatedBy)
	assert.Equal(t, admin.UserID, updated.UpdatedBy)
}

func TestScenario_DuplicateNames(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	places := s.services.CulturalPlaceService

	first, err := places.Create(ctx, owner, validPlaceRequest())
	require.NoError(t, err)

	_, err = places.Create(ctx, other, validPlaceRequest())
	assert.ErrorIs(t, err, ErrValidation)

	second := validPlaceRequest()
	second.Name = ptr("Puente del Humilladero")
	created, err := places.Create(ctx, other, second)
	require.NoError(t, err)

	_, err = places.Update(ctx, other, created.ID, models.CulturalPlaceRequest{Name: &first.Name})
	assert.ErrorIs(t, err, ErrValidation)

	// deactivated places keep their name
	_, err = places.Deactivate(ctx, admin, first.ID)
	require.NoError(t, err)
	_, err = places.Create(ctx, other, validPlaceRequest())
	assert.ErrorIs(t, err, ErrValidation)
}

// ── pagination ──

func TestScenario_PageBeyondSingleItem(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	places := s.services.CulturalPlaceService

	_, err := places.Create(ctx, owner, validPlaceRequest())
	require.NoError(t, err)

	first, err := places.List(ctx, other, 1, 10)
	require.NoError(t, err)
	assert.Len(t, first.Items, 1)
	assert.Equal(t, 1, first.Total)
	assert.Equal(t, 1, first.NumPages)
	assert.Equal(t, 1, first.CurrentPage)

	second, err := places.List(ctx, other, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, EmptyPage[models.CulturalPlace](), second)
}

func TestScenario_PagesAreOrderedByName(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	places := s.services.CulturalPlaceService

	for _, name := range []string{"Casa Museo Mosquera", "Iglesia San Francisco", "Capilla de Belén", "Teatro Municipal", "Morro de Tulcán"} {
		req := validPlaceRequest()
		req.Name = ptr(name)
		_, err := places.Create(ctx, owner, req)
		require.NoError(t, err)
	}

	page, err := places.List(ctx, other, 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Iglesia San Francisco", page.Items[0].Name)
	assert.Equal(t, "Morro de Tulcán", page.Items[1].Name)
	assert.Equal(t, 3, page.NumPages)
	assert.Equal(t, 5, page.Total)
}

// ── preferences ──

func TestScenario_PreferenceUpsertKeepsOneRow(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	place, err := s.services.CulturalPlaceService.Create(ctx, admin, validPlaceRequest())
	require.NoError(t, err)

	prefs := s.services.PreferenceService

	_, created, err := prefs.Upsert(ctx, owner, models.PreferenceRequest{Place: &place.ID, Rating: ptr(3)})
	require.NoError(t, err)
	assert.True(t, created)

	got, created, err := prefs.Upsert(ctx, owner, models.PreferenceRequest{Place: &place.ID, Rating: ptr(5)})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 5, got.Rating)

	list, err := prefs.ListForActor(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 5, list[0].Rating)

	others, err := prefs.ListForActor(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, others)

	missing := uuid.New()
	_, _, err = prefs.Upsert(ctx, owner, models.PreferenceRequest{Place: &missing, Rating: ptr(1)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScenario_ConcurrentPreferenceUpserts(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	place, err := s.services.CulturalPlaceService.Create(ctx, admin, validPlaceRequest())
	require.NoError(t, err)

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		creates int
	)
	for i := range workers {
		wg.Add(1)
		go func(rating int) {
			defer wg.Done()
			_, created, err := s.services.PreferenceService.Upsert(ctx, owner,
				models.PreferenceRequest{Place: &place.ID, Rating: ptr(rating)})
			assert.NoError(t, err)
			if created {
				mu.Lock()
				creates++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, creates)
	assert.Equal(t, 1, s.preferences.count())
}

// ── authentication and password reset ──

func TestScenario_RegisterLoginAndVerify(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	auth := s.services.AuthService

	user, err := auth.Register(ctx, validRegisterRequest())
	require.NoError(t, err)

	_, err = auth.Register(ctx, validRegisterRequest())
	assert.ErrorIs(t, err, ErrValidation)

	logged, err := auth.Login(ctx, "maria", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, logged.UserID)

	token, err := auth.CreateToken(ctx, logged)
	require.NoError(t, err)

	result := auth.VerifyToken(ctx, token.SignedString)
	require.True(t, result.Authenticated())
	assert.Equal(t, user.UserID, result.User.UserID)
}

func TestScenario_ResetLinkWorksOnce(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	auth := s.services.AuthService

	user, err := auth.Register(ctx, validRegisterRequest())
	require.NoError(t, err)

	require.NoError(t, auth.RequestPasswordReset(ctx, user.Email, testBaseURL))
	uid, token := resetLinkParts(t, s.notifier.last().Link)

	checked, err := auth.CheckPasswordResetToken(ctx, uid, token)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, checked.UserID)

	require.NoError(t, auth.ConsumePasswordReset(ctx, uid, token, "a-new-password"))

	err = auth.ConsumePasswordReset(ctx, uid, token, "yet-another-password")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = auth.Login(ctx, "maria", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, "maria", "a-new-password")
	assert.NoError(t, err)
}

func TestScenario_LoginInvalidatesResetLink(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	auth := s.services.AuthService.(*authService)

	issued := time.Now().Add(-time.Hour)
	auth.now = func() time.Time { return issued }

	user, err := auth.Register(ctx, validRegisterRequest())
	require.NoError(t, err)

	require.NoError(t, auth.RequestPasswordReset(ctx, user.Email, testBaseURL))
	uid, token := resetLinkParts(t, s.notifier.last().Link)

	auth.now = time.Now
	_, err = auth.Login(ctx, "maria", "s3cret-pass")
	require.NoError(t, err)

	_, err = auth.CheckPasswordResetToken(ctx, uid, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestScenario_TokenOfDeletedUser(t *testing.T) {
	ghost := models.User{UserID: uuid.New(), Username: "ghost"}
	s := newScenario(t)

	token, err := utils.GenerateJWTToken(testIssuer, ghost.UserID, time.Hour, testSignKey)
	require.NoError(t, err)

	result := s.services.AuthService.VerifyToken(context.Background(), token.SignedString)
	assert.Equal(t, AuthActorNotFound, result.Reason)
}
