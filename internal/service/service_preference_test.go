// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/internal/mock"
	"github.com/MKhiriev/popayan-tourism/internal/store"
	"github.com/MKhiriev/popayan-tourism/internal/validators"
	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPreferenceService(repo store.PreferenceRepository) *preferenceService {
	svc := NewPreferenceService(repo, logger.Nop()).(*preferenceService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestPreferenceUpsert(t *testing.T) {
	placeID := uuid.New()

	tests := []struct {
		name    string
		created bool
	}{
		{"first rating creates", true},
		{"second rating updates", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockPreferenceRepository(ctrl)

			repo.EXPECT().UpsertPreference(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p models.UserPlacePreference) (models.UserPlacePreference, bool, error) {
					assert.NotEqual(t, uuid.Nil, p.ID)
					assert.Equal(t, owner.UserID, p.UserID)
					assert.Equal(t, placeID, p.PlaceID)
					assert.Equal(t, 4, p.Rating)
					assert.True(t, p.Active)
					assert.Equal(t, owner.UserID, p.CreatedBy)
					assert.Equal(t, fixedNow, p.UpdatedAt)
					return p, tt.created, nil
				})

			got, created, err := newTestPreferenceService(repo).Upsert(context.Background(), owner,
				models.PreferenceRequest{Place: &placeID, Rating: ptr(4)})

			require.NoError(t, err)
			assert.Equal(t, tt.created, created)
			assert.Equal(t, 4, got.Rating)
		})
	}
}

func TestPreferenceUpsert_AnyIntegerRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPreferenceRepository(ctrl)
	placeID := uuid.New()

	repo.EXPECT().UpsertPreference(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.UserPlacePreference) (models.UserPlacePreference, bool, error) {
			return p, true, nil
		}).Times(3)

	svc := newTestPreferenceService(repo)
	for _, rating := range []int{-3, 0, 1000} {
		got, _, err := svc.Upsert(context.Background(), owner, models.PreferenceRequest{Place: &placeID, Rating: ptr(rating)})
		require.NoError(t, err)
		assert.Equal(t, rating, got.Rating)
	}
}

func TestPreferenceUpsert_Failures(t *testing.T) {
	placeID := uuid.New()

	tests := []struct {
		name     string
		req      models.PreferenceRequest
		storeErr error
		wantErr  error
	}{
		{
			name:    "missing rating",
			req:     models.PreferenceRequest{Place: &placeID},
			wantErr: ErrValidation,
		},
		{
			name:    "missing place",
			req:     models.PreferenceRequest{Rating: ptr(3)},
			wantErr: ErrValidation,
		},
		{
			name:    "nil place id",
			req:     models.PreferenceRequest{Place: &uuid.Nil, Rating: ptr(3)},
			wantErr: ErrValidation,
		},
		{
			name:     "unknown place",
			req:      models.PreferenceRequest{Place: &placeID, Rating: ptr(3)},
			storeErr: store.ErrPlaceNotFound,
			wantErr:  ErrNotFound,
		},
		{
			name:     "store failure",
			req:      models.PreferenceRequest{Place: &placeID, Rating: ptr(3)},
			storeErr: store.ErrExecutingStatement,
			wantErr:  store.ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockPreferenceRepository(ctrl)
			if tt.storeErr != nil {
				repo.EXPECT().UpsertPreference(gomock.Any(), gomock.Any()).Return(models.UserPlacePreference{}, false, tt.storeErr)
			}

			_, _, err := newTestPreferenceService(repo).Upsert(context.Background(), owner, tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPreferenceUpsert_ValidationFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPreferenceRepository(ctrl)

	_, _, err := newTestPreferenceService(repo).Upsert(context.Background(), owner, models.PreferenceRequest{})

	var vErr *validators.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"place", "rating"}, vErr.FieldNames())
}

func TestPreferenceListForActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPreferenceRepository(ctrl)
	svc := newTestPreferenceService(repo)

	prefs := []models.UserPlacePreference{
		{ID: uuid.New(), UserID: owner.UserID, PlaceID: uuid.New(), Rating: 5},
		{ID: uuid.New(), UserID: owner.UserID, PlaceID: uuid.New(), Rating: 2},
	}
	repo.EXPECT().ListPreferencesByUser(gomock.Any(), owner.UserID).Return(prefs, nil)

	got, err := svc.ListForActor(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, prefs, got)

	boom := errors.New("db down")
	repo.EXPECT().ListPreferencesByUser(gomock.Any(), owner.UserID).Return(nil, boom)

	_, err = svc.ListForActor(context.Background(), owner)
	assert.ErrorIs(t, err, boom)
}
