// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceValidator(t *testing.T) {
	placeID := uuid.New()

	tests := []struct {
		name       string
		req        models.PreferenceRequest
		wantFields []string
	}{
		{"valid", models.PreferenceRequest{Place: &placeID, Rating: ptr(5)}, nil},
		{"zero rating is valid", models.PreferenceRequest{Place: &placeID, Rating: ptr(0)}, nil},
		{"negative rating is valid", models.PreferenceRequest{Place: &placeID, Rating: ptr(-3)}, nil},
		{"missing rating", models.PreferenceRequest{Place: &placeID}, []string{"rating"}},
		{"missing place", models.PreferenceRequest{Rating: ptr(1)}, []string{"place"}},
		{"nil place id", models.PreferenceRequest{Place: ptr(uuid.Nil), Rating: ptr(1)}, []string{"place"}},
		{"empty", models.PreferenceRequest{}, []string{"place", "rating"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewPreferenceValidator().Validate(context.Background(), &tt.req)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantFields, verr.FieldNames())
		})
	}
}

func TestPreferenceValidator_Messages(t *testing.T) {
	err := NewPreferenceValidator().Validate(context.Background(), models.PreferenceRequest{})

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{"place": "place is required", "rating": "rating is required"}, verr.FieldMessages())
}

func TestActivityPreferenceValidator(t *testing.T) {
	activityID := uuid.New()

	tests := []struct {
		name       string
		req        any
		wantFields map[string]string
		wantErr    error
	}{
		{name: "valid", req: models.ActivityPreferenceRequest{Activity: &activityID, Rating: ptr(2)}},
		{name: "negative rating is valid", req: &models.ActivityPreferenceRequest{Activity: &activityID, Rating: ptr(-1)}},
		{
			name:       "nil activity id",
			req:        models.ActivityPreferenceRequest{Activity: ptr(uuid.Nil), Rating: ptr(1)},
			wantFields: map[string]string{"activity": "activity is required"},
		},
		{
			name:       "empty",
			req:        models.ActivityPreferenceRequest{},
			wantFields: map[string]string{"activity": "activity is required", "rating": "rating is required"},
		},
		{name: "place payload", req: models.PreferenceRequest{}, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewActivityPreferenceValidator().Validate(context.Background(), tt.req)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantFields == nil:
				assert.NoError(t, err)
			default:
				var verr *Error
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tt.wantFields, verr.FieldMessages())
			}
		})
	}
}

func TestError_Helpers(t *testing.T) {
	err := NewError("boom")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, err.FieldMessages())
	assert.Empty(t, err.FieldNames())

	ferr := NewFieldError("name", "taken")
	assert.Equal(t, "taken", ferr.Error())
	assert.Equal(t, map[string]string{"name": "taken"}, ferr.FieldMessages())
}
