// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"

	"github.com/MKhiriev/popayan-tourism/internal/app"
	"github.com/MKhiriev/popayan-tourism/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// PreferenceValidator requires both the place and the rating of a
// preference upsert. Any integer rating is accepted.
type PreferenceValidator struct{}

func NewPreferenceValidator() Validator {
	return &PreferenceValidator{}
}

func (v *PreferenceValidator) Validate(ctx context.Context, obj any, _ ...string) error {
	var req models.PreferenceRequest
	switch value := obj.(type) {
	case models.PreferenceRequest:
		req = value
	case *models.PreferenceRequest:
		req = *value
	default:
		return ErrUnsupportedType
	}

	return fromOzzo(validation.ValidateStructWithContext(ctx, &req,
		validation.Field(&req.Place, validation.NotNil.Error(app.MsgPlaceRequired), validation.By(nonNilUUID(app.MsgPlaceRequired))),
		validation.Field(&req.Rating, validation.NotNil.Error(app.MsgRatingRequired)),
	))
}

// ActivityPreferenceValidator requires both the activity and the rating of
// an activity preference upsert.
type ActivityPreferenceValidator struct{}

func NewActivityPreferenceValidator() Validator {
	return &ActivityPreferenceValidator{}
}

func (v *ActivityPreferenceValidator) Validate(ctx context.Context, obj any, _ ...string) error {
	var req models.ActivityPreferenceRequest
	switch value := obj.(type) {
	case models.ActivityPreferenceRequest:
		req = value
	case *models.ActivityPreferenceRequest:
		req = *value
	default:
		return ErrUnsupportedType
	}

	return fromOzzo(validation.ValidateStructWithContext(ctx, &req,
		validation.Field(&req.Activity, validation.NotNil.Error(app.MsgActivityRequired), validation.By(nonNilUUID(app.MsgActivityRequired))),
		validation.Field(&req.Rating, validation.NotNil.Error(app.MsgRatingRequired)),
	))
}

func nonNilUUID(msg string) validation.RuleFunc {
	return func(value any) error {
		id, _ := value.(*uuid.UUID)
		if id != nil && *id == uuid.Nil {
			return errors.New(msg)
		}
		return nil
	}
}
