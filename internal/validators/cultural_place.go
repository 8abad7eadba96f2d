// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/popayan-tourism/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field name constants used to scope cultural place validation. They match
// the JSON names of [models.CulturalPlaceRequest].
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldAddress     = "address"
	FieldImage       = "image"
)

// PlaceFields lists every validated field of a cultural place request.
var PlaceFields = []string{FieldName, FieldDescription, FieldAddress, FieldOpeningHours, FieldImage}

const (
	maxNameLength    = 100
	maxAddressLength = 255
	maxImageLength   = 255
)

type CulturalPlaceValidator struct {
	hours Validator
}

func NewCulturalPlaceValidator(hours Validator) Validator {
	return &CulturalPlaceValidator{hours: hours}
}

// Validate checks a [models.CulturalPlaceRequest]. Without fields every
// field is validated as for creation; with fields only those are checked,
// which is how partial updates are validated.
func (v *CulturalPlaceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CulturalPlaceRequest:
		return v.validateRequest(ctx, value, fields...)
	case *models.CulturalPlaceRequest:
		return v.validateRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CulturalPlaceValidator) validateRequest(ctx context.Context, req models.CulturalPlaceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = PlaceFields
	}

	rules := make([]*validation.FieldRules, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldName:
			rules = append(rules, validation.Field(&req.Name, validation.Required, validation.RuneLength(1, maxNameLength)))
		case FieldDescription:
			rules = append(rules, validation.Field(&req.Description, validation.Required))
		case FieldAddress:
			rules = append(rules, validation.Field(&req.Address, validation.Required, validation.RuneLength(1, maxAddressLength)))
		case FieldOpeningHours:
			rules = append(rules, validation.Field(&req.OpeningHours,
				validation.Required,
				validation.WithContext(func(ctx context.Context, value any) error {
					return v.hours.Validate(ctx, value)
				}),
			))
		case FieldImage:
			rules = append(rules, validation.Field(&req.Image, validation.RuneLength(0, maxImageLength)))
		default:
			return ErrUnknownField
		}
	}

	return fromOzzo(validation.ValidateStructWithContext(ctx, &req, rules...))
}

// SuppliedPlaceFields returns the fields present in a partial update
// request, in [PlaceFields] order.
func SuppliedPlaceFields(req models.CulturalPlaceRequest) []string {
	supplied := make([]string, 0, len(PlaceFields))
	if req.Name != nil {
		supplied = append(supplied, FieldName)
	}
	if req.Description != nil {
		supplied = append(supplied, FieldDescription)
	}
	if req.Address != nil {
		supplied = append(supplied, FieldAddress)
	}
	if req.HasOpeningHours() {
		supplied = append(supplied, FieldOpeningHours)
	}
	if req.Image != nil {
		supplied = append(supplied, FieldImage)
	}
	return slices.Clip(supplied)
}
