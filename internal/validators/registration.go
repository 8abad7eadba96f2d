// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/popayan-tourism/internal/app"
	"github.com/MKhiriev/popayan-tourism/internal/store"
	"github.com/MKhiriev/popayan-tourism/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Registration field names.
const (
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldDateOfBirth = "date_of_birth"
)

// Registration age bounds, inclusive.
const (
	MinAge = 12
	MaxAge = 100
)

// RegistrationValidator checks a [models.RegisterRequest]: field formats,
// age bounds and username/email uniqueness. All violations are collected
// into one [Error] keyed by field name.
type RegistrationValidator struct {
	users UserFinder
	now   func() time.Time
}

func NewRegistrationValidator(users UserFinder) *RegistrationValidator {
	return &RegistrationValidator{users: users, now: time.Now}
}

// WithClock replaces the clock used for age computation.
func (v *RegistrationValidator) WithClock(now func() time.Time) *RegistrationValidator {
	v.now = now
	return v
}

func (v *RegistrationValidator) Validate(ctx context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validate(ctx, value)
	case *models.RegisterRequest:
		return v.validate(ctx, *value)
	default:
		return ErrUnsupportedType
	}
}

func (v *RegistrationValidator) validate(ctx context.Context, req models.RegisterRequest) error {
	err := validation.ValidateStructWithContext(ctx, &req,
		validation.Field(&req.Username,
			validation.Required,
			validation.RuneLength(1, 150),
			validation.WithContext(v.uniqueUsername),
		),
		validation.Field(&req.Email,
			validation.Required,
			is.EmailFormat,
			validation.WithContext(v.uniqueEmail),
		),
		validation.Field(&req.Password,
			validation.Required,
			validation.RuneLength(1, 128),
		),
		validation.Field(&req.DateOfBirth,
			validation.Required,
			validation.By(v.ageInBounds),
		),
	)

	return fromOzzo(err)
}

func (v *RegistrationValidator) ageInBounds(value any) error {
	dob, ok := value.(*models.Date)
	if !ok || dob == nil {
		return nil
	}

	age := Age(dob.Time, v.now())
	switch {
	case age < MinAge:
		return errors.New(app.MsgTooYoung)
	case age > MaxAge:
		return errors.New(app.MsgTooOld)
	}
	return nil
}

func (v *RegistrationValidator) uniqueUsername(ctx context.Context, value any) error {
	username, _ := value.(string)
	if username == "" {
		return nil
	}

	_, err := v.users.FindUserByUsername(ctx, username)
	return uniqueness(err, app.MsgUsernameExists)
}

func (v *RegistrationValidator) uniqueEmail(ctx context.Context, value any) error {
	email, _ := value.(string)
	if email == "" {
		return nil
	}

	_, err := v.users.FindUserByEmail(ctx, email)
	return uniqueness(err, app.MsgEmailExists)
}

// uniqueness maps a repository lookup result to a rule outcome: found means
// taken, not found means free, anything else aborts validation.
func uniqueness(lookupErr error, takenMsg string) error {
	switch {
	case lookupErr == nil:
		return errors.New(takenMsg)
	case errors.Is(lookupErr, store.ErrNotFound):
		return nil
	default:
		return validation.NewInternalError(fmt.Errorf("error checking uniqueness: %w", lookupErr))
	}
}

// Age returns the number of full years between dob and now, decremented
// when the birthday has not yet occurred in the current year.
func Age(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}
