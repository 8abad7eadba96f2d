// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/popayan-tourism/internal/validators"
)

var (
	// ErrValidation is matched by every field-level validation failure,
	// including *validators.Error values.
	ErrValidation = validators.ErrValidation

	ErrForbidden          = errors.New("you do not have permission to perform this action")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyDeactivated = errors.New("cultural place is already deactivated")
	ErrUnauthenticated    = errors.New("authentication credentials were not provided")
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrActorNotFound is returned by the password reset flow when the uid
	// does not decode to an existing user.
	ErrActorNotFound   = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrMissingPassword = errors.New("password is required")
)

var ErrVersionIsNotSpecified = errors.New("application version is not specified")
