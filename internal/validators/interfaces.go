// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation and enforcement of business
// rules for the tourism server.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation (partial
//     updates validate only the supplied fields).
//   - Error: a validation failure carrying field-keyed details built with
//     ozzo-validation.
//
// Validators are injected into services; transport layers only translate the
// resulting errors.
package validators

import (
	"context"

	"github.com/MKhiriev/popayan-tourism/models"
)

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks and
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// UserFinder is the subset of the user repository needed for uniqueness
// checks during registration.
type UserFinder interface {
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}
