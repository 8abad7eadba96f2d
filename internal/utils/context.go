// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// password hashing, HTTP response writing, JWT token generation
// and validation, and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/popayan-tourism/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ActorCtxKey is the key used to store the authenticated user in the
// context. The value is of type models.User.
var ActorCtxKey = contextKey("actor")

// WithActor stores the authenticated user in the context.
func WithActor(ctx context.Context, actor models.User) context.Context {
	return context.WithValue(ctx, ActorCtxKey, actor)
}

// GetActorFromContext retrieves the authenticated user from the context.
//
// Example usage:
//
//	actor, ok := utils.GetActorFromContext(r.Context())
//	if !ok {
//	    // request is not authenticated
//	}
func GetActorFromContext(ctx context.Context) (models.User, bool) {
	actor, ok := ctx.Value(ActorCtxKey).(models.User)
	return actor, ok
}
