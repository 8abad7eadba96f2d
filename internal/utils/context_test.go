// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/google/uuid"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestActorCtxKey(t *testing.T) {
	if ActorCtxKey.String() != "actor" {
		t.Errorf("expected 'actor', got '%s'", ActorCtxKey.String())
	}
}

func TestGetActorFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ActorCtxKey, "ana")

	if _, ok := GetActorFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestWithActor(t *testing.T) {
	actor := models.User{UserID: uuid.New(), Username: "ana", IsSuperuser: true}
	ctx := WithActor(context.Background(), actor)

	got, ok := GetActorFromContext(ctx)
	if !ok {
		t.Fatal("expected actor in context")
	}
	if got.UserID != actor.UserID || got.Username != "ana" || !got.IsSuperuser {
		t.Errorf("unexpected actor: %+v", got)
	}
}

func TestGetActorFromContext_Missing(t *testing.T) {
	if _, ok := GetActorFromContext(context.Background()); ok {
		t.Fatal("expected ok=false, got true")
	}
}
