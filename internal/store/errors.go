// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is the root of every "row does not exist" error. Entity
	// specific errors below wrap it, so errors.Is(err, ErrNotFound) matches
	// all of them.
	ErrNotFound = errors.New("not found")

	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = fmt.Errorf("user: %w", ErrNotFound)

	// ErrPlaceNotFound is returned when no cultural place matches the lookup
	// key and filter, or when a preference references a missing place.
	ErrPlaceNotFound = fmt.Errorf("cultural place: %w", ErrNotFound)

	// ErrActivityNotFound is returned when no leisure activity matches the
	// lookup key and filter, or when a preference references a missing
	// activity.
	ErrActivityNotFound = fmt.Errorf("leisure activity: %w", ErrNotFound)

	// ErrAlreadyExists is the root of unique constraint violations.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUsernameTaken is returned when a user with the same username exists.
	ErrUsernameTaken = fmt.Errorf("username: %w", ErrAlreadyExists)

	// ErrEmailTaken is returned when a user with the same email exists.
	ErrEmailTaken = fmt.Errorf("email: %w", ErrAlreadyExists)

	// ErrPlaceNameTaken is returned when a cultural place with the same name
	// exists, active or not.
	ErrPlaceNameTaken = fmt.Errorf("cultural place name: %w", ErrAlreadyExists)

	// ErrPasswordChanged is returned by a compare-and-swap password update
	// when the stored hash no longer matches the expected one.
	ErrPasswordChanged = errors.New("password was changed concurrently")

	// ErrPlaceNotActive is returned by conditional updates that only apply
	// to active places.
	ErrPlaceNotActive = errors.New("cultural place is not active")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
