// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

const (
	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] so that
// database interactions carry the request trace id.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns the stored row.
//
// Error handling:
//   - unique_violation on username → [ErrUsernameTaken].
//   - unique_violation on email → [ErrEmailTaken].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.UserID, user.Username, user.Email, user.Password, user.DateOfBirth, user.IsSuperuser, user.DateJoined)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			if postgresConstraint(err) == emailConstraint {
				return models.User{}, ErrEmailTaken
			}
			return models.User{}, ErrUsernameTaken
		case "":
			return models.User{}, err
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return created, nil
}

// FindUserByID returns [ErrUserNotFound] when no row matches id.
func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

// FindUserByUsername returns [ErrUserNotFound] when no row matches username.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByEmail returns [ErrUserNotFound] when no row matches email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, key any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.retryRead(ctx, func() error {
		var scanErr error
		found, scanErr = scanUser(r.db.QueryRowContext(ctx, query, key))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Debug().Str("func", funcName).Any("key", key).Msg("user not found")
			return models.User{}, err
		}
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, err
	}

	return found, nil
}

// UpdateLastLogin stores the time of a successful login.
func (r *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateLastLogin, id, at)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLastLogin").Str("user_id", id.String()).Msg("error updating last login")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrUserNotFound)
}

// UpdatePassword swaps the password hash only while the stored hash equals
// oldHash, so a password reset link can be consumed at most once.
func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, oldHash, newHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updatePassword, id, oldHash, newHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Str("user_id", id.String()).Msg("error updating password")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = requireAffected(result, ErrPasswordChanged); err != nil {
		log.Warn().Str("func", "*userRepository.UpdatePassword").Str("user_id", id.String()).Msg("password hash changed before update")
		return err
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		lastLogin sql.NullTime
	)

	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.DateOfBirth,
		&user.IsSuperuser,
		&lastLogin,
		&user.DateJoined,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		if postgresError(err) != "" {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLogin = &t
	}

	return user, nil
}

// requireAffected returns notFound when the statement touched no rows.
func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
