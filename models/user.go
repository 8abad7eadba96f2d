// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user.
	UserID uuid.UUID `json:"id"`

	// Username is the unique login name of the user.
	Username string `json:"username"`

	// Email is the unique e-mail address of the user. Password reset links
	// are addressed to it.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// It is write-only and never serialized.
	Password string `json:"-"`

	// DateOfBirth is used to enforce the registration age bounds.
	DateOfBirth time.Time `json:"date_of_birth"`

	// IsSuperuser marks a privileged actor that bypasses ownership checks.
	IsSuperuser bool `json:"-"`

	// LastLogin is the time of the last successful login, nil if the user
	// never logged in. It takes part in password reset token signatures.
	LastLogin *time.Time `json:"-"`

	// DateJoined is the timestamp when the user account was created.
	DateJoined time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the payload of the registration endpoint.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DateOfBirth *Date  `json:"date_of_birth"`
}

// LoginRequest is the payload of the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordResetRequest asks for a reset link to be sent to Email.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirmRequest carries the new password for a reset link.
type PasswordResetConfirmRequest struct {
	NewPassword string `json:"new_password"`
}

// PasswordResetNotification is handed to the notification worker once a
// reset link has been generated.
type PasswordResetNotification struct {
	UserID   uuid.UUID
	Username string
	Email    string
	Link     string
}

// UserResponse is the public representation of a registered user.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DateOfBirth Date      `json:"date_of_birth"`
}

// NewUserResponse maps a persisted user to its public representation.
func NewUserResponse(user User) UserResponse {
	return UserResponse{
		ID:          user.UserID,
		Username:    user.Username,
		Email:       user.Email,
		DateOfBirth: Date{Time: user.DateOfBirth},
	}
}
