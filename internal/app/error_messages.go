// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// tourism server handlers, services and validators.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place keeps the API wording
// consistent.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNotFound is returned when a place is missing or hidden from the actor.
	MsgNotFound = "Not found."

	// MsgForbidden is returned when the actor lacks permission.
	MsgForbidden = "You do not have permission to perform this action."

	// MsgValidationFailed is the top-level message of field-level errors.
	MsgValidationFailed = "validation failed"

	// MsgMethodNotAllowed is returned by the method check middleware.
	MsgMethodNotAllowed = "method not allowed"
)

// Cultural place outcomes.
const (
	MsgPlaceCreated            = "Cultural place created successfully."
	MsgPlaceUpdated            = "Cultural place updated successfully."
	MsgPlaceDeactivated        = "Cultural place deactivated successfully."
	MsgPlaceAlreadyDeactivated = "Cultural place is already deactivated."
	MsgPlaceNameTaken          = "cultural place with this name already exists."
)

// Authentication and password reset outcomes.
const (
	MsgCredentialsRequired  = "Username and password are required"
	MsgInvalidCredentials   = "Invalid credentials"
	MsgEmailRequired        = "Email is required"
	MsgUserNotFound         = "User with this email does not exist"
	MsgResetLinkSent        = "Password reset link sent"
	MsgInvalidResetLink     = "Invalid reset link"
	MsgInvalidToken         = "Invalid or expired token"
	MsgPasswordRequired     = "Password is required"
	MsgPasswordLength       = "Password must be between 8 and 128 characters"
	MsgPasswordHasBeenReset = "Password has been reset"
)

// Validation messages.
const (
	MsgOpeningHoursNotObject = "The opening_hours field must be a JSON object."
	MsgOpeningHoursBadDay    = "Not a valid day: %s. Valid days are: %s."
	MsgOpeningHoursBadFormat = "Hours must follow the format 'HH:MM-HH:MM' for %s: %s."
	MsgOpeningHoursOrder     = "The opening hour must be less than the closing hour."
	MsgTooYoung              = "You must be at least 12 years old"
	MsgTooOld                = "Age cannot be more than 100 years"
	MsgUsernameExists        = "Username already exists"
	MsgEmailExists           = "Email already exists"
	MsgRatingRequired        = "rating is required"
	MsgPlaceRequired         = "place is required"
	MsgActivityRequired      = "activity is required"
)
