// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DetailResponse carries a human-readable outcome of a successful operation.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the body of the password-reset endpoints on success.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body written by the HTTP error translator.
// Fields is only present for field-level validation failures.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ResetLinkResponse echoes a verified password-reset link.
type ResetLinkResponse struct {
	UID   string `json:"uid"`
	Token string `json:"token"`
}

// VersionResponse is the body of the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
