// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidPathID is returned when the {id} path segment is not a UUID.
	ErrInvalidPathID = errors.New("path id is not a valid uuid")

	// ErrInvalidBody is returned when the request body is not valid JSON for
	// the endpoint.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrInvalidQuery is returned when a query string filter cannot be parsed.
	ErrInvalidQuery = errors.New("invalid query parameter")
)
