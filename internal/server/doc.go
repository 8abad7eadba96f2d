// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the tourism server.
//
// It owns the listener lifecycle: startup, waiting for the caller's context
// to end, and a graceful shutdown bounded by the configured timeout.
package server
