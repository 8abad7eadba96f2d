// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the tourism server.
//
// It exposes the chi route table, the request handlers and the middleware
// chain: trace ids, access logging, gzip and bearer authentication. Service
// errors are translated into status codes and JSON bodies in exactly one
// place, writeError, before they reach the client.
package http
