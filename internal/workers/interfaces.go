// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background processes of the tourism server.
// Today that is the password reset mailer, which drains a bounded queue of
// reset links and hands each one to a Sender.
package workers

import (
	"context"

	"github.com/MKhiriev/popayan-tourism/models"
)

// Worker is a background process. Run blocks until ctx is cancelled and
// the worker has finished its in-flight work.
//
// Example implementation:
//
//	type ticker struct{}
//
//	func (t *ticker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Sender delivers a password reset link to its owner.
type Sender interface {
	Send(ctx context.Context, notification models.PasswordResetNotification) error
}
