// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

var (
	ErrQueueFull     = errors.New("notification queue is full")
	ErrMailerClosed  = errors.New("reset mailer is not running")
	ErrRelayRejected = errors.New("mail relay rejected the message")
)
