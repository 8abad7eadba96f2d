// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/models"
)

// drainTimeout bounds the delivery of links still queued at shutdown.
const drainTimeout = 5 * time.Second

// ResetMailer queues password reset links and delivers them through a
// Sender on its own goroutine.
type ResetMailer struct {
	queue  chan models.PasswordResetNotification
	sender Sender

	mu     sync.RWMutex
	closed bool

	logger *logger.Logger
}

func NewResetMailer(sender Sender, queueSize int, logger *logger.Logger) *ResetMailer {
	return &ResetMailer{
		queue:  make(chan models.PasswordResetNotification, max(queueSize, 1)),
		sender: sender,
		logger: logger,
	}
}

// Enqueue never blocks: it fails with ErrQueueFull when the queue is at
// capacity and with ErrMailerClosed once Run has started shutting down.
func (m *ResetMailer) Enqueue(ctx context.Context, notification models.PasswordResetNotification) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return ErrMailerClosed
	}

	select {
	case m.queue <- notification:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("%w: capacity %d", ErrQueueFull, cap(m.queue))
	}
}

// Run delivers queued links until ctx is cancelled, then flushes what is
// left in the queue within drainTimeout. The mailer refuses new links
// before the flush starts, so nothing accepted is left behind.
func (m *ResetMailer) Run(ctx context.Context) {
	m.logger.Info().Int("queue_size", cap(m.queue)).Msg("reset mailer started")

	for {
		select {
		case <-ctx.Done():
			m.close()
			m.drain(ctx)
			m.logger.Info().Msg("reset mailer stopped")
			return
		case notification := <-m.queue:
			m.send(ctx, notification)
		}
	}
}

func (m *ResetMailer) close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
}

func (m *ResetMailer) drain(ctx context.Context) {
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
	defer cancel()

	for {
		select {
		case notification := <-m.queue:
			m.send(drainCtx, notification)
		default:
			return
		}
	}
}

func (m *ResetMailer) send(ctx context.Context, notification models.PasswordResetNotification) {
	if err := m.sender.Send(ctx, notification); err != nil {
		m.logger.Err(err).Str("user_id", notification.UserID.String()).Msg("failed to send password reset link")
		return
	}
	m.logger.Debug().Str("user_id", notification.UserID.String()).Msg("password reset link sent")
}

// LogSender writes reset links to the log instead of mailing them. It is
// the sender used when no mail relay is configured.
type LogSender struct {
	logger *logger.Logger
}

func NewLogSender(logger *logger.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, notification models.PasswordResetNotification) error {
	s.logger.Info().
		Str("user_id", notification.UserID.String()).
		Str("email", notification.Email).
		Str("link", notification.Link).
		Msg("password reset link")
	return nil
}
