// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/go-resty/resty/v2"
)

const (
	relayTimeout    = 15 * time.Second
	relayRetryCount = 2
	resetSubject    = "Password reset on Popayán Tourism"
)

type relayMessage struct {
	To       string `json:"to"`
	Username string `json:"username"`
	Subject  string `json:"subject"`
	Link     string `json:"link"`
}

// RelaySender POSTs reset links as JSON to an HTTP mail relay.
type RelaySender struct {
	client *resty.Client
	url    string
	logger *logger.Logger
}

func NewRelaySender(url string, logger *logger.Logger) *RelaySender {
	cli := resty.New().
		SetTimeout(relayTimeout).
		SetRetryCount(relayRetryCount).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})

	return &RelaySender{client: cli, url: url, logger: logger}
}

func (s *RelaySender) Send(ctx context.Context, notification models.PasswordResetNotification) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(relayMessage{
			To:       notification.Email,
			Username: notification.Username,
			Subject:  resetSubject,
			Link:     notification.Link,
		}).
		Post(s.url)
	if err != nil {
		return fmt.Errorf("mail relay request: %w", err)
	}

	if resp.IsError() {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrRelayRejected, resp.StatusCode(), body)
	}

	s.logger.Debug().Int("status", resp.StatusCode()).Str("user_id", notification.UserID.String()).Msg("mail relay accepted reset link")
	return nil
}

// NewSender returns a RelaySender when relayURL is set and a LogSender
// otherwise.
func NewSender(relayURL string, logger *logger.Logger) Sender {
	if relayURL == "" {
		return NewLogSender(logger)
	}
	return NewRelaySender(relayURL, logger)
}
