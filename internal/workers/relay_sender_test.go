// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelaySender_Send(t *testing.T) {
	n := models.PasswordResetNotification{
		UserID:   uuid.New(),
		Username: "maria",
		Email:    "maria@example.com",
		Link:     "https://tourism.example.com/reset-password/uid/token/",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var msg relayMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, relayMessage{To: n.Email, Username: n.Username, Subject: resetSubject, Link: n.Link}, msg)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	err := NewRelaySender(srv.URL+"/send", logger.Nop()).Send(context.Background(), n)
	require.NoError(t, err)
}

func TestRelaySender_Rejected(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantCalls int32
		wantMsg   string
	}{
		{"client error is not retried", http.StatusBadRequest, "invalid recipient", 1, "http 400: invalid recipient"},
		{"empty body falls back to status text", http.StatusUnprocessableEntity, "", 1, "http 422: Unprocessable Entity"},
		{"server error is retried", http.StatusBadGateway, "upstream down", relayRetryCount + 1, "http 502: upstream down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := NewRelaySender(srv.URL, logger.Nop()).Send(context.Background(), notification("maria@example.com"))

			require.ErrorIs(t, err, ErrRelayRejected)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestRelaySender_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewRelaySender(url, logger.Nop()).Send(context.Background(), notification("maria@example.com"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRelayRejected)
	assert.Contains(t, err.Error(), "mail relay request")
}

func TestNewSender(t *testing.T) {
	assert.IsType(t, &LogSender{}, NewSender("", logger.Nop()))
	assert.IsType(t, &RelaySender{}, NewSender("http://relay.internal/send", logger.Nop()))
}
