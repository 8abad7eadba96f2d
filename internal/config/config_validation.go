// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied to fields left empty by every source.
const (
	DefaultTokenIssuer           = "popayan-tourism"
	DefaultTokenDuration         = 24 * time.Hour
	DefaultPasswordResetTimeout  = 72 * time.Hour
	DefaultHTTPAddress           = "localhost:8080"
	DefaultRequestTimeout        = 30 * time.Second
	DefaultShutdownTimeout       = 10 * time.Second
	DefaultNotificationQueueSize = 100
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordResetKey == "" {
		cfg.App.PasswordResetKey = cfg.App.TokenSignKey
	}
	if cfg.App.PasswordResetTimeout == 0 {
		cfg.App.PasswordResetTimeout = DefaultPasswordResetTimeout
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Workers.NotificationQueueSize == 0 {
		cfg.Workers.NotificationQueueSize = DefaultNotificationQueueSize
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 || cfg.App.PasswordResetTimeout < 0 {
		return fmt.Errorf("%w: durations must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Workers.NotificationQueueSize < 0 {
		return fmt.Errorf("%w: queue size must not be negative", ErrInvalidWorkerConfigs)
	}

	return nil
}
