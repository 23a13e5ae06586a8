// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"

	"github.com/MKhiriev/go-file-drop/internal/config"
	"github.com/MKhiriev/go-file-drop/internal/logger"
)

// authService is the concrete implementation of AuthService.
// It holds one process-wide secret that never changes after construction.
type authService struct {
	apiKey []byte

	logger *logger.Logger
}

func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		apiKey: []byte(cfg.APIKey),
		logger: logger,
	}
}

// ValidateAPIKey reports [ErrInvalidAPIKey] unless key equals the secret
// byte for byte. The comparison runs in constant time.
func (a *authService) ValidateAPIKey(ctx context.Context, key string) error {
	if subtle.ConstantTimeCompare([]byte(key), a.apiKey) != 1 {
		logger.FromContext(ctx).Warn().Str("func", "authService.ValidateAPIKey").Msg("invalid api key provided")
		return ErrInvalidAPIKey
	}

	return nil
}
