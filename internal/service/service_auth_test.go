// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-file-drop/internal/config"
	"github.com/MKhiriev/go-file-drop/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestAuthService_ValidateAPIKey(t *testing.T) {
	svc := NewAuthService(config.App{APIKey: "mysecretkey123"}, logger.Nop())
	ctx := context.Background()

	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{name: "exact match", key: "mysecretkey123"},
		{name: "empty", key: "", wantErr: ErrInvalidAPIKey},
		{name: "wrong", key: "wrongkey", wantErr: ErrInvalidAPIKey},
		{name: "prefix", key: "mysecretkey12", wantErr: ErrInvalidAPIKey},
		{name: "longer", key: "mysecretkey1234", wantErr: ErrInvalidAPIKey},
		{name: "different case", key: "MYSECRETKEY123", wantErr: ErrInvalidAPIKey},
		{name: "bearer scheme is not stripped", key: "Bearer mysecretkey123", wantErr: ErrInvalidAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ValidateAPIKey(ctx, tt.key)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
