// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "defaults with key are valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing api key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.APIKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unknown backend",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Backend = "ftp" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty shared dir",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Files.SharedDir = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "same upload and shared dir",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Files.UploadDir = "data/"
				cfg.Storage.Files.SharedDir = "./data"
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "minio without credentials",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Backend = BackendMinio
				cfg.Storage.S3 = S3{Endpoint: "minio:9000", UploadBucket: "a", SharedBucket: "b"}
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "minio with same buckets",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Backend = BackendMinio
				cfg.Storage.S3 = S3{Endpoint: "minio:9000", AccessKey: "a", SecretKey: "s", UploadBucket: "x", SharedBucket: "x"}
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "valid minio",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Backend = BackendMinio
				cfg.Storage.S3 = S3{Endpoint: "minio:9000", AccessKey: "a", SecretKey: "s", UploadBucket: "in", SharedBucket: "out"}
			},
		},
		{
			name:    "empty allow-list",
			mutate:  func(cfg *StructuredConfig) { cfg.Upload.AllowedExtensions = nil },
			wantErr: ErrInvalidUploadConfigs,
		},
		{
			name:    "extension with leading dot",
			mutate:  func(cfg *StructuredConfig) { cfg.Upload.AllowedExtensions = []string{".txt"} },
			wantErr: ErrInvalidUploadConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	assert.NoError(t, (&ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://x", RequestTimeout: 1}}).validate())
	assert.ErrorIs(t, (&ClientConfig{}).validate(), ErrInvalidAdapterConfigs)
}
