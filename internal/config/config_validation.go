// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.APIKey == "" {
		return fmt.Errorf("%w: api key is empty", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs)
	}

	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	return cfg.Upload.validate()
}

func (s Storage) validate() error {
	switch s.Backend {
	case BackendLocal:
		if s.Files.UploadDir == "" || s.Files.SharedDir == "" {
			return fmt.Errorf("%w: upload and shared directories are required", ErrInvalidStorageConfigs)
		}
		if filepath.Clean(s.Files.UploadDir) == filepath.Clean(s.Files.SharedDir) {
			return fmt.Errorf("%w: upload and shared directories must differ", ErrInvalidStorageConfigs)
		}
	case BackendMinio:
		if s.S3.Endpoint == "" || s.S3.AccessKey == "" || s.S3.SecretKey == "" {
			return fmt.Errorf("%w: s3 endpoint and credentials are required", ErrInvalidStorageConfigs)
		}
		if s.S3.UploadBucket == "" || s.S3.SharedBucket == "" {
			return fmt.Errorf("%w: upload and shared buckets are required", ErrInvalidStorageConfigs)
		}
		if s.S3.UploadBucket == s.S3.SharedBucket {
			return fmt.Errorf("%w: upload and shared buckets must differ", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, s.Backend)
	}

	return nil
}

func (u Upload) validate() error {
	if len(u.AllowedExtensions) == 0 {
		return fmt.Errorf("%w: allow-list is empty", ErrInvalidUploadConfigs)
	}

	for _, ext := range u.AllowedExtensions {
		if ext == "" || strings.Contains(ext, ".") {
			return fmt.Errorf("%w: bad extension %q", ErrInvalidUploadConfigs, ext)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
