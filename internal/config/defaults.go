// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied after every other configuration source.
const (
	DefaultHTTPAddress       = ":3000"
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultUploadDir         = "upload"
	DefaultSharedDir         = "shared"
	DefaultVersion           = "dev"
	DefaultLogLevel          = "info"
	DefaultClientAddress     = "http://localhost:3000"
	DefaultClientTimeout     = 30 * time.Second
)

// DefaultAllowedExtensions returns a fresh copy of the default allow-list.
func DefaultAllowedExtensions() []string {
	return []string{"txt", "png", "jpg", "jpeg", "pdf"}
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  DefaultVersion,
			LogLevel: DefaultLogLevel,
		},
		Storage: Storage{
			Backend: BackendLocal,
			Files: Files{
				UploadDir: DefaultUploadDir,
				SharedDir: DefaultSharedDir,
			},
		},
		Server: Server{
			HTTPAddress:       DefaultHTTPAddress,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		Upload: Upload{
			AllowedExtensions: DefaultAllowedExtensions(),
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultClientAddress,
			RequestTimeout: DefaultClientTimeout,
		},
	}
}
