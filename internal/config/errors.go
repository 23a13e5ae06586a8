// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates a missing shared upload secret.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an unknown backend, missing
	// locations, or upload and shared locations that are not disjoint.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidUploadConfigs indicates an empty allow-list or an entry that
	// is empty or contains a dot.
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
