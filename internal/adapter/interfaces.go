// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the command-line client to
// talk to a go-file-drop server.
//
// The primary abstraction is [ServerAdapter]. The package ships an HTTP
// implementation built on resty ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values defined
// in errors.go so that callers can use [errors.Is] (e.g. [ErrUnauthorized] for
// 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-file-drop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with a go-file-drop server.
type ServerAdapter interface {
	// Upload sends files in a single multipart request to POST /upload.
	// Parts are written in the order of files. The configured API key is
	// sent in the Authorization header.
	Upload(ctx context.Context, files ...models.StoredFile) error

	// Download fetches name from GET /file/{name}. The returned file has
	// Location set to [models.LocationShared].
	Download(ctx context.Context, name string) (models.StoredFile, error)

	// Version returns the body of GET /version.
	Version(ctx context.Context) (string, error)
}
