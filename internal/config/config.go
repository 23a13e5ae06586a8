// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-file-drop server. It is populated by merging values from environment
// variables, command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the shared upload secret,
	// version and log level.
	App App `envPrefix:"APP_"`

	// Storage selects the storage backend and the two file locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and server timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Upload holds the rules applied to every uploaded multipart field.
	Upload Upload `envPrefix:"UPLOAD_"`

	// Adapter holds the settings used by the command-line client to reach a
	// running server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// APIKey is the shared secret that must be sent verbatim in the
	// "Authorization" header of every upload request. It is read once at
	// startup and never changes afterwards.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// Version is the version string exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format. An empty host binds all interfaces (":3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ReadHeaderTimeout bounds the time allowed to read request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`
}

// Storage groups the configuration for the file storage backends.
type Storage struct {
	// Backend is either [BackendLocal] or [BackendMinio].
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Files holds the local filesystem locations.
	Files Files `envPrefix:"FILES_"`

	// S3 holds the S3-compatible object storage settings.
	S3 S3 `envPrefix:"S3_"`
}

// Files holds the two disjoint directories used by the local backend.
// Relative paths are resolved against the process working directory.
type Files struct {
	// UploadDir is the write target of POST /upload.
	// Env: STORAGE_FILES_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR"`

	// SharedDir is the read source of GET /file/{name}.
	// Env: STORAGE_FILES_SHARED_DIR
	SharedDir string `env:"SHARED_DIR"`
}

// S3 holds connection settings for the MinIO backend. Each location is a
// separate bucket.
type S3 struct {
	// Endpoint accepts "host:port" or "http(s)://host:port".
	// Env: STORAGE_S3_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Env: STORAGE_S3_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY"`

	// Env: STORAGE_S3_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// Env: STORAGE_S3_UPLOAD_BUCKET
	UploadBucket string `env:"UPLOAD_BUCKET"`

	// Env: STORAGE_S3_SHARED_BUCKET
	SharedBucket string `env:"SHARED_BUCKET"`
}

// Upload holds the validation and write rules for uploaded fields.
type Upload struct {
	// AllowedExtensions is the extension allow-list, without leading dots.
	// Env: UPLOAD_ALLOWED_EXTENSIONS (comma separated)
	AllowedExtensions []string `env:"ALLOWED_EXTENSIONS" envSeparator:","`

	// AllowUnsafeNames disables the rejection of filenames containing path
	// separators, quotes, control characters or dot segments.
	// Env: UPLOAD_ALLOW_UNSAFE_NAMES
	AllowUnsafeNames bool `env:"ALLOW_UNSAFE_NAMES"`

	// SerializeWrites enables a per-filename lock around uploads.
	// Env: UPLOAD_SERIALIZE_WRITES
	SerializeWrites bool `env:"SERIALIZE_WRITES"`
}

// Adapter holds the client-side view of the server address.
type Adapter struct {
	// HTTPAddress is the base URL of the server (e.g. "http://localhost:3000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage backends.
const (
	BackendLocal = "local"
	BackendMinio = "minio"
)

// GetStructuredConfig loads, merges and validates the server configuration
// from the environment, the process command line, the optional JSON file and
// the built-in defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
