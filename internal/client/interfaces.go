// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-file-drop/internal/adapter"
	"github.com/MKhiriev/go-file-drop/internal/config"
	"github.com/MKhiriev/go-file-drop/internal/logger"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line and blocks until it finishes.
	Run() error
}

// AdapterFactory builds the server transport from the final client
// configuration. [adapter.NewHTTPServerAdapter] satisfies it.
type AdapterFactory func(cfg config.ClientConfig, logger *logger.Logger) (adapter.ServerAdapter, error)
