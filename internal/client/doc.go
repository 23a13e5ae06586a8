// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the go-file-drop command-line client.
//
// [App] wires a cobra command tree (upload, download, version) to an
// [adapter.ServerAdapter] that is built after the persistent flags have been
// parsed.
package client
