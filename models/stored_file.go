// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the plain data types shared between the storage,
// service and transport layers of go-file-drop.
package models

// Location names one of the two disjoint file namespaces served by the
// application.
type Location string

const (
	// LocationUpload is the write target of POST /upload.
	LocationUpload Location = "upload"

	// LocationShared is the read source of GET /file/{name}.
	LocationShared Location = "shared"
)

// DefaultUploadFileName is used for multipart fields that carry no filename.
const DefaultUploadFileName = "upload.bin"

// StoredFile is a single file kept in one of the storage locations.
//
// Name is the client-supplied filename used verbatim as the key inside the
// location. Files are created or overwritten by uploads and are never deleted
// by the application.
type StoredFile struct {
	Name     string
	Content  []byte
	Location Location
}

// Size returns the content length in bytes.
func (f StoredFile) Size() int {
	return len(f.Content)
}
