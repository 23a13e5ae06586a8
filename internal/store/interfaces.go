package store

//go:generate mockgen -source=interfaces.go -destination=../mock/file_storage_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-file-drop/models"
)

// FileStorage is a flat namespace of named byte blobs. Every storage serves
// exactly one [models.Location]; upload and shared locations never overlap.
type FileStorage interface {
	// Prepare makes sure the underlying location exists, creating it when
	// needed. It is safe to call on every request.
	Prepare(ctx context.Context) error
	// Save creates or truncates file.Name and writes file.Content to it.
	Save(ctx context.Context, file models.StoredFile) error
	// Load returns the full content of the named file.
	Load(ctx context.Context, name string) (models.StoredFile, error)
	// Location reports which namespace this storage serves.
	Location() models.Location
}
