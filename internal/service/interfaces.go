package service

import (
	"context"

	"github.com/MKhiriev/go-file-drop/models"
)

// AuthService checks the shared upload secret.
type AuthService interface {
	// ValidateAPIKey compares key with the configured secret. The caller is
	// responsible for reporting an absent credential with [ErrMissingAPIKey].
	ValidateAPIKey(ctx context.Context, key string) error
}

// UploadService stores uploaded files in the upload location.
type UploadService interface {
	// PrepareUpload makes sure the upload location exists. It must succeed
	// before the first file of a request is accepted.
	PrepareUpload(ctx context.Context) error
	// CheckFileName reports whether a file called name would be accepted,
	// so that callers can reject it before reading its content.
	CheckFileName(ctx context.Context, name string) error
	// UploadFile validates and persists a single file.
	UploadFile(ctx context.Context, file models.StoredFile) error
}

// DownloadService reads files from the shared location.
type DownloadService interface {
	DownloadFile(ctx context.Context, name string) (models.StoredFile, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UploadServiceWrapper defines middleware composition for UploadService.
// Implementations wrap an existing UploadService to add behavior such as
// validation or locking.
type UploadServiceWrapper interface {
	Wrap(UploadService) UploadService
}
