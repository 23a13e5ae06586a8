package service

import (
	"context"

	"github.com/MKhiriev/go-file-drop/internal/logger"
	"github.com/MKhiriev/go-file-drop/internal/store"
	"github.com/MKhiriev/go-file-drop/models"
)

// uploadService writes files to the upload storage without any checks;
// validation and locking are layered on top with [UploadServiceWrapper].
type uploadService struct {
	storage store.FileStorage

	logger *logger.Logger
}

func NewUploadService(storage store.FileStorage, logger *logger.Logger) UploadService {
	return &uploadService{
		storage: storage,
		logger:  logger,
	}
}

func (u *uploadService) PrepareUpload(ctx context.Context) error {
	return u.storage.Prepare(ctx)
}

// CheckFileName accepts every name; checks live in the wrappers.
func (u *uploadService) CheckFileName(ctx context.Context, name string) error {
	return nil
}

func (u *uploadService) UploadFile(ctx context.Context, file models.StoredFile) error {
	file.Location = u.storage.Location()
	if err := u.storage.Save(ctx, file); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("file", file.Name).
		Int("size", file.Size()).
		Msg("file uploaded")

	return nil
}
