package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-file-drop/internal/logger"
	"github.com/MKhiriev/go-file-drop/internal/store"
	"github.com/MKhiriev/go-file-drop/internal/validators"
	"github.com/MKhiriev/go-file-drop/models"
)

type downloadService struct {
	storage   store.FileStorage
	validator validators.Validator
	checkName bool

	logger *logger.Logger
}

// NewDownloadService returns a DownloadService reading from storage. Unless
// allowUnsafeNames is set, names that could leave the location are reported
// as not found without touching the storage.
func NewDownloadService(storage store.FileStorage, allowUnsafeNames bool, logger *logger.Logger) DownloadService {
	return &downloadService{
		storage:   storage,
		validator: validators.NewFileNameValidator(nil),
		checkName: !allowUnsafeNames,
		logger:    logger,
	}
}

func (d *downloadService) DownloadFile(ctx context.Context, name string) (models.StoredFile, error) {
	if d.checkName {
		if err := d.validator.Validate(ctx, name, validators.FieldName); err != nil {
			logger.FromContext(ctx).Debug().Err(err).Str("file", name).Msg("rejected download name")
			return models.StoredFile{}, fmt.Errorf("%w: %w", store.ErrFileNotFound, err)
		}
	}

	return d.storage.Load(ctx, name)
}
