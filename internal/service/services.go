package service

import (
	"fmt"

	"github.com/MKhiriev/go-file-drop/internal/config"
	"github.com/MKhiriev/go-file-drop/internal/logger"
	"github.com/MKhiriev/go-file-drop/internal/store"
)

type Services struct {
	AuthService     AuthService
	UploadService   UploadService
	DownloadService DownloadService
	AppInfoService  AppInfoService
}

// NewServices wires every service of the server. Uploads are validated
// first and, when configured, serialized per name before being written.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	uploadService := NewUploadService(storages.Uploads, logger)
	if cfg.Upload.SerializeWrites {
		uploadService = NewUploadLockingService().Wrap(uploadService)
	}
	uploadService = NewUploadValidationService(cfg.Upload.AllowedExtensions, cfg.Upload.AllowUnsafeNames).Wrap(uploadService)

	return &Services{
		AuthService:     NewAuthService(cfg.App, logger),
		UploadService:   uploadService,
		DownloadService: NewDownloadService(storages.Shared, cfg.Upload.AllowUnsafeNames, logger),
		AppInfoService:  appInfoService,
	}, nil
}
