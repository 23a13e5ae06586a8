package store

import (
	"fmt"

	"github.com/MKhiriev/go-file-drop/internal/config"
	"github.com/MKhiriev/go-file-drop/internal/logger"
	"github.com/MKhiriev/go-file-drop/models"
)

// Storages aggregates the two disjoint file locations of the server.
type Storages struct {
	// Uploads is the write target of uploads.
	Uploads FileStorage
	// Shared is the read source of downloads.
	Shared FileStorage
}

// NewStorages builds both storages for the configured backend. No I/O is
// performed: locations are created lazily by [FileStorage.Prepare].
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	switch cfg.Backend {
	case config.BackendLocal:
		uploads, err := NewLocalFileStorage(cfg.Files.UploadDir, models.LocationUpload)
		if err != nil {
			return nil, err
		}
		shared, err := NewLocalFileStorage(cfg.Files.SharedDir, models.LocationShared)
		if err != nil {
			return nil, err
		}
		return &Storages{Uploads: uploads, Shared: shared}, nil

	case config.BackendMinio:
		client, err := NewMinioClient(cfg.S3)
		if err != nil {
			return nil, err
		}
		return &Storages{
			Uploads: NewMinioFileStorage(client, cfg.S3.UploadBucket, models.LocationUpload),
			Shared:  NewMinioFileStorage(client, cfg.S3.SharedBucket, models.LocationShared),
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
