package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-file-drop/internal/config"
)

// appInfoService answers GET /version with the version fixed at startup.
type appInfoService struct {
	version string
}

// NewAppInfoService returns [ErrVersionIsNotSpecified] when cfg.Version is
// blank. Surrounding whitespace is dropped.
func NewAppInfoService(cfg config.App) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
