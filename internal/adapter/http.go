package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-file-drop/internal/config"
	"github.com/MKhiriev/go-file-drop/internal/logger"
	"github.com/MKhiriev/go-file-drop/internal/utils"
	"github.com/MKhiriev/go-file-drop/models"
	"github.com/go-resty/resty/v2"
)

const (
	multipartParam       = "file"
	multipartContentType = "application/octet-stream"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises the base URL from cfg.Adapter.HTTPAddress and configures the
// request timeout.
//
// Returns an error wrapping [ErrInvalidAddress] if the address is empty or
// cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Adapter.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Adapter.RequestTimeout)

	return &httpServerAdapter{client: client, apiKey: cfg.APIKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [ServerAdapter].
func (h *httpServerAdapter) Upload(ctx context.Context, files ...models.StoredFile) error {
	fields := make([]*resty.MultipartField, 0, len(files))
	for _, file := range files {
		fields = append(fields, &resty.MultipartField{
			Param:       multipartParam,
			FileName:    file.Name,
			ContentType: multipartContentType,
			Reader:      bytes.NewReader(file.Content),
		})
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", h.apiKey).
		SetMultipartFields(fields...).
		Post("/upload")
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().Int("files", len(files)).Msg("files uploaded")
	return nil
}

// Download implements [ServerAdapter].
func (h *httpServerAdapter) Download(ctx context.Context, name string) (models.StoredFile, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		Get("/file/{name}")
	if err != nil {
		return models.StoredFile{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StoredFile{}, err
	}

	return models.StoredFile{
		Name:     name,
		Content:  resp.Body(),
		Location: models.LocationShared,
	}, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
