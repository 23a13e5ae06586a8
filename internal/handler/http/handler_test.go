package http

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-file-drop/internal/config"
	"github.com/MKhiriev/go-file-drop/internal/logger"
	"github.com/MKhiriev/go-file-drop/internal/service"
	"github.com/MKhiriev/go-file-drop/internal/store"
)

const testAPIKey = "mysecretkey123"

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testServer is a router backed by real services over temporary
// directories.
type testServer struct {
	router    *chi.Mux
	uploadDir string
	sharedDir string
}

func newTestServer(t *testing.T, mutate ...func(cfg *config.StructuredConfig)) *testServer {
	t.Helper()
	base := t.TempDir()

	cfg := &config.StructuredConfig{
		App: config.App{APIKey: testAPIKey, Version: "test-version"},
		Storage: config.Storage{
			Backend: config.BackendLocal,
			Files: config.Files{
				UploadDir: filepath.Join(base, "upload"),
				SharedDir: filepath.Join(base, "shared"),
			},
		},
		Upload: config.Upload{AllowedExtensions: config.DefaultAllowedExtensions()},
	}
	for _, m := range mutate {
		m(cfg)
	}

	storages, err := store.NewStorages(cfg.Storage, logger.Nop())
	require.NoError(t, err)

	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	return &testServer{
		router:    NewHandler(services, logger.Nop()).Init(),
		uploadDir: cfg.Storage.Files.UploadDir,
		sharedDir: cfg.Storage.Files.SharedDir,
	}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) writeShared(t *testing.T, name string, content []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(s.sharedDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(s.sharedDir, name), content, 0o600))
}

// formField is one multipart field. An empty fileName produces a plain
// form field without a filename parameter.
type formField struct {
	fileName string
	content  []byte
}

func newMultipartBody(t *testing.T, fields ...formField) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	for _, f := range fields {
		var (
			w   io.Writer
			err error
		)
		if f.fileName == "" {
			w, err = mw.CreateFormField("file")
		} else {
			w, err = mw.CreateFormFile("file", f.fileName)
		}
		require.NoError(t, err)
		_, err = w.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return body, mw.FormDataContentType()
}

// newRawUploadRequest sends one part with the given Content-Disposition
// header as is, followed by the closing boundary unless truncated is set.
func newRawUploadRequest(t *testing.T, disposition string, content string, truncated bool) *http.Request {
	t.Helper()
	body := "--XYZ\r\nContent-Disposition: " + disposition + "\r\n\r\n" + content
	if !truncated {
		body += "\r\n--XYZ--\r\n"
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(body))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=XYZ")
	req.Header.Set("Authorization", testAPIKey)
	return req
}

func newUploadRequest(t *testing.T, fields ...formField) *http.Request {
	t.Helper()
	body, contentType := newMultipartBody(t, fields...)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", testAPIKey)
	return req
}
