package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-file-drop/internal/config"
)

func TestUpload_ThenDownloadFromShared(t *testing.T) {
	s := newTestServer(t)
	pdf := []byte{0x25, 0x50, 0x44, 0x46}

	rec := s.do(newUploadRequest(t, formField{fileName: "report.pdf", content: pdf}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "File uploaded successfully!", rec.Body.String())

	stored, err := os.ReadFile(filepath.Join(s.uploadDir, "report.pdf"))
	require.NoError(t, err)
	assert.Equal(t, pdf, stored)

	// uploads never become downloadable on their own
	rec = s.do(httptest.NewRequest(http.MethodGet, "/file/report.pdf", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	s.writeShared(t, "report.pdf", stored)

	rec = s.do(httptest.NewRequest(http.MethodGet, "/file/report.pdf", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pdf, rec.Body.Bytes())
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="report.pdf"`, rec.Header().Get("Content-Disposition"))
}

func TestUpload_Authorization(t *testing.T) {
	tests := []struct {
		name    string
		header  []string
		wantMsg string
	}{
		{name: "absent", header: nil, wantMsg: "Missing Authorization header"},
		{name: "empty", header: []string{""}, wantMsg: "Invalid API key"},
		{name: "wrong", header: []string{"wrongkey"}, wantMsg: "Invalid API key"},
		{name: "bearer prefix", header: []string{"Bearer " + testAPIKey}, wantMsg: "Invalid API key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			req := newUploadRequest(t, formField{fileName: "a.txt", content: []byte("x")})
			req.Header.Del("Authorization")
			if tt.header != nil {
				req.Header["Authorization"] = tt.header
			}

			rec := s.do(req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantMsg, rec.Body.String())

			// rejected before the upload location is even prepared
			_, err := os.Stat(s.uploadDir)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestUpload_Validation(t *testing.T) {
	tests := []struct {
		name     string
		fields   []formField
		wantCode int
		wantMsg  string
	}{
		{
			name:     "no extension",
			fields:   []formField{{fileName: "README", content: []byte("x")}},
			wantCode: http.StatusBadRequest,
			wantMsg:  "File has no extension",
		},
		{
			name:     "leading dot only",
			fields:   []formField{{fileName: ".txt", content: []byte("x")}},
			wantCode: http.StatusBadRequest,
			wantMsg:  "File has no extension",
		},
		{
			name:     "extension not allowed",
			fields:   []formField{{fileName: "run.exe", content: []byte("x")}},
			wantCode: http.StatusBadRequest,
			wantMsg:  "File type not allowed",
		},
		{
			name:     "empty extension",
			fields:   []formField{{fileName: "file.", content: []byte("x")}},
			wantCode: http.StatusBadRequest,
			wantMsg:  "File type not allowed",
		},
		{
			name:     "upper case extension",
			fields:   []formField{{fileName: "photo.PNG", content: []byte("x")}},
			wantCode: http.StatusBadRequest,
			wantMsg:  "File type not allowed",
		},
		{
			name:     "field without filename falls back to upload.bin",
			fields:   []formField{{content: []byte("x")}},
			wantCode: http.StatusBadRequest,
			wantMsg:  "File type not allowed",
		},
		{
			name:     "backslash in name",
			fields:   []formField{{fileName: `a\b.txt`, content: []byte("x")}},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid file name",
		},
		{
			name:     "quote in name",
			fields:   []formField{{fileName: `a".txt`, content: []byte("x")}},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid file name",
		},
		{
			name:     "zero fields",
			fields:   nil,
			wantCode: http.StatusOK,
			wantMsg:  "File uploaded successfully!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.do(newUploadRequest(t, tt.fields...))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMsg, rec.Body.String())
		})
	}
}

func TestUpload_PartialEffect(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(newUploadRequest(t,
		formField{fileName: "a.txt", content: []byte("first")},
		formField{fileName: "b.exe", content: []byte("second")},
		formField{fileName: "c.txt", content: []byte("third")},
	))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "File type not allowed", rec.Body.String())

	got, err := os.ReadFile(filepath.Join(s.uploadDir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(got))

	_, err = os.Stat(filepath.Join(s.uploadDir, "b.exe"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(s.uploadDir, "c.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestUpload_MultipleFilesAndOverwrite(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(newUploadRequest(t,
		formField{fileName: "a.txt", content: []byte("one")},
		formField{fileName: "b.png", content: []byte{0x89, 0x50}},
		formField{fileName: "a.txt", content: []byte("two")},
	))
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := os.ReadFile(filepath.Join(s.uploadDir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))

	got, err = os.ReadFile(filepath.Join(s.uploadDir, "b.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, got)
}

func TestUpload_EmptyBodyIsStored(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(newUploadRequest(t, formField{fileName: "empty.txt"}))
	require.Equal(t, http.StatusOK, rec.Code)

	info, err := os.Stat(filepath.Join(s.uploadDir, "empty.txt"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestUpload_AllowUnsafeNames(t *testing.T) {
	s := newTestServer(t, func(cfg *config.StructuredConfig) {
		cfg.Upload.AllowUnsafeNames = true
	})

	rec := s.do(newUploadRequest(t, formField{fileName: `a".txt`, content: []byte("x")}))
	require.Equal(t, http.StatusOK, rec.Code)

	_, err := os.Stat(filepath.Join(s.uploadDir, `a".txt`))
	assert.NoError(t, err)
}

func TestUpload_SerializedWrites(t *testing.T) {
	s := newTestServer(t, func(cfg *config.StructuredConfig) {
		cfg.Upload.SerializeWrites = true
	})

	rec := s.do(newUploadRequest(t, formField{fileName: "a.txt", content: []byte("x")}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpload_CustomAllowList(t *testing.T) {
	s := newTestServer(t, func(cfg *config.StructuredConfig) {
		cfg.Upload.AllowedExtensions = []string{"csv"}
	})

	rec := s.do(newUploadRequest(t, formField{fileName: "data.csv", content: []byte("a,b")}))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(newUploadRequest(t, formField{fileName: "notes.txt", content: []byte("x")}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_ServerErrors(t *testing.T) {
	t.Run("upload location cannot be created", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

		s := newTestServer(t, func(cfg *config.StructuredConfig) {
			cfg.Storage.Files.UploadDir = filepath.Join(blocker, "upload")
		})

		rec := s.do(newUploadRequest(t, formField{fileName: "a.txt", content: []byte("x")}))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Server error", rec.Body.String())
	})

	t.Run("target name is a directory", func(t *testing.T) {
		s := newTestServer(t)
		require.NoError(t, os.MkdirAll(filepath.Join(s.uploadDir, "taken.txt"), 0o755))

		rec := s.do(newUploadRequest(t,
			formField{fileName: "taken.txt", content: []byte("x")},
			formField{fileName: "later.txt", content: []byte("y")},
		))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to create file", rec.Body.String())

		_, err := os.Stat(filepath.Join(s.uploadDir, "later.txt"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestUpload_InvalidMultipart(t *testing.T) {
	t.Run("not multipart", func(t *testing.T) {
		s := newTestServer(t)
		req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("plain"))
		req.Header.Set("Content-Type", "text/plain")
		req.Header.Set("Authorization", testAPIKey)

		rec := s.do(req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid multipart body", rec.Body.String())
	})

	t.Run("truncated body", func(t *testing.T) {
		s := newTestServer(t)
		body := "--XYZ\r\nContent-Disposition: form-data; name=\"file\"; filename=\"a.txt\"\r\n\r\nno closing boundary"
		req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(body))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=XYZ")
		req.Header.Set("Authorization", testAPIKey)

		rec := s.do(req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid multipart body", rec.Body.String())
	})
}

func TestUpload_FileNameIsTakenVerbatim(t *testing.T) {
	tests := []struct {
		name      string
		fileName  string
		wantCode  int
		wantMsg   string
		notStored []string
	}{
		{
			name:      "parent directory",
			fileName:  "../escape.txt",
			wantCode:  http.StatusBadRequest,
			wantMsg:   "Invalid file name",
			notStored: []string{"escape.txt", filepath.Join("..", "escape.txt")},
		},
		{
			name:      "sub directory",
			fileName:  "sub/x.txt",
			wantCode:  http.StatusBadRequest,
			wantMsg:   "Invalid file name",
			notStored: []string{"x.txt", filepath.Join("sub", "x.txt")},
		},
		{
			name:     "disallowed extension is reported before the path",
			fileName: "../run.exe",
			wantCode: http.StatusBadRequest,
			wantMsg:  "File type not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.do(newUploadRequest(t, formField{fileName: tt.fileName, content: []byte("x")}))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMsg, rec.Body.String())
			for _, name := range tt.notStored {
				_, err := os.Stat(filepath.Join(s.uploadDir, name))
				assert.True(t, os.IsNotExist(err), name)
			}
		})
	}
}

func TestUpload_AllowUnsafeNames_UsesPathAsSent(t *testing.T) {
	allowUnsafe := func(cfg *config.StructuredConfig) {
		cfg.Upload.AllowUnsafeNames = true
	}

	t.Run("missing sub directory", func(t *testing.T) {
		s := newTestServer(t, allowUnsafe)

		rec := s.do(newUploadRequest(t, formField{fileName: "sub/x.txt", content: []byte("x")}))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to create file", rec.Body.String())
		_, err := os.Stat(filepath.Join(s.uploadDir, "x.txt"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("parent directory", func(t *testing.T) {
		s := newTestServer(t, allowUnsafe)

		rec := s.do(newUploadRequest(t, formField{fileName: "../escape.txt", content: []byte("out")}))

		require.Equal(t, http.StatusOK, rec.Code)
		got, err := os.ReadFile(filepath.Join(filepath.Dir(s.uploadDir), "escape.txt"))
		require.NoError(t, err)
		assert.Equal(t, "out", string(got))
		_, err = os.Stat(filepath.Join(s.uploadDir, "escape.txt"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestUpload_EmptyFileNameIsNotDefaulted(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(newRawUploadRequest(t, `form-data; name="file"; filename=""`, "x", false))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "File has no extension", rec.Body.String())
	_, err := os.Stat(filepath.Join(s.uploadDir, "upload.bin"))
	assert.True(t, os.IsNotExist(err))
}

func TestUpload_NameCheckedBeforeBodyIsRead(t *testing.T) {
	t.Run("disallowed name with broken body", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(newRawUploadRequest(t, `form-data; name="file"; filename="run.exe"`, "no closing boundary", true))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "File type not allowed", rec.Body.String())
	})

	t.Run("allowed name with broken body", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(newRawUploadRequest(t, `form-data; name="file"; filename="a.txt"`, "no closing boundary", true))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid multipart body", rec.Body.String())
	})

	t.Run("malformed disposition", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(newRawUploadRequest(t, `form-data; filename=a/b.txt`, "x", false))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid multipart body", rec.Body.String())
	})
}
