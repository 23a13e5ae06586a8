package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/go-file-drop/internal/logger"
	"github.com/MKhiriev/go-file-drop/models"
)

// upload stores every multipart field in client order. Processing stops at
// the first failing field; fields stored before it are kept.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.UploadService.PrepareUpload(ctx); err != nil {
		writeError(w, r, err)
		return
	}

	reader, err := r.MultipartReader()
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipart, err))
		return
	}

	uploaded := 0
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipart, err))
			return
		}

		name, ok, err := partFileName(part)
		if err != nil {
			part.Close()
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipart, err))
			return
		}
		if !ok {
			name = models.DefaultUploadFileName
		}

		if err = h.services.UploadService.CheckFileName(ctx, name); err != nil {
			part.Close()
			writeError(w, r, err)
			return
		}

		content, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: reading %q: %w", ErrInvalidMultipart, name, err))
			return
		}

		if err = h.services.UploadService.UploadFile(ctx, models.StoredFile{Name: name, Content: content}); err != nil {
			writeError(w, r, err)
			return
		}
		uploaded++
	}

	log.Debug().Int("files", uploaded).Msg("upload request completed")
	writeText(w, http.StatusOK, uploadSuccessMessage)
}

// partFileName returns the filename parameter of the part's
// Content-Disposition exactly as sent. ok is false when the parameter is
// absent; an empty filename="" is returned as present.
func partFileName(part *multipart.Part) (name string, ok bool, err error) {
	disposition := part.Header.Get("Content-Disposition")
	if disposition == "" {
		return "", false, nil
	}

	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return "", false, fmt.Errorf("parsing Content-Disposition: %w", err)
	}

	name, ok = params["filename"]
	return name, ok, nil
}
