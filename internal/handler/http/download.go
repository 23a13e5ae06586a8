package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-file-drop/internal/store"
)

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	name, err := fileNameParam(r)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", store.ErrFileNotFound, err))
		return
	}

	file, err := h.services.DownloadService.DownloadFile(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.WriteHeader(http.StatusOK)
	w.Write(file.Content)
}

// fileNameParam returns the percent-decoded {name} segment. chi matches on
// the raw path when the URL carries one, leaving the segment encoded.
func fileNameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}
	return url.PathUnescape(name)
}
