package http

import (
	"net/http"

	"github.com/MKhiriev/go-file-drop/internal/logger"
	"github.com/MKhiriev/go-file-drop/internal/service"
)

const (
	// Banner is the body of GET /.
	Banner = "FileDrop Server Running"

	uploadSuccessMessage = "File uploaded successfully!"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, Banner)
}

// writeText writes msg as a text/plain body without a trailing newline.
func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(msg))
}
