package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-file-drop/internal/logger"
	"github.com/MKhiriev/go-file-drop/internal/service"
	"github.com/MKhiriev/go-file-drop/internal/store"
)

const serverErrorMessage = "Server error"

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first matching target wins.
var errorResponses = []errorResponse{
	{service.ErrMissingAPIKey, http.StatusUnauthorized, "Missing Authorization header"},
	{service.ErrInvalidAPIKey, http.StatusUnauthorized, "Invalid API key"},

	{store.ErrFileNotFound, http.StatusNotFound, "File not found"},

	{service.ErrInvalidFileName, http.StatusBadRequest, "Invalid file name"},
	{service.ErrNoExtension, http.StatusBadRequest, "File has no extension"},
	{service.ErrExtensionNotAllowed, http.StatusBadRequest, "File type not allowed"},
	{ErrInvalidMultipart, http.StatusBadRequest, "Invalid multipart body"},

	{store.ErrCreatingDirectory, http.StatusInternalServerError, serverErrorMessage},
	{store.ErrCreatingFile, http.StatusInternalServerError, "Failed to create file"},
	{store.ErrWritingFile, http.StatusInternalServerError, "Failed to save file"},
	{store.ErrReadingFile, http.StatusInternalServerError, "Failed to read file"},
}

func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, serverErrorMessage
}

// writeError logs err with the request logger and answers with the mapped
// status and a fixed message. The error text never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(message)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(message)
	}

	writeText(w, status, message)
}
