package http

import (
	"net/http"

	"github.com/MKhiriev/go-file-drop/internal/service"
)

const authorizationHeader = "Authorization"

// apiKey rejects requests whose "Authorization" header is not the shared
// secret. A header that is present but empty is an invalid key, not a
// missing one.
func (h *Handler) apiKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values := r.Header[authorizationHeader]
		if len(values) == 0 {
			writeError(w, r, service.ErrMissingAPIKey)
			return
		}

		if err := h.services.AuthService.ValidateAPIKey(r.Context(), values[0]); err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
