package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/geo-locations/internal/logger"
	"github.com/MKhiriev/geo-locations/internal/utils"
)

// withRecovery turns a panic in a downstream handler into a generic 500
// response. The panic value and stack are logged.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic while handling request")

			utils.WriteMessage(w, internalErrorMessage, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
