package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/geo-locations/internal/logger"
	"github.com/MKhiriev/geo-locations/internal/service"
	"github.com/MKhiriev/geo-locations/internal/store"
	"github.com/MKhiriev/geo-locations/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrUserAlreadyExists: http.StatusBadRequest,
	store.ErrLocationNotFound:  http.StatusNotFound,
	store.ErrImageNotFound:     http.StatusNotFound,
	store.ErrInvalidImageName:  http.StatusNotFound,

	ErrInvalidJSON:          http.StatusBadRequest,
	ErrInvalidMultipartForm: http.StatusBadRequest,
	ErrRequestTooLarge:      http.StatusRequestEntityTooLarge,
}

// errorMessageMap holds fixed response messages. Errors mapped to a 4xx
// status without an entry here are answered with their own text.
var errorMessageMap = map[error]string{
	service.ErrInvalidCredentials:      invalidCredentials,
	service.ErrTokenIsExpiredOrInvalid: tokenNotValidMessage,
	store.ErrLocationNotFound:          locationNotFoundMessage,
	store.ErrImageNotFound:             imageNotFoundMessage,
	store.ErrInvalidImageName:          imageNotFoundMessage,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return internalErrorMessage
	}
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return err.Error()
}

// writeError answers the request with the status mapped from err. Server
// errors are logged in full and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, messageFromError(err, status), status)
}
