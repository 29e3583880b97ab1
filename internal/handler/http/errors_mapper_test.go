package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/geo-locations/internal/service"
	"github.com/MKhiriev/geo-locations/internal/store"
	"github.com/MKhiriev/geo-locations/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", errors.Join(service.ErrInvalidDataProvided, validators.ErrEmptyCommentText), http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusBadRequest},
		{"duplicate user", fmt.Errorf("register: %w", store.ErrUserAlreadyExists), http.StatusBadRequest},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"location missing", fmt.Errorf("get: %w", store.ErrLocationNotFound), http.StatusNotFound},
		{"image missing", store.ErrImageNotFound, http.StatusNotFound},
		{"bad image name", store.ErrInvalidImageName, http.StatusNotFound},
		{"bad json", fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON), http.StatusBadRequest},
		{"too large", ErrRequestTooLarge, http.StatusRequestEntityTooLarge},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	assert.Equal(t, internalErrorMessage, messageFromError(errors.New("pq: deadlock"), http.StatusInternalServerError))
	assert.Equal(t, invalidCredentials, messageFromError(service.ErrInvalidCredentials, http.StatusBadRequest))
	assert.Equal(t, locationNotFoundMessage, messageFromError(fmt.Errorf("x: %w", store.ErrLocationNotFound), http.StatusNotFound))

	validation := errors.Join(service.ErrInvalidDataProvided, validators.ErrEmptyCommentText)
	assert.Equal(t, validation.Error(), messageFromError(validation, http.StatusBadRequest))
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))

	writeError(rr, req, store.ErrImageNotFound)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, imageNotFoundMessage, decodeMessage(t, rr.Body))
}
