package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/geo-locations/internal/config"
	"github.com/MKhiriev/geo-locations/internal/logger"
	"github.com/MKhiriev/geo-locations/internal/service"
	"github.com/MKhiriev/geo-locations/internal/utils"
	"github.com/MKhiriev/geo-locations/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		parseCalled bool
		wantMessage string
	}{
		{name: "no header", header: "", wantMessage: noTokenMessage},
		{name: "scheme only", header: "Bearer", wantMessage: tokenNotValidMessage},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantMessage: tokenNotValidMessage},
		{name: "extra parts", header: "Bearer a b", wantMessage: tokenNotValidMessage},
		{name: "rejected token", header: "Bearer expired", parseCalled: true, wantMessage: tokenNotValidMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, config.Server{})
			if tt.parseCalled {
				m.auth.EXPECT().ParseToken(gomock.Any(), "expired").
					Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			rr := executeAuth(h, tt.header, next)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr.Body))
			assert.False(t, nextCalled)
		})
	}
}

func TestAuth_StoresUserIDInContext(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: testUserID}, nil)

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		gotUserID, ok = utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusTeapot)
	})

	rr := executeAuth(h, "bearer "+testToken, next)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, testUserID, gotUserID)
}
