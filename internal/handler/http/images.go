package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/MKhiriev/geo-locations/internal/logger"
	"github.com/MKhiriev/geo-locations/internal/utils"
	"github.com/MKhiriev/geo-locations/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	imageNameParam = "name"

	// multipartMemory is the part of an upload kept in memory; the rest is
	// spooled to temporary files.
	multipartMemory = 8 << 20
)

func (h *Handler) addImages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	uploads, err := parseImageUploads(r)
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	authorID, _ := utils.GetUserIDFromContext(ctx)
	location, err := h.services.LocationService.AddImages(ctx, models.AddImagesRequest{
		LocationID: chi.URLParam(r, locationIDParam),
		AuthorID:   authorID,
		Images:     uploads,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, location, http.StatusOK)
}

// limitUploadSize caps the request body at the configured upload size.
func (h *Handler) limitUploadSize(next http.Handler) http.Handler {
	if h.maxUploadSize <= 0 {
		return next
	}
	return middleware.RequestSize(h.maxUploadSize)(next)
}

// parseImageUploads reads the files of the images field. Other fields are
// ignored.
func parseImageUploads(r *http.Request) ([]models.ImageUpload, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, maxBytesErr.Limit)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}

	headers := r.MultipartForm.File[models.ImagesFieldName]
	uploads := make([]models.ImageUpload, 0, len(headers))
	for _, header := range headers {
		uploads = append(uploads, imageUpload(header))
	}

	return uploads, nil
}

func imageUpload(header *multipart.FileHeader) models.ImageUpload {
	return models.ImageUpload{
		FieldName:   models.ImagesFieldName,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Open: func() (io.ReadCloser, error) {
			return header.Open()
		},
	}
}

// serveImage streams a stored upload. Seekable content is served with
// range support.
func (h *Handler) serveImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, imageNameParam)

	content, contentType, err := h.services.ImageService.OpenImage(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if seeker, ok := content.(io.ReadSeeker); ok {
		http.ServeContent(w, r, name, time.Time{}, seeker)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err = io.Copy(w, content); err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("name", name).Msg("error streaming image")
	}
}
