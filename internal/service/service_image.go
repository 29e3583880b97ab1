package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"

	"github.com/MKhiriev/geo-locations/internal/logger"
	"github.com/MKhiriev/geo-locations/internal/store"
	"github.com/MKhiriev/geo-locations/internal/utils"
)

const defaultImageContentType = "application/octet-stream"

type imageService struct {
	images store.ImageStorage
	logger *logger.Logger
}

func NewImageService(images store.ImageStorage, logger *logger.Logger) ImageService {
	return &imageService{
		images: images,
		logger: logger,
	}
}

// OpenImage returns store.ErrImageNotFound for unknown names.
func (s *imageService) OpenImage(ctx context.Context, name string) (io.ReadCloser, string, error) {
	content, err := s.images.Open(ctx, name)
	if err != nil {
		if !errors.Is(err, store.ErrImageNotFound) {
			logger.FromContext(ctx).Err(err).Str("name", name).Msg("error opening image")
		}
		return nil, "", fmt.Errorf("error opening image: %w", err)
	}

	contentType := mime.TypeByExtension(utils.Extension(name))
	if contentType == "" {
		contentType = defaultImageContentType
	}

	return content, contentType, nil
}
