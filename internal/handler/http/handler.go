package http

import (
	"time"

	"github.com/MKhiriev/geo-locations/internal/config"
	"github.com/MKhiriev/geo-locations/internal/logger"
	"github.com/MKhiriev/geo-locations/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	maxUploadSize  int64

	metrics *metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		maxUploadSize:  cfg.MaxUploadSize,
		metrics:        newMetrics(),
		logger:         logger,
	}
}
