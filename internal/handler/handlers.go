package handler

import (
	"github.com/MKhiriev/geo-locations/internal/config"
	"github.com/MKhiriev/geo-locations/internal/handler/http"
	"github.com/MKhiriev/geo-locations/internal/logger"
	"github.com/MKhiriev/geo-locations/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
