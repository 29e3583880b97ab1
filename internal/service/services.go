package service

import (
	"github.com/MKhiriev/geo-locations/internal/config"
	"github.com/MKhiriev/geo-locations/internal/logger"
	"github.com/MKhiriev/geo-locations/internal/store"
	"github.com/MKhiriev/geo-locations/internal/utils"
	"github.com/MKhiriev/geo-locations/internal/validators"
)

type Services struct {
	AuthService     AuthService
	LocationService LocationService
	ImageService    ImageService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()
	ids := utils.NewUUIDGenerator()

	locationService := NewLocationService(
		storages.LocationRepository,
		storages.UserRepository,
		storages.ImageStorage,
		ids,
		utils.NewFileNameGenerator(),
		logger,
	)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, validator, ids, cfg.App, logger),
		LocationService: NewLocationValidationService(validator).Wrap(locationService),
		ImageService:    NewImageService(storages.ImageStorage, logger),
	}
}
