package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/geo-locations/internal/store"
	"github.com/MKhiriev/geo-locations/internal/utils"
	"github.com/MKhiriev/geo-locations/internal/validators"
	"github.com/MKhiriev/geo-locations/models"
)

// LocationServiceWrapper defines middleware composition for LocationService.
// Implementations wrap an existing LocationService to add behavior such as
// logging or validating.
type LocationServiceWrapper interface {
	Wrap(LocationService) LocationService // returns a decorated LocationService applying additional behavior
}

// LocationValidationService validates requests before they reach the wrapped
// LocationService. A malformed location id is reported as
// store.ErrLocationNotFound, the same as an unknown one.
type LocationValidationService struct {
	inner     LocationService
	validator validators.Validator
}

func NewLocationValidationService(validator validators.Validator) LocationServiceWrapper {
	return &LocationValidationService{
		validator: validator,
	}
}

func (v *LocationValidationService) ListLocations(ctx context.Context) ([]models.Location, error) {
	return v.inner.ListLocations(ctx)
}

func (v *LocationValidationService) CreateLocation(ctx context.Context, request models.CreateLocationRequest) (models.Location, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Location{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateLocation(ctx, request)
}

func (v *LocationValidationService) GetLocation(ctx context.Context, locationID string) (models.Location, error) {
	if !utils.IsValidID(locationID) {
		return models.Location{}, store.ErrLocationNotFound
	}

	return v.inner.GetLocation(ctx, locationID)
}

func (v *LocationValidationService) AddComment(ctx context.Context, comment models.NewComment) (models.Comments, error) {
	if err := v.validate(ctx, comment); err != nil {
		return nil, err
	}

	return v.inner.AddComment(ctx, comment)
}

func (v *LocationValidationService) AddImages(ctx context.Context, request models.AddImagesRequest) (models.Location, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.Location{}, err
	}

	return v.inner.AddImages(ctx, request)
}

func (v *LocationValidationService) Wrap(wrapper LocationService) LocationService {
	v.inner = wrapper
	return v
}

// validate checks the target location id first so that a malformed id is a
// not-found error regardless of the rest of the request.
func (v *LocationValidationService) validate(ctx context.Context, request any) error {
	err := v.validator.Validate(ctx, request, validators.FieldLocationID)
	if errors.Is(err, validators.ErrInvalidLocationID) {
		return store.ErrLocationNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err = v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return nil
}
