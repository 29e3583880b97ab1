package service

import (
	"context"
	"io"

	"github.com/MKhiriev/geo-locations/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type LocationService interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	CreateLocation(ctx context.Context, request models.CreateLocationRequest) (models.Location, error)
	GetLocation(ctx context.Context, locationID string) (models.Location, error)
	AddComment(ctx context.Context, comment models.NewComment) (models.Comments, error)
	AddImages(ctx context.Context, request models.AddImagesRequest) (models.Location, error)
}

type ImageService interface {
	// OpenImage returns the stored image and its content type.
	OpenImage(ctx context.Context, name string) (io.ReadCloser, string, error)
}

// IDGenerator produces identifiers for new users, locations and comments.
type IDGenerator interface {
	Generate() string
}

// FileNameGenerator produces storage names for uploaded files.
type FileNameGenerator interface {
	Generate(fieldName, originalName string) string
}
