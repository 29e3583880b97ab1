package store

import (
	"context"
	"io"

	"github.com/MKhiriev/geo-locations/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a user and returns the stored record.
	// Duplicate username or email yields [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrUserNotFound] when no user has this email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUsernames maps each known user id to its username. Unknown ids are
	// absent from the result.
	FindUsernames(ctx context.Context, userIDs []string) (map[string]string, error)
}

// LocationRepository persists locations together with their embedded
// comments and image references.
type LocationRepository interface {
	CreateLocation(ctx context.Context, location models.Location) (models.Location, error)
	// GetLocations returns all locations in creation order.
	GetLocations(ctx context.Context) ([]models.Location, error)
	GetLocation(ctx context.Context, locationID string) (models.Location, error)
	LocationExists(ctx context.Context, locationID string) (bool, error)
	// PrependComment atomically places comment in front of the location's
	// comments and returns the resulting list.
	PrependComment(ctx context.Context, locationID string, comment models.Comment) (models.Comments, error)
	// AppendImageURLs atomically appends urls to the location's images and
	// returns the updated location.
	AppendImageURLs(ctx context.Context, locationID string, urls []string) (models.Location, error)
}

// ImageStorage stores uploaded image bytes under flat names.
type ImageStorage interface {
	Save(ctx context.Context, name string, contentType string, content io.Reader) error
	// Open returns [ErrImageNotFound] when nothing is stored under name.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Delete removes name. Deleting a missing image is not an error.
	Delete(ctx context.Context, name string) error
}
