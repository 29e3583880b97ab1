package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/MKhiriev/geo-locations/internal/logger"
	"github.com/MKhiriev/geo-locations/internal/store"
	"github.com/MKhiriev/geo-locations/models"
)

// UploadsURLPrefix is the public path under which stored images are served.
const UploadsURLPrefix = "/uploads/"

// locationService is the concrete implementation of LocationService.
// Input is expected to be validated by the LocationValidationService wrapper.
type locationService struct {
	locations store.LocationRepository
	users     store.UserRepository
	images    store.ImageStorage

	ids       IDGenerator
	fileNames FileNameGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewLocationService(
	locations store.LocationRepository,
	users store.UserRepository,
	images store.ImageStorage,
	ids IDGenerator,
	fileNames FileNameGenerator,
	logger *logger.Logger,
) LocationService {
	return &locationService{
		locations: locations,
		users:     users,
		images:    images,
		ids:       ids,
		fileNames: fileNames,
		now:       time.Now,
		logger:    logger,
	}
}

// ListLocations returns every location in creation order with owner
// usernames resolved. An empty store yields an empty, non-nil slice.
func (s *locationService) ListLocations(ctx context.Context) ([]models.Location, error) {
	log := logger.FromContext(ctx)

	locations, err := s.locations.GetLocations(ctx)
	if err != nil {
		log.Err(err).Msg("error getting locations")
		return nil, fmt.Errorf("error getting locations: %w", err)
	}
	if locations == nil {
		locations = []models.Location{}
	}

	ownerIDs := make([]string, 0, len(locations))
	for _, location := range locations {
		ownerIDs = append(ownerIDs, location.Owner.UserID)
	}

	usernames, err := s.users.FindUsernames(ctx, distinct(ownerIDs))
	if err != nil {
		log.Err(err).Msg("error resolving location owners")
		return nil, fmt.Errorf("error resolving location owners: %w", err)
	}

	for i := range locations {
		locations[i].Owner.Username = usernames[locations[i].Owner.UserID]
	}

	return locations, nil
}

func (s *locationService) CreateLocation(ctx context.Context, request models.CreateLocationRequest) (models.Location, error) {
	log := logger.FromContext(ctx)

	location := models.Location{
		LocationID:  s.ids.Generate(),
		Owner:       models.UserRef{UserID: request.OwnerID},
		Latitude:    *request.Latitude,
		Longitude:   *request.Longitude,
		Description: request.Description,
		ImageURLs:   models.ImageURLs{},
		Comments:    models.Comments{},
	}

	created, err := s.locations.CreateLocation(ctx, location)
	if err != nil {
		log.Err(err).Str("user_id", request.OwnerID).Msg("error creating location")
		return models.Location{}, fmt.Errorf("error creating location: %w", err)
	}

	log.Info().Str("location_id", created.LocationID).Str("user_id", request.OwnerID).Msg("location created")
	return s.populate(ctx, created)
}

// GetLocation returns the location with owner and comment authors resolved.
func (s *locationService) GetLocation(ctx context.Context, locationID string) (models.Location, error) {
	location, err := s.locations.GetLocation(ctx, locationID)
	if err != nil {
		if !errors.Is(err, store.ErrLocationNotFound) {
			logger.FromContext(ctx).Err(err).Str("location_id", locationID).Msg("error getting location")
		}
		return models.Location{}, fmt.Errorf("error getting location: %w", err)
	}

	return s.populate(ctx, location)
}

// AddComment prepends a new comment and returns the full comment list with
// authors resolved.
func (s *locationService) AddComment(ctx context.Context, newComment models.NewComment) (models.Comments, error) {
	log := logger.FromContext(ctx)

	comment := models.Comment{
		CommentID: s.ids.Generate(),
		Author:    models.UserRef{UserID: newComment.AuthorID},
		Text:      newComment.Text,
		CreatedAt: s.now().UTC(),
	}

	comments, err := s.locations.PrependComment(ctx, newComment.LocationID, comment)
	if err != nil {
		if !errors.Is(err, store.ErrLocationNotFound) {
			log.Err(err).Str("location_id", newComment.LocationID).Msg("error adding comment")
		}
		return nil, fmt.Errorf("error adding comment: %w", err)
	}

	if err = s.resolveAuthors(ctx, comments); err != nil {
		return nil, err
	}

	return comments, nil
}

// AddImages stores every uploaded file and appends the public paths to the
// location in upload order. The location must exist before any file is
// stored. Files already stored are removed when a later step fails.
func (s *locationService) AddImages(ctx context.Context, request models.AddImagesRequest) (models.Location, error) {
	log := logger.FromContext(ctx)

	if len(request.Images) == 0 {
		return s.GetLocation(ctx, request.LocationID)
	}

	exists, err := s.locations.LocationExists(ctx, request.LocationID)
	if err != nil {
		log.Err(err).Str("location_id", request.LocationID).Msg("error checking location")
		return models.Location{}, fmt.Errorf("error checking location: %w", err)
	}
	if !exists {
		return models.Location{}, store.ErrLocationNotFound
	}

	saved := make([]string, 0, len(request.Images))
	urls := make([]string, 0, len(request.Images))
	for _, image := range request.Images {
		name := s.fileNames.Generate(image.FieldName, image.FileName)
		if err = s.saveImage(ctx, name, image); err != nil {
			s.removeImages(ctx, saved)
			log.Err(err).Str("location_id", request.LocationID).Str("file", image.FileName).Msg("error storing image")
			return models.Location{}, fmt.Errorf("%w: %w", ErrStoringImages, err)
		}
		saved = append(saved, name)
		urls = append(urls, path.Join(UploadsURLPrefix, name))
	}

	location, err := s.locations.AppendImageURLs(ctx, request.LocationID, urls)
	if err != nil {
		s.removeImages(ctx, saved)
		log.Err(err).Str("location_id", request.LocationID).Msg("error attaching images")
		return models.Location{}, fmt.Errorf("error attaching images: %w", err)
	}

	log.Info().
		Str("location_id", request.LocationID).
		Str("user_id", request.AuthorID).
		Int("images", len(urls)).
		Msg("images attached to location")

	return s.populate(ctx, location)
}

func (s *locationService) saveImage(ctx context.Context, name string, image models.ImageUpload) error {
	if image.Open == nil {
		return errors.New("upload has no content")
	}

	content, err := image.Open()
	if err != nil {
		return fmt.Errorf("error opening upload: %w", err)
	}
	defer content.Close()

	return s.images.Save(ctx, name, image.ContentType, content)
}

func (s *locationService) removeImages(ctx context.Context, names []string) {
	for _, name := range names {
		if err := s.images.Delete(ctx, name); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("name", name).Msg("error removing stored image")
		}
	}
}

// populate resolves the usernames of the owner and of every comment author
// with a single lookup.
func (s *locationService) populate(ctx context.Context, location models.Location) (models.Location, error) {
	ids := append([]string{location.Owner.UserID}, location.Comments.AuthorIDs()...)

	usernames, err := s.users.FindUsernames(ctx, distinct(ids))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("location_id", location.LocationID).Msg("error resolving usernames")
		return models.Location{}, fmt.Errorf("error resolving usernames: %w", err)
	}

	location.Owner.Username = usernames[location.Owner.UserID]
	for i := range location.Comments {
		location.Comments[i].Author.Username = usernames[location.Comments[i].Author.UserID]
	}

	return location, nil
}

func (s *locationService) resolveAuthors(ctx context.Context, comments models.Comments) error {
	usernames, err := s.users.FindUsernames(ctx, comments.AuthorIDs())
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error resolving comment authors")
		return fmt.Errorf("error resolving comment authors: %w", err)
	}

	for i := range comments {
		comments[i].Author.Username = usernames[comments[i].Author.UserID]
	}

	return nil
}

func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
