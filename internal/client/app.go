package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/geo-locations/internal/adapter"
	"github.com/MKhiriev/geo-locations/internal/logger"
	"github.com/MKhiriev/geo-locations/models"
	"github.com/google/uuid"
)

var (
	ErrUnexpectedResponse = errors.New("unexpected server response")
)

// smokeImage is a 1x1 PNG uploaded and read back by the run.
var smokeImage = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

const (
	smokePassword    = "smoke-password"
	smokeComment     = "smoke comment"
	smokeImageName   = "smoke.png"
	smokeLatitude    = models.Latitude(55.7558)
	smokeLongitude   = models.Longitude(37.6173)
	smokeDescription = "smoke location"
)

type App struct {
	api    adapter.ServerAdapter
	newID  func() string
	logger *logger.Logger
}

func NewApp(api adapter.ServerAdapter, logger *logger.Logger) (*App, error) {
	if api == nil {
		return nil, errors.New("server adapter is required")
	}

	return &App{
		api:    api,
		newID:  func() string { return uuid.NewString()[:8] },
		logger: logger,
	}, nil
}

// Run registers a fresh account and exercises every endpoint once. It stops
// at the first failing step.
func (a *App) Run(ctx context.Context) error {
	suffix := a.newID()
	username := "smoke-" + suffix
	email := username + "@example.com"

	msg, err := a.api.TestConnection(ctx)
	if err != nil {
		return fmt.Errorf("test connection: %w", err)
	}
	a.logger.Info().Str("message", msg).Msg("server is reachable")

	if _, err = a.api.Register(ctx, models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: smokePassword,
	}); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	a.logger.Info().Str("username", username).Msg("registered")

	if _, err = a.api.Login(ctx, models.LoginRequest{Email: email, Password: smokePassword}); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.logger.Info().Str("email", email).Msg("logged in")

	lat, lon := smokeLatitude, smokeLongitude
	created, err := a.api.CreateLocation(ctx, models.CreateLocationRequest{
		Latitude:    &lat,
		Longitude:   &lon,
		Description: smokeDescription,
	})
	if err != nil {
		return fmt.Errorf("create location: %w", err)
	}
	a.logger.Info().Str("location_id", created.LocationID).Msg("location created")

	comments, err := a.api.AddComment(ctx, created.LocationID, smokeComment)
	if err != nil {
		return fmt.Errorf("add comment: %w", err)
	}
	if len(comments) == 0 || comments[0].Text != smokeComment {
		return fmt.Errorf("add comment: %w: newest comment is not the one just added", ErrUnexpectedResponse)
	}

	withImage, err := a.api.UploadImages(ctx, created.LocationID, []adapter.ImageFile{
		{Name: smokeImageName, Content: bytes.NewReader(smokeImage)},
	})
	if err != nil {
		return fmt.Errorf("upload images: %w", err)
	}
	if len(withImage.ImageURLs) == 0 {
		return fmt.Errorf("upload images: %w: no image urls", ErrUnexpectedResponse)
	}

	imageURL := withImage.ImageURLs[len(withImage.ImageURLs)-1]
	content, contentType, err := a.api.DownloadImage(ctx, imageURL)
	if err != nil {
		return fmt.Errorf("download image: %w", err)
	}
	if !bytes.Equal(content, smokeImage) {
		return fmt.Errorf("download image: %w: content differs", ErrUnexpectedResponse)
	}
	a.logger.Info().Str("url", imageURL).Str("content_type", contentType).Msg("image round trip")

	fetched, err := a.api.GetLocation(ctx, created.LocationID)
	if err != nil {
		return fmt.Errorf("get location: %w", err)
	}
	if err = checkLocation(fetched, username); err != nil {
		return fmt.Errorf("get location: %w", err)
	}

	locations, err := a.api.ListLocations(ctx)
	if err != nil {
		return fmt.Errorf("list locations: %w", err)
	}
	if !containsLocation(locations, created.LocationID) {
		return fmt.Errorf("list locations: %w: created location is missing", ErrUnexpectedResponse)
	}

	a.logger.Info().Int("locations", len(locations)).Msg("smoke run finished")
	return nil
}

func checkLocation(location models.Location, username string) error {
	var problems []string
	if location.Owner.Username != username {
		problems = append(problems, fmt.Sprintf("owner is %q", location.Owner.Username))
	}
	if location.Latitude != smokeLatitude || location.Longitude != smokeLongitude {
		problems = append(problems, "coordinates changed")
	}
	if len(location.Comments) == 0 || location.Comments[0].Author.Username != username {
		problems = append(problems, "comment author not resolved")
	}
	if len(location.ImageURLs) == 0 {
		problems = append(problems, "no images")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedResponse, strings.Join(problems, "; "))
	}
	return nil
}

func containsLocation(locations []models.Location, locationID string) bool {
	for _, l := range locations {
		if l.LocationID == locationID {
			return true
		}
	}
	return false
}
