// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the geo-locations HTTP API.
//
// [ServerAdapter] hides the REST details: JSON bodies, the bearer token and
// the multipart image upload. Error values defined in errors.go are mapped
// from HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/geo-locations/models"
)

// ImageFile is one file of an image upload.
type ImageFile struct {
	Name    string
	Content io.Reader
}

// ServerAdapter defines communication with the geo-locations server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// TestConnection calls the liveness endpoint and returns its message.
	TestConnection(ctx context.Context) (string, error)

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, request models.RegisterRequest) (string, error)

	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (string, error)

	ListLocations(ctx context.Context) ([]models.Location, error)
	GetLocation(ctx context.Context, locationID string) (models.Location, error)

	// CreateLocation requires a token. The owner is taken from the token by
	// the server.
	CreateLocation(ctx context.Context, request models.CreateLocationRequest) (models.Location, error)

	// AddComment requires a token and returns the location's comments,
	// newest first.
	AddComment(ctx context.Context, locationID, text string) (models.Comments, error)

	// UploadImages requires a token and sends files in a single multipart
	// request.
	UploadImages(ctx context.Context, locationID string, files []ImageFile) (models.Location, error)

	// DownloadImage fetches an uploaded image by its public path.
	DownloadImage(ctx context.Context, imageURL string) ([]byte, string, error)
}
