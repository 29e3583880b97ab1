package models

import (
	"io"
	"time"
)

// Location is a geotagged entry owned by exactly one user. Comments and
// image references are embedded documents of the location.
type Location struct {
	// LocationID is the unique identifier of the location (UUID).
	LocationID string `json:"id"`

	// Owner references the user who created the location.
	Owner UserRef `json:"user"`

	Latitude    Latitude  `json:"latitude"`
	Longitude   Longitude `json:"longitude"`
	Description string    `json:"description"`

	// ImageURLs holds public paths of uploaded images in upload order.
	ImageURLs ImageURLs `json:"imageUrls"`

	// Comments holds the location's comments, newest first.
	Comments Comments `json:"comments"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Location model.
func (l Location) TableName() string {
	return "locations"
}

// CreateLocationRequest is the body of POST /api/locations.
// Coordinates are pointers so that a missing value can be told apart
// from zero.
type CreateLocationRequest struct {
	Latitude    *Latitude  `json:"latitude"`
	Longitude   *Longitude `json:"longitude"`
	Description string     `json:"description"`

	// OwnerID is taken from the authenticated request, never from the body.
	OwnerID string `json:"-"`
}

// ImageUpload is a single file received by POST /api/locations/{id}/images.
type ImageUpload struct {
	// FieldName is the multipart field the file was sent in.
	FieldName string
	// FileName is the client-side name; only its extension is kept.
	FileName    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// MaxImagesPerUpload is the largest number of files accepted by a single
// image upload request.
const MaxImagesPerUpload = 10

// ImagesFieldName is the multipart field carrying uploaded images.
const ImagesFieldName = "images"

// AddImagesRequest attaches uploaded images to a location.
type AddImagesRequest struct {
	LocationID string
	AuthorID   string
	Images     []ImageUpload
}
