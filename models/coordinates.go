package models

import (
	"errors"
	"math"
)

var (
	ErrLatitudeOutOfRange  = errors.New("latitude must be within [-90, 90]")
	ErrLongitudeOutOfRange = errors.New("longitude must be within [-180, 180]")
)

// Latitude is a coordinate in degrees, valid within [-90, 90].
type Latitude float64

// Validate reports whether the latitude is a finite value within bounds.
func (l Latitude) Validate() error {
	v := float64(l)
	if math.IsNaN(v) || v < -90 || v > 90 {
		return ErrLatitudeOutOfRange
	}
	return nil
}

// Longitude is a coordinate in degrees, valid within [-180, 180].
type Longitude float64

// Validate reports whether the longitude is a finite value within bounds.
func (l Longitude) Validate() error {
	v := float64(l)
	if math.IsNaN(v) || v < -180 || v > 180 {
		return ErrLongitudeOutOfRange
	}
	return nil
}
