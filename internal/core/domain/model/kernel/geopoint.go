package kernel

import (
	"dispatch/internal/pkg/errs"
)

const (
	// MinLatitude is the southernmost valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the northernmost valid latitude in degrees.
	MaxLatitude = 90.0
	// MinLongitude is the westernmost valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the easternmost valid longitude in degrees.
	MaxLongitude = 180.0
)

// GeoPoint is an immutable value object holding a WGS84 coordinate pair.
// It is used for rider positions reported during an active delivery.
// Construct it via NewGeoPoint, which enforces the coordinate ranges.
type GeoPoint struct {
	lat float64
	lng float64
}

// NewGeoPoint creates a GeoPoint, validating that latitude is within
// [-90, 90] and longitude within [-180, 180] degrees.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	if lat < MinLatitude || lat > MaxLatitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("lat", lat, MinLatitude, MaxLatitude)
	}
	if lng < MinLongitude || lng > MaxLongitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("lng", lng, MinLongitude, MaxLongitude)
	}

	return GeoPoint{lat: lat, lng: lng}, nil
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual reports whether two points hold identical coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}
