package domain

import "math"

// Latitude/longitude bounds for a valid geographic coordinate.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Validate checks that both components are finite and within range.
// The returned error reports the origin index; callers validating a
// stop overwrite StopIndex with the stop's own index.
func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || p.Lat < MinLatitude || p.Lat > MaxLatitude {
		return &InvalidInputError{StopIndex: OriginIndex, Field: "lat", Value: p.Lat}
	}
	if math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) || p.Lon < MinLongitude || p.Lon > MaxLongitude {
		return &InvalidInputError{StopIndex: OriginIndex, Field: "lon", Value: p.Lon}
	}
	return nil
}
