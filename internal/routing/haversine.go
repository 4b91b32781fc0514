package routing

import (
	"be-route-service/internal/domain"
	"math"
)

// Mean earth radius in kilometers for the spherical-earth approximation.
const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance between two points in
// kilometers. Symmetric, exactly 0 for identical points, and finite for
// any pair of valid coordinates: the intermediate term is clamped before
// the final arc computation so antipodal or coincident points cannot
// produce NaN through rounding.
func Haversine(a, b domain.Point) float64 {
	if a == b {
		return 0
	}

	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	dPhi := (b.Lat - a.Lat) * math.Pi / 180
	dLambda := (b.Lon - a.Lon) * math.Pi / 180

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	if h < 0 {
		h = 0
	}
	if h > 1 {
		h = 1
	}

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
