package geo

import (
	"math"

	"panditseva/catalog"
)

// UnknownDistanceKm is returned when either city is missing from the
// coordinate table. It sorts behind every reachable candidate.
const UnknownDistanceKm = 9999.0

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two cities. Equal
// names are zero by definition; unknown cities yield UnknownDistanceKm.
func DistanceKm(a, b string) float64 {
	if a == b {
		return 0
	}
	lat1, lon1, ok1 := catalog.CityCoords(a)
	lat2, lon2, ok2 := catalog.CityCoords(b)
	if !ok1 || !ok2 {
		return UnknownDistanceKm
	}
	return haversine(lat1, lon1, lat2, lon2)
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// ProximityTier buckets a distance into the coarse ranking tiers:
// 0 same place, 1 within 30 km, 2 within 80 km, 3 beyond.
func ProximityTier(distanceKm float64) int {
	switch {
	case distanceKm == 0:
		return 0
	case distanceKm <= 30:
		return 1
	case distanceKm <= 80:
		return 2
	default:
		return 3
	}
}
