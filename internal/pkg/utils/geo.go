package utils

import "math"

// DistanceUnit selects the unit returned by HaversineDistance.
type DistanceUnit string

const (
	UnitMeters     DistanceUnit = "meters"
	UnitKilometers DistanceUnit = "kilometers"
	UnitMiles      DistanceUnit = "miles"
)

const earthRadiusMeters = 6371000.0

// HaversineDistance calculates the great-circle distance between two
// coordinates using the Haversine formula.
func HaversineDistance(lat1, lon1, lat2, lon2 float64, unit DistanceUnit) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	meters := earthRadiusMeters * c

	switch unit {
	case UnitKilometers:
		return meters / 1000
	case UnitMiles:
		return meters / 1609.344
	default:
		return meters
	}
}
