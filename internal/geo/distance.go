// Package geo provides the great-circle math behind proximity search.
package geo

import "math"

// earthRadiusMiles is the mean radius of the Earth in miles.
const earthRadiusMiles = 3959.0

// Distance returns the great-circle distance in miles between two coordinate
// pairs, computed with the haversine formula. Inputs are degrees and are
// assumed to be range-valid; callers validate before computing.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusMiles * c
}
