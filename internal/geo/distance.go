// Package geo computes great-circle distances between coordinates.
//
// orb.Point stores coordinates as [longitude, latitude]; the helpers here take
// latitude first to match how the rest of the system names them.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean sphere radius used by the haversine formula.
// orb/geo uses the WGS84 equatorial radius instead, so it is not used here.
const EarthRadiusKm = 6371.0

// Distance returns the haversine distance in kilometers between two points
// given in decimal degrees. Inputs are not validated.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := deg2rad(lat1)
	phi2 := deg2rad(lat2)
	dPhi := deg2rad(lat2 - lat1)
	dLambda := deg2rad(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return EarthRadiusKm * c
}

// DistanceBetween returns the haversine distance in kilometers between two orb points.
func DistanceBetween(a, b orb.Point) float64 {
	return Distance(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}

// NewPoint builds an orb.Point from latitude and longitude.
func NewPoint(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// PointFrom returns a point when both coordinates are present.
func PointFrom(lat, lng *float64) (orb.Point, bool) {
	if lat == nil || lng == nil {
		return orb.Point{}, false
	}
	return NewPoint(*lat, *lng), true
}

// ValidCoordinates reports whether lat is within [-90, 90] and lng within [-180, 180].
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
