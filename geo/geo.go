// Package geo provides great-circle calculations between geographic
// coordinates.
package geo

import "math"

// EarthRadius is the mean earth radius in meters.
const EarthRadius = 6371008.8

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Distance returns the great-circle distance between a and b in
// meters, using the haversine formula.
func Distance(a, b Point) float64 {
	latA := radians(a.Lat)
	latB := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon

	return 2 * EarthRadius * math.Asin(math.Min(1, math.Sqrt(h)))
}

func (p Point) DistanceTo(other Point) float64 {
	return Distance(p, other)
}

// Bearing returns the initial bearing from a to b in degrees,
// normalized to [0, 360).
func Bearing(a, b Point) float64 {
	latA := radians(a.Lat)
	latB := radians(b.Lat)
	dLon := radians(b.Lon - a.Lon)

	y := math.Sin(dLon) * math.Cos(latB)
	x := math.Cos(latA)*math.Sin(latB) - math.Sin(latA)*math.Cos(latB)*math.Cos(dLon)

	deg := degrees(math.Atan2(y, x))
	return math.Mod(deg+360, 360)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
