// Package sphere implements the radian-domain spherical geometry primitives:
// angle conversion, Haversine central angles, bearings and the direct
// geodesic (destination point). Everything here works in radians on the unit
// sphere; scaling by an earth radius happens at the caller.
package sphere

import "math"

// Point is a position on the unit sphere, latitude and longitude in radians.
type Point struct {
	Lat float64
	Lng float64
}

// FromDegrees converts degree coordinates to a radian Point.
func FromDegrees(latDeg, lngDeg float64) Point {
	return Point{Lat: ToRadians(latDeg), Lng: ToRadians(lngDeg)}
}

// LatLngDegrees returns the point's coordinates in degrees.
func (p Point) LatLngDegrees() (lat, lng float64) {
	return ToDegrees(p.Lat), ToDegrees(p.Lng)
}

// ToRadians converts degrees to radians. Exact inverse of ToDegrees over the
// full real range; no wrapping at this layer.
func ToRadians(deg float64) float64 { return deg * math.Pi / 180 }

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// CentralAngle returns the Haversine central angle between a and b in
// radians. A numerically degenerate result is coerced to 0 instead of NaN.
func CentralAngle(a, b Point) float64 {
	dLat := b.Lat - a.Lat
	dLng := b.Lng - a.Lng

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat)*math.Cos(b.Lat)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	if math.IsNaN(c) {
		return 0
	}
	return c
}

// Bearing returns the initial great-circle bearing from a to b in radians,
// normalized to [0, 2π). 0 points north, π/2 east.
func Bearing(a, b Point) float64 {
	dLng := b.Lng - a.Lng
	y := math.Sin(dLng) * math.Cos(b.Lat)
	x := math.Cos(a.Lat)*math.Sin(b.Lat) - math.Sin(a.Lat)*math.Cos(b.Lat)*math.Cos(dLng)
	return math.Mod(math.Atan2(y, x)+2*math.Pi, 2*math.Pi)
}

// Destination returns the point reached by travelling the angular distance
// dist from start along the given bearing (radians, 0 = north, clockwise).
// Latitude overflowing past a pole is reflected back with a π longitude
// shift; the longitude is wrapped into [-π, π].
func Destination(start Point, bearing, dist float64) Point {
	sinLat := math.Sin(start.Lat)*math.Cos(dist) +
		math.Cos(start.Lat)*math.Sin(dist)*math.Cos(bearing)
	// Rounding can push the sine fractionally outside [-1, 1], which would
	// turn Asin into NaN.
	if sinLat > 1 {
		sinLat = 1
	} else if sinLat < -1 {
		sinLat = -1
	}
	lat := math.Asin(sinLat)

	lng := start.Lng + math.Atan2(
		math.Sin(bearing)*math.Sin(dist)*math.Cos(start.Lat),
		math.Cos(dist)-math.Sin(start.Lat)*sinLat,
	)

	if lat > math.Pi/2 {
		lat = math.Pi - lat
		lng += math.Pi
	} else if lat < -math.Pi/2 {
		lat = -math.Pi - lat
		lng += math.Pi
	}

	return Point{Lat: lat, Lng: WrapLng(lng)}
}

// WrapLng wraps a longitude into [-π, π). math.Mod keeps the dividend's
// sign, hence the negative-remainder fixup.
func WrapLng(lng float64) float64 {
	lng = math.Mod(lng+3*math.Pi, 2*math.Pi)
	if lng < 0 {
		lng += 2 * math.Pi
	}
	return lng - math.Pi
}
