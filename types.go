package geodex

import "github.com/kailas-cloud/geodex/internal/sphere"

// Point is a geographic position in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate checks the point against the standard coordinate ranges:
// latitude in [-90, 90], longitude in [-180, 180]. Engine operations accept
// any finite coordinates; validation is for callers admitting external
// input.
func (p Point) Validate() error {
	if p.Lat < -90 || p.Lat > 90 {
		return ErrInvalidLatitude
	}
	if p.Lng < -180 || p.Lng > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

// Bounds is a latitude/longitude rectangle in degrees. MinLng > MaxLng is a
// valid state meaning the rectangle wraps across the ±180° meridian; the
// longitude test then accepts either side of the seam.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// Contains reports whether p lies inside the rectangle, edges inclusive.
func (b Bounds) Contains(p Point) bool {
	if p.Lat < b.MinLat || p.Lat > b.MaxLat {
		return false
	}
	if b.Wraps() {
		return p.Lng >= b.MinLng || p.Lng <= b.MaxLng
	}
	return p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// Wraps reports whether the rectangle crosses the ±180° meridian.
func (b Bounds) Wraps() bool { return b.MinLng > b.MaxLng }

// BoundsChecker tests points against a rectangle computed once. Obtain one
// from Engine.BoundsChecker when screening many points against the same
// radius and center.
type BoundsChecker struct {
	bounds Bounds
}

// Contains reports whether p lies inside the captured rectangle.
func (c BoundsChecker) Contains(p Point) bool { return c.bounds.Contains(p) }

// Bounds returns the captured rectangle.
func (c BoundsChecker) Bounds() Bounds { return c.bounds }

// DistanceResult is the outcome of a minimum-distance search: the best
// point found and its total and average distance to the input set, in the
// engine's configured units.
type DistanceResult struct {
	Point         Point   `json:"point"`
	AvgDistance   float64 `json:"avg_distance"`
	TotalDistance float64 `json:"total_distance"`
}

func toSphere(p Point) sphere.Point {
	return sphere.FromDegrees(p.Lat, p.Lng)
}

func fromSphere(sp sphere.Point) Point {
	lat, lng := sp.LatLngDegrees()
	return Point{Lat: lat, Lng: lng}
}
