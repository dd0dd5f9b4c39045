package geodex

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/geodex/internal/sphere"
)

// Bounds returns the latitude/longitude rectangle containing every point
// within radius (engine units) of center, following Jan Matuschek's
// bounding-coordinates derivation. A non-positive or NaN radius yields a
// degenerate rectangle collapsed onto the center. A radius band reaching a
// pole widens the rectangle to the full longitude range; one crossing the
// ±180° meridian wraps it (MinLng > MaxLng).
func (e *Engine) Bounds(radius float64, center Point) Bounds {
	defer e.obs.observe("bounds", time.Now())

	if !(radius > 0) {
		return Bounds{
			MinLat: center.Lat,
			MaxLat: center.Lat,
			MinLng: center.Lng,
			MaxLng: center.Lng,
		}
	}

	c := toSphere(center)
	radDist := radius / e.radius

	minLat := c.Lat - radDist
	maxLat := c.Lat + radDist

	if minLat > -math.Pi/2 && maxLat < math.Pi/2 {
		// The band stays clear of both poles, which also keeps the
		// cos(lat) division below well defined.
		deltaLng := math.Asin(math.Sin(radDist) / math.Cos(c.Lat))

		minLng := c.Lng - deltaLng
		if minLng < -math.Pi {
			minLng += 2 * math.Pi
		}
		maxLng := c.Lng + deltaLng
		if maxLng > math.Pi {
			maxLng -= 2 * math.Pi
		}

		return Bounds{
			MinLat: sphere.ToDegrees(minLat),
			MaxLat: sphere.ToDegrees(maxLat),
			MinLng: sphere.ToDegrees(minLng),
			MaxLng: sphere.ToDegrees(maxLng),
		}
	}

	// Near a pole the circle spans every longitude: clamp the latitudes and
	// take the full band.
	return Bounds{
		MinLat: sphere.ToDegrees(math.Max(minLat, -math.Pi/2)),
		MaxLat: sphere.ToDegrees(math.Min(maxLat, math.Pi/2)),
		MinLng: -180,
		MaxLng: 180,
	}
}

// BoundsChecker computes the rectangle for the given radius and center once
// and returns a checker testing points against it. Prefer it over repeated
// Bounds calls when screening many points against one circle.
func (e *Engine) BoundsChecker(radius float64, center Point) BoundsChecker {
	return BoundsChecker{bounds: e.Bounds(radius, center)}
}

// WithinRadius returns the subset of points within radius (engine units) of
// center, preserving input order. Candidates are prescreened against the
// bounding rectangle before the exact distance test.
func (e *Engine) WithinRadius(radius float64, center Point, points []Point) []Point {
	defer e.obs.observe("within_radius", time.Now(), zap.Int("candidates", len(points)))

	checker := e.BoundsChecker(radius, center)
	var within []Point
	for _, p := range points {
		if !checker.Contains(p) {
			continue
		}
		if e.Distance(center, p) <= radius {
			within = append(within, p)
		}
	}
	return within
}
