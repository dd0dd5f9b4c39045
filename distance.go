package geodex

import (
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/geodex/internal/sphere"
)

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 { return sphere.ToRadians(deg) }

// ToDegrees converts radians to degrees. Exact inverse of ToRadians over
// the full real range; no wrapping.
func ToDegrees(rad float64) float64 { return sphere.ToDegrees(rad) }

// Distance returns the great-circle distance between a and b in the
// engine's units, computed with the Haversine formula. Symmetric, zero for
// identical points; a numerically degenerate result comes back as 0, never
// NaN.
func (e *Engine) Distance(a, b Point) float64 {
	return e.radius * sphere.CentralAngle(toSphere(a), toSphere(b))
}

// Bearing returns the initial great-circle bearing from a to b in degrees,
// normalized to [0, 360). 0 points north, 90 east.
func (e *Engine) Bearing(a, b Point) float64 {
	return sphere.ToDegrees(sphere.Bearing(toSphere(a), toSphere(b)))
}

// Destination returns the point reached by travelling distance (engine
// units) from start along the given bearing in degrees. Routes crossing a
// pole come out the other side with the longitude shifted half a turn.
func (e *Engine) Destination(start Point, bearingDeg, distance float64) Point {
	d := sphere.Destination(toSphere(start), sphere.ToRadians(bearingDeg), distance/e.radius)
	return fromSphere(d)
}

// PathDistance returns the length of the path visiting points in order:
// the sum of consecutive leg distances in the engine's units. Zero for
// fewer than two points.
func (e *Engine) PathDistance(points []Point) float64 {
	defer e.obs.observe("path_distance", time.Now(), zap.Int("points", len(points)))

	var total float64
	for i := 1; i < len(points); i++ {
		total += e.Distance(points[i-1], points[i])
	}
	return total
}
