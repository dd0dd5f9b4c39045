package geodex

import (
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/geodex/internal/median"
	"github.com/kailas-cloud/geodex/internal/sphere"
)

// Midpoint returns the arithmetic center of the point set: the 3-D centroid
// of the points projected onto the unit sphere, reprojected back to the
// surface. Reprojection normalizes direction only, so the result is well
// defined even though the raw average lies inside the sphere. Returns
// ErrNoPoints for an empty set.
func (e *Engine) Midpoint(points []Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, ErrNoPoints
	}
	defer e.obs.observe("midpoint", time.Now(), zap.Int("points", len(points)))

	vectors := make([]sphere.Vector, len(points))
	for i, p := range points {
		vectors[i] = toSphere(p).Vector()
	}
	return fromSphere(sphere.Centroid(vectors).Point()), nil
}

// MinimumDistancePoint locates the point minimizing the sum of great-circle
// distances to every member of points, to within 0.1 of the engine's unit.
// The search seeds with the arithmetic midpoint and every input point, then
// refines over shrinking candidate rings; it may converge to an input
// point. An empty set yields the zero result, a single point comes back
// as-is with zero distances.
func (e *Engine) MinimumDistancePoint(points []Point) DistanceResult {
	start := time.Now()

	if len(points) == 0 {
		return DistanceResult{}
	}
	if len(points) == 1 {
		return DistanceResult{Point: points[0]}
	}

	pts := make([]sphere.Point, len(points))
	for i, p := range points {
		pts[i] = toSphere(p)
	}

	res := median.Search(pts)
	total := res.Total * e.radius

	e.obs.searchEvaluations(res.Evaluations)
	e.obs.observe("median", start,
		zap.Int("points", len(points)),
		zap.Int("evaluations", res.Evaluations),
		zap.Float64("total_distance", total),
	)

	return DistanceResult{
		Point:         fromSphere(res.Point),
		AvgDistance:   total / float64(len(points)),
		TotalDistance: total,
	}
}
