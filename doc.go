// Package geodex computes geographic relationships between points on a
// sphere approximating Earth: great-circle distances, radius bounding
// rectangles with pole and antimeridian handling, containment tests, the
// arithmetic midpoint of a point set, and the point minimizing total
// great-circle distance to a set (the geometric median on a sphere).
//
// Coordinates are latitude/longitude in degrees. The unit system set at
// construction (Miles by default) fixes the sphere radius for every
// distance an engine computes. Engines are immutable and safe for
// concurrent use.
//
// # Distances and rectangles
//
//	engine, _ := geodex.New(geodex.WithUnits(geodex.Kilometers))
//	km := engine.Distance(
//	    geodex.Point{Lat: 46.0038, Lng: -112.5348}, // Butte
//	    geodex.Point{Lat: 45.6751, Lng: -111.0428}, // Bozeman
//	)
//
//	rect := engine.Bounds(50, center)
//	check := engine.BoundsChecker(50, center)
//	near := engine.WithinRadius(50, center, candidates)
//
// # Centers of a point set
//
//	mid, _ := engine.Midpoint(points)
//	best := engine.MinimumDistancePoint(points)
//	fmt.Println(best.Point, best.TotalDistance, best.AvgDistance)
//
// # Observability
//
//	logger, _ := zap.NewDevelopment()
//	engine, _ := geodex.New(
//	    geodex.WithLogger(logger),
//	    geodex.WithPrometheus(prometheus.DefaultRegisterer),
//	)
package geodex
