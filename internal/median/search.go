// Package median locates the point minimizing the total great-circle
// distance to a point set (the geometric median on a sphere) by iterative
// pattern search over shrinking candidate rings.
package median

import (
	"math"

	"github.com/kailas-cloud/geodex/internal/sphere"
)

// Search parameters. Empirically tuned as a set: together they bound the
// position error of the result below 0.1 of a distance unit. Changing any
// of them changes that guarantee.
const (
	// initialRingRadius is the first test-ring radius.
	initialRingRadius = math.Pi / 2
	// ringHalvings is how many times the ring radius is halved.
	ringHalvings = 17
	// ringPoints is the number of candidates per ring, spaced evenly
	// around the compass.
	ringPoints = 8
	// improveMargin bounds the accepted per-pass improvement window of the
	// inner refinement loop. In radian units no pass can reach it, so the
	// loop ends exactly when a pass stops improving the total.
	improveMargin = 200000.0
)

// Result is the outcome of a search: the best point found, its total
// central angle to the input set and the number of candidate evaluations
// spent finding it.
type Result struct {
	Point       sphere.Point
	Total       float64
	Evaluations int
}

// candidate pairs a position with its total central angle to the input set.
type candidate struct {
	point sphere.Point
	total float64
}

// evaluator scores candidates against the input set and counts evaluations.
type evaluator struct {
	pts   []sphere.Point
	evals int
}

func (e *evaluator) score(p sphere.Point) candidate {
	e.evals++
	var total float64
	for _, q := range e.pts {
		total += sphere.CentralAngle(p, q)
	}
	return candidate{point: p, total: total}
}

// Search locates the point minimizing the total central angle to pts. The
// Cartesian centroid seeds the search, every input point is tried as a
// candidate, then rings of ringPoints candidates refine the best found,
// with the ring radius starting at initialRingRadius and halved
// ringHalvings times. len(pts) must be at least 1.
func Search(pts []sphere.Point) Result {
	ev := &evaluator{pts: pts}

	vectors := make([]sphere.Vector, len(pts))
	for i, p := range pts {
		vectors[i] = p.Vector()
	}
	best := ev.score(sphere.Centroid(vectors).Point())

	// A member of a tight cluster can beat the centroid outright, so each
	// input point competes before any ring runs.
	for _, p := range pts {
		if c := ev.score(p); c.total < best.total {
			best = c
		}
	}

	radius := initialRingRadius
	for i := 0; i < ringHalvings; i++ {
		best = refineAtRadius(ev, best, radius)
		radius /= 2
	}

	return Result{Point: best.point, Total: best.total, Evaluations: ev.evals}
}

// refineAtRadius circles candidates around the current best at a fixed ring
// radius, re-centering and going again while a full pass improves the
// total within the improveMargin window.
func refineAtRadius(ev *evaluator, best candidate, radius float64) candidate {
	for {
		prev := best
		best = bestOnRing(ev, best, radius)

		gained := prev.total - best.total
		if gained <= 0 || gained >= improveMargin {
			return best
		}
	}
}

// bestOnRing scores ringPoints candidates spaced evenly around center at
// the given angular radius and returns the better of center and the best
// candidate found.
func bestOnRing(ev *evaluator, center candidate, radius float64) candidate {
	best := center
	for i := 0; i < ringPoints; i++ {
		bearing := float64(i) * 2 * math.Pi / ringPoints
		if c := ev.score(sphere.Destination(center.point, bearing, radius)); c.total < best.total {
			best = c
		}
	}
	return best
}
