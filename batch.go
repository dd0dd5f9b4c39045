package geodex

import (
	"time"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// matrixChunkSize is the number of matrix rows handed to one goroutine.
const matrixChunkSize = 64

// DistanceMatrix computes the symmetric matrix of pairwise distances
// between points in the engine's units. The diagonal is zero. Row chunks
// are computed concurrently; each goroutine fills the upper triangle of its
// rows and mirrors the values, no two goroutines touch the same cell.
// Returns nil for an empty set.
func (e *Engine) DistanceMatrix(points []Point) [][]float64 {
	defer e.obs.observe("distance_matrix", time.Now(), zap.Int("points", len(points)))

	n := len(points)
	if n == 0 {
		return nil
	}

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	var wg conc.WaitGroup
	for lo := 0; lo < n; lo += matrixChunkSize {
		lo := lo // per-iteration copy: with a go directive below 1.22 the loop variable is shared
		hi := min(lo+matrixChunkSize, n)
		wg.Go(func() {
			for i := lo; i < hi; i++ {
				for j := i + 1; j < n; j++ {
					d := e.Distance(points[i], points[j])
					matrix[i][j] = d
					matrix[j][i] = d
				}
			}
		})
	}
	wg.Wait()

	return matrix
}
