package geodex

import "testing"

// Shared fixtures: the reference points the concrete distance and center
// expectations are written against.
var (
	butte      = Point{Lat: 46.0038, Lng: -112.5348}
	bozeman    = Point{Lat: 45.6751, Lng: -111.0428}
	billings   = Point{Lat: 45.7589, Lng: -108.483}
	fiji       = Point{Lat: -17.7798, Lng: 177.8037}
	southernNZ = Point{Lat: -45.7854, Lng: 168.5981}
)

func almost(a, b, eps float64) bool {
	if a > b {
		return a-b < eps
	}
	return b-a < eps
}

// relClose reports whether got is within rel relative tolerance of want.
func relClose(got, want, rel float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff <= rel*want
}

func newMilesEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func newKmEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	return newMilesEngine(t, append([]Option{WithUnits(Kilometers)}, opts...)...)
}
