package sphere

import "math"

// Vector is a 3-D Cartesian position. Projections of points lie on the unit
// sphere (X²+Y²+Z² ≈ 1); averaged vectors lie inside it.
type Vector struct {
	X float64
	Y float64
	Z float64
}

// Vector projects the point onto the unit sphere.
func (p Point) Vector() Vector {
	return Vector{
		X: math.Cos(p.Lat) * math.Cos(p.Lng),
		Y: math.Cos(p.Lat) * math.Sin(p.Lng),
		Z: math.Sin(p.Lat),
	}
}

// Point unprojects the vector back to spherical coordinates. Only the
// direction matters, so a vector inside the sphere resolves to the surface
// point along the same ray. The zero vector resolves to lat=0, lng=0 by
// atan2 convention.
func (v Vector) Point() Point {
	return Point{
		Lat: math.Atan2(v.Z, math.Sqrt(v.X*v.X+v.Y*v.Y)),
		Lng: math.Atan2(v.Y, v.X),
	}
}

// Centroid returns the componentwise mean of vs, the zero Vector for an
// empty slice.
func Centroid(vs []Vector) Vector {
	if len(vs) == 0 {
		return Vector{}
	}
	var x, y, z float64
	for _, v := range vs {
		x += v.X
		y += v.Y
		z += v.Z
	}
	n := float64(len(vs))
	return Vector{X: x / n, Y: y / n, Z: z / n}
}
