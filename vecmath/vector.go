// Package vecmath provides the small dense-linear-algebra surface the mesh
// core treats as an external collaborator: 3-vectors and 4x4 quadric
// matrices. Vector arithmetic is hand rolled (it is a handful of field
// operations); matrix inversion is delegated to gonum.org/v2/gonum/mat.
package vecmath

import "math"

// Vec3 is a Cartesian vector (or point) in three-dimensional space.
type Vec3 [3]float64

// NewVec3 constructs a Vec3 from its components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// Add computes v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub computes v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale multiplies v by a scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Dot computes the dot product v . w.
func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross computes the cross product v x w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Mag computes the magnitude (L2-norm).
func (v Vec3) Mag() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit computes the normalized vector. The zero vector normalizes to
// itself rather than propagating NaN, since degenerate faces are expected
// to contribute ~zero weight rather than poison a sum.
func (v Vec3) Unit() Vec3 {
	mag := v.Mag()
	if mag == 0 {
		return v
	}
	return v.Scale(1 / mag)
}

// HasNaN reports whether any component is NaN.
func (v Vec3) HasNaN() bool {
	return math.IsNaN(v[0]) || math.IsNaN(v[1]) || math.IsNaN(v[2])
}

// Lerp linearly interpolates between v and w at parameter t.
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return v.Add(w.Sub(v).Scale(t))
}

// Midpoint returns the average of v and w.
func (v Vec3) Midpoint(w Vec3) Vec3 {
	return v.Add(w).Scale(0.5)
}
