package vecmath

import "gonum.org/v2/gonum/mat"

// Mat4 is a symmetric 4x4 matrix over homogeneous coordinates, used as the
// quadric-error representation in the simplification scheduler. It is kept
// as a flat array rather than a gonum type at rest; gonum.org/v2/gonum/mat
// is brought in only where real matrix inversion is needed, in
// OptimalPosition below.
type Mat4 [4][4]float64

// PlaneQuadric builds the rank-1 quadric v*v^T for the homogeneous plane
// vector v = (n.X, n.Y, n.Z, d).
func PlaneQuadric(n Vec3, d float64) Mat4 {
	v := [4]float64{n[0], n[1], n[2], d}
	var k Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			k[i][j] = v[i] * v[j]
		}
	}
	return k
}

// Add returns k + other.
func (k Mat4) Add(other Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = k[i][j] + other[i][j]
		}
	}
	return out
}

// QuadricCost evaluates p^T * k * p for a homogeneous point p = (x, y, z, 1).
func (k Mat4) QuadricCost(p Vec3) float64 {
	v := [4]float64{p[0], p[1], p[2], 1}
	var kv [4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			kv[i] += k[i][j] * v[j]
		}
	}
	var cost float64
	for i := 0; i < 4; i++ {
		cost += v[i] * kv[i]
	}
	return cost
}

// OptimalPosition replaces the bottom row of k with (0, 0, 0, 1) and solves
// K' p = (0, 0, 0, 1)^T for p, returning its first three coordinates. It
// reports ok=false when K' is singular (to working tolerance), in which
// case the caller should fall back to the edge midpoint.
func (k Mat4) OptimalPosition() (Vec3, bool) {
	data := make([]float64, 16)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == 3 {
				data[i*4+j] = boolToFloat(j == 3)
			} else {
				data[i*4+j] = k[i][j]
			}
		}
	}

	a := mat.NewDense(4, 4, data)
	b := mat.NewDense(4, 1, []float64{0, 0, 0, 1})

	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		return Vec3{}, false
	}

	return Vec3{x.At(0, 0), x.At(1, 0), x.At(2, 0)}, true
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
