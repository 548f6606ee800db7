package vecmath

// AABB is an axis-aligned bounding box, used by the CLI to log a one-line
// summary of a loaded mesh before running an operation on it.
type AABB struct {
	Min Vec3
	Max Vec3
}

// BoundsOf computes the AABB enclosing a non-empty slice of points.
func BoundsOf(points []Vec3) AABB {
	box := AABB{Min: points[0], Max: points[0]}

	for _, p := range points[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < box.Min[i] {
				box.Min[i] = p[i]
			}
			if p[i] > box.Max[i] {
				box.Max[i] = p[i]
			}
		}
	}

	return box
}

// Size returns the extent of the box along each axis.
func (a AABB) Size() Vec3 {
	return a.Max.Sub(a.Min)
}
