package halfedge

import "github.com/lukas-voss/trimesh/vecmath"

// Vertex is a point in space plus a representative outgoing half-edge
// whose origin is this vertex.
type Vertex struct {
	Point    vecmath.Vec3
	HalfEdge int

	live bool
}
