package halfedge

import "github.com/lukas-voss/trimesh/vecmath"

// Endpoints returns the two vertices of an edge, in the representative
// half-edge's direction.
func (m *Mesh) Endpoints(edge int) (u, v int) {
	h := m.edges[edge].HalfEdge
	return m.halfEdges[h].Origin, m.halfEdges[m.halfEdges[h].Next].Origin
}

// EdgeNeighbors describes the endpoints of an edge plus the far vertex of
// each incident face.
type EdgeNeighbors struct {
	U, V        int
	FarLeft     int
	FarRight    int
	HasFarRight bool
}

// EdgeNeighbors reports the endpoints of edge plus the "far" vertex of the
// left face, and of the right face when the edge is not on a boundary.
func (m *Mesh) EdgeNeighbors(edge int) EdgeNeighbors {
	h := m.edges[edge].HalfEdge
	he := m.halfEdges[h]
	next := m.halfEdges[he.Next]

	en := EdgeNeighbors{
		U:       he.Origin,
		V:       next.Origin,
		FarLeft: m.halfEdges[next.Next].Origin,
	}

	if !he.IsBoundary() {
		twin := m.halfEdges[he.Twin]
		en.FarRight = m.halfEdges[m.halfEdges[twin.Next].Next].Origin
		en.HasFarRight = true
	}

	return en
}

// FaceVertices returns the three vertex origins of a face's half-edges, in
// Next order.
func (m *Mesh) FaceVertices(face int) (a, b, c int) {
	h0 := m.faces[face].HalfEdge
	h1 := m.halfEdges[h0].Next
	h2 := m.halfEdges[h1].Next
	return m.halfEdges[h0].Origin, m.halfEdges[h1].Origin, m.halfEdges[h2].Origin
}

// VertexOneRing appends the neighbor vertices of vertex, in CCW order, to
// out and returns the result. Fails with ErrBoundary if the vertex touches
// an open edge.
func (m *Mesh) VertexOneRing(vertex int, out []int) ([]int, error) {
	out = out[:0]
	start := m.vertices[vertex].HalfEdge
	h := start

	for {
		he := m.halfEdges[h]
		out = append(out, m.halfEdges[he.Next].Origin)

		nn := m.halfEdges[he.Next].Next
		twin := m.halfEdges[nn].Twin
		if twin < 0 {
			return out, ErrBoundary
		}

		h = twin
		if h == start {
			break
		}
	}

	return out, nil
}

// VertexAdjacentFaces appends the faces incident to vertex, to out and
// returns the result. Fails with ErrBoundary if the vertex touches an open
// edge.
func (m *Mesh) VertexAdjacentFaces(vertex int, out []int) ([]int, error) {
	out = out[:0]
	start := m.vertices[vertex].HalfEdge
	h := start

	for {
		he := m.halfEdges[h]
		out = append(out, he.Face)

		nn := m.halfEdges[he.Next].Next
		twin := m.halfEdges[nn].Twin
		if twin < 0 {
			return out, ErrBoundary
		}

		h = twin
		if h == start {
			break
		}
	}

	return out, nil
}

// Degree returns the valence of a vertex.
func (m *Mesh) Degree(vertex int) (int, error) {
	start := m.vertices[vertex].HalfEdge
	h := start
	n := 0

	for {
		n++
		he := m.halfEdges[h]
		nn := m.halfEdges[he.Next].Next
		twin := m.halfEdges[nn].Twin
		if twin < 0 {
			return n, ErrBoundary
		}

		h = twin
		if h == start {
			break
		}
	}

	return n, nil
}

// faceNormalRaw returns the un-normalized cross product (p1-p0) x (p2-p0),
// whose magnitude is twice the face's area.
func (m *Mesh) faceNormalRaw(face int) vecmath.Vec3 {
	a, b, c := m.FaceVertices(face)
	p0, p1, p2 := m.Position(a), m.Position(b), m.Position(c)
	return p1.Sub(p0).Cross(p2.Sub(p0))
}

// FaceNormal returns the unit normal of a face.
func (m *Mesh) FaceNormal(face int) vecmath.Vec3 {
	return m.faceNormalRaw(face).Unit()
}

// VertexNormal returns the normalized sum of the (un-normalized) adjacent
// face normals: each face contributes weighted by twice its area, so no
// explicit area weighting is applied separately, and degenerate faces
// contribute ~zero.
func (m *Mesh) VertexNormal(vertex int, scratch []int) (vecmath.Vec3, error) {
	faces, err := m.VertexAdjacentFaces(vertex, scratch)
	if err != nil {
		return vecmath.Vec3{}, err
	}

	var sum vecmath.Vec3
	for _, f := range faces {
		sum = sum.Add(m.faceNormalRaw(f))
	}

	return sum.Unit(), nil
}
