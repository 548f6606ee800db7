package halfedge

import "github.com/lukas-voss/trimesh/vecmath"

// tetrahedron returns a closed, oriented, manifold tetrahedron: 4 vertices,
// 4 faces, every vertex of degree 3.
func tetrahedron() *Mesh {
	points := []vecmath.Vec3{
		vecmath.NewVec3(0, 0, 0),
		vecmath.NewVec3(1, 0, 0),
		vecmath.NewVec3(0, 1, 0),
		vecmath.NewVec3(0, 0, 1),
	}
	faces := [][3]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}
	m, err := NewMesh(points, faces)
	if err != nil {
		panic(err)
	}
	return m
}

// octahedron returns a closed, oriented, manifold octahedron: 6 vertices,
// 8 faces, every vertex of degree 4.
func octahedron() *Mesh {
	points := []vecmath.Vec3{
		vecmath.NewVec3(1, 0, 0),
		vecmath.NewVec3(-1, 0, 0),
		vecmath.NewVec3(0, 1, 0),
		vecmath.NewVec3(0, -1, 0),
		vecmath.NewVec3(0, 0, 1),
		vecmath.NewVec3(0, 0, -1),
	}
	faces := [][3]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}
	m, err := NewMesh(points, faces)
	if err != nil {
		panic(err)
	}
	return m
}

// openQuad returns two triangles sharing a diagonal, forming a square with
// an open (boundary) perimeter.
func openQuad() *Mesh {
	points := []vecmath.Vec3{
		vecmath.NewVec3(0, 0, 0),
		vecmath.NewVec3(1, 0, 0),
		vecmath.NewVec3(1, 1, 0),
		vecmath.NewVec3(0, 1, 0),
	}
	faces := [][3]int{
		{0, 1, 2},
		{0, 2, 3},
	}
	m, err := NewMesh(points, faces)
	if err != nil {
		panic(err)
	}
	return m
}

// assertInvariants walks every live vertex, edge, face and half-edge and
// panics-via-t.Fatalf on the first violated structural invariant: twin
// symmetry, edge/face representative consistency, triangle closure, and a
// complete one-ring for every interior vertex.
type fataler interface {
	Fatalf(format string, args ...any)
}

func assertInvariants(t fataler, m *Mesh) {
	for h := range m.halfEdges {
		if !m.halfEdges[h].live {
			continue
		}
		he := m.halfEdges[h]

		if !m.faces[he.Face].live {
			t.Fatalf("half-edge %d references dead face %d", h, he.Face)
		}
		if !m.vertices[he.Origin].live {
			t.Fatalf("half-edge %d references dead vertex origin %d", h, he.Origin)
		}
		if !m.edges[he.Edge].live {
			t.Fatalf("half-edge %d references dead edge %d", h, he.Edge)
		}
		if !m.halfEdges[he.Next].live {
			t.Fatalf("half-edge %d has dead next %d", h, he.Next)
		}
		if m.halfEdges[he.Next].Face != he.Face {
			t.Fatalf("half-edge %d and its next %d disagree on face", h, he.Next)
		}
		nnn := m.halfEdges[m.halfEdges[he.Next].Next].Next
		if nnn != h {
			t.Fatalf("half-edge %d is not part of a triangle (next^3 != self)", h)
		}
		if he.Twin >= 0 {
			twin := m.halfEdges[he.Twin]
			if !twin.live {
				t.Fatalf("half-edge %d references dead twin %d", h, he.Twin)
			}
			if twin.Twin != h {
				t.Fatalf("half-edge %d and twin %d are not mutually paired", h, he.Twin)
			}
			if twin.Edge != he.Edge {
				t.Fatalf("half-edge %d and twin %d disagree on edge", h, he.Twin)
			}
		}
	}

	for e := range m.edges {
		if !m.edges[e].live {
			continue
		}
		if !m.halfEdges[m.edges[e].HalfEdge].live {
			t.Fatalf("edge %d representative half-edge %d is dead", e, m.edges[e].HalfEdge)
		}
		if m.halfEdges[m.edges[e].HalfEdge].Edge != e {
			t.Fatalf("edge %d representative half-edge %d belongs to another edge", e, m.edges[e].HalfEdge)
		}
	}

	for f := range m.faces {
		if !m.faces[f].live {
			continue
		}
		h := m.faces[f].HalfEdge
		if !m.halfEdges[h].live || m.halfEdges[h].Face != f {
			t.Fatalf("face %d representative half-edge %d invalid", f, h)
		}
	}

	var scratch []int
	for v := range m.vertices {
		if !m.vertices[v].live {
			continue
		}
		h := m.vertices[v].HalfEdge
		if !m.halfEdges[h].live || m.halfEdges[h].Origin != v {
			t.Fatalf("vertex %d representative half-edge %d invalid", v, h)
		}
		if _, err := m.VertexOneRing(v, scratch); err != nil {
			t.Fatalf("vertex %d one-ring incomplete: %v", v, err)
		}
	}
}
