package halfedge

import (
	"fmt"

	"github.com/lukas-voss/trimesh/vecmath"
)

// Mesh is an index-based half-edge mesh for a closed, oriented, manifold
// triangle surface. Entities are identified by dense integer indices into
// per-kind arenas; deleted slots are tombstoned and never reused.
type Mesh struct {
	vertices  []Vertex
	edges     []Edge
	faces     []Face
	halfEdges []HalfEdge

	liveVertices, liveEdges, liveFaces, liveHalfEdges int
}

// NewMesh builds a half-edge mesh from a point list and a triangle list
// (each triangle a triple of indices into points). Only the points
// referenced by faces become vertices, in order of first reference.
func NewMesh(points []vecmath.Vec3, faces [][3]int) (*Mesh, error) {
	m := &Mesh{
		vertices:  make([]Vertex, 0, len(points)),
		edges:     make([]Edge, 0, len(faces)*3/2),
		faces:     make([]Face, 0, len(faces)),
		halfEdges: make([]HalfEdge, 0, len(faces)*3),
	}

	remap := make(map[int]int, len(points))
	type dirKey [2]int
	pending := make(map[dirKey]int)
	seen := make(map[dirKey]bool)

	for _, tri := range faces {
		var verts [3]int
		for j, idx := range tri {
			nv, ok := remap[idx]
			if !ok {
				nv = len(m.vertices)
				remap[idx] = nv
				m.vertices = append(m.vertices, Vertex{Point: points[idx], HalfEdge: -1, live: true})
				m.liveVertices++
			}
			verts[j] = nv
		}

		for j := 0; j < 3; j++ {
			if verts[j] == verts[(j+1)%3] {
				return nil, fmt.Errorf("%w: %v", ErrDegenerateFace, tri)
			}
		}

		faceID := len(m.faces)
		heStart := len(m.halfEdges)

		for j := 0; j < 3; j++ {
			a := verts[j]
			b := verts[(j+1)%3]
			heID := heStart + j

			if seen[dirKey{a, b}] {
				return nil, ErrNonManifold
			}
			seen[dirKey{a, b}] = true

			he := HalfEdge{
				Origin: a,
				Face:   faceID,
				Next:   heStart + (j+1)%3,
				Twin:   -1,
				live:   true,
			}

			if twinID, ok := pending[dirKey{b, a}]; ok {
				he.Twin = twinID
				he.Edge = m.halfEdges[twinID].Edge
				m.halfEdges[twinID].Twin = heID
				delete(pending, dirKey{b, a})
			} else {
				he.Edge = len(m.edges)
				m.edges = append(m.edges, Edge{HalfEdge: heID, live: true})
				m.liveEdges++
				pending[dirKey{a, b}] = heID
			}

			m.halfEdges = append(m.halfEdges, he)
			m.liveHalfEdges++

			if m.vertices[a].HalfEdge < 0 {
				m.vertices[a].HalfEdge = heID
			}
		}

		m.faces = append(m.faces, Face{HalfEdge: heStart, live: true})
		m.liveFaces++
	}

	return m, nil
}

// IsClosed reports whether every half-edge has a twin.
func (m *Mesh) IsClosed() bool {
	for _, h := range m.halfEdges {
		if h.live && h.IsBoundary() {
			return false
		}
	}
	return true
}

// NumLiveVertices, NumLiveEdges, NumLiveFaces report live entity counts.
func (m *Mesh) NumLiveVertices() int { return m.liveVertices }
func (m *Mesh) NumLiveEdges() int    { return m.liveEdges }
func (m *Mesh) NumLiveFaces() int    { return m.liveFaces }

// MaxVertexIndex, MaxEdgeIndex, MaxFaceIndex report one past the greatest
// index ever allocated for the respective kind (live or tombstoned).
func (m *Mesh) MaxVertexIndex() int { return len(m.vertices) }
func (m *Mesh) MaxEdgeIndex() int   { return len(m.edges) }
func (m *Mesh) MaxFaceIndex() int   { return len(m.faces) }

// Position returns the position of a vertex.
func (m *Mesh) Position(vertex int) vecmath.Vec3 {
	return m.vertices[vertex].Point
}

// SetPosition overwrites the position of a vertex.
func (m *Mesh) SetPosition(vertex int, p vecmath.Vec3) {
	m.vertices[vertex].Point = p
}

// IsLiveVertex, IsLiveEdge, IsLiveFace report whether an id still refers to
// a live entity (false for tombstoned or never-allocated indices).
func (m *Mesh) IsLiveVertex(id int) bool { return id >= 0 && id < len(m.vertices) && m.vertices[id].live }
func (m *Mesh) IsLiveEdge(id int) bool   { return id >= 0 && id < len(m.edges) && m.edges[id].live }
func (m *Mesh) IsLiveFace(id int) bool   { return id >= 0 && id < len(m.faces) && m.faces[id].live }

func (m *Mesh) allocVertex(p vecmath.Vec3) int {
	id := len(m.vertices)
	m.vertices = append(m.vertices, Vertex{Point: p, HalfEdge: -1, live: true})
	m.liveVertices++
	return id
}

func (m *Mesh) allocEdge(he int) int {
	id := len(m.edges)
	m.edges = append(m.edges, Edge{HalfEdge: he, live: true})
	m.liveEdges++
	return id
}

func (m *Mesh) allocFace(he int) int {
	id := len(m.faces)
	m.faces = append(m.faces, Face{HalfEdge: he, live: true})
	m.liveFaces++
	return id
}

func (m *Mesh) allocHalfEdge() int {
	id := len(m.halfEdges)
	m.halfEdges = append(m.halfEdges, HalfEdge{Twin: -1, live: true})
	m.liveHalfEdges++
	return id
}

func (m *Mesh) killVertex(id int) {
	m.vertices[id].live = false
	m.liveVertices--
}

func (m *Mesh) killEdge(id int) {
	m.edges[id].live = false
	m.liveEdges--
}

func (m *Mesh) killFace(id int) {
	m.faces[id].live = false
	m.liveFaces--
}

func (m *Mesh) killHalfEdge(id int) {
	m.halfEdges[id].live = false
	m.liveHalfEdges--
}

// Export materializes the live vertices and faces into a dense (points,
// triangles) pair, renumbering old ids through an exclusive prefix-sum map.
func (m *Mesh) Export() ([]vecmath.Vec3, [][3]int) {
	points := make([]vecmath.Vec3, 0, m.liveVertices)
	remap := make([]int, len(m.vertices))

	for i := range m.vertices {
		if !m.vertices[i].live {
			remap[i] = -1
			continue
		}
		remap[i] = len(points)
		points = append(points, m.vertices[i].Point)
	}

	tris := make([][3]int, 0, m.liveFaces)

	for i := range m.faces {
		if !m.faces[i].live {
			continue
		}
		a, b, c := m.FaceVertices(i)
		tris = append(tris, [3]int{remap[a], remap[b], remap[c]})
	}

	return points, tris
}
