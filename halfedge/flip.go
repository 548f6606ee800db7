package halfedge

// Flip replaces the two triangles sharing edge (b,c), (b,c,a) and (c,b,d),
// with (a,d,c) and (d,a,b), sharing the new edge (a,d) in its place.
// It requires edge to have two incident faces; callers are responsible for
// ensuring a and d are not already neighbors, since the primitive does not
// check for the duplicate edge that would otherwise result.
func (m *Mesh) Flip(edge int) error {
	h1 := m.edges[edge].HalfEdge // b -> c
	if m.halfEdges[h1].IsBoundary() {
		return ErrBoundary
	}
	h2 := m.halfEdges[h1].Twin // c -> b

	ca := m.halfEdges[h1].Next   // c -> a
	ab := m.halfEdges[ca].Next   // a -> b
	bd := m.halfEdges[h2].Next   // b -> d
	dc := m.halfEdges[bd].Next   // d -> c

	a := m.halfEdges[ab].Origin
	d := m.halfEdges[dc].Origin
	b := m.halfEdges[h1].Origin
	c := m.halfEdges[h2].Origin

	f1 := m.halfEdges[h1].Face
	f2 := m.halfEdges[h2].Face

	m.halfEdges[h1].Origin = d
	m.halfEdges[h1].Next = ab
	m.halfEdges[ab].Next = bd
	m.halfEdges[bd].Next = h1
	m.halfEdges[bd].Face = f1

	m.halfEdges[h2].Origin = a
	m.halfEdges[h2].Next = dc
	m.halfEdges[dc].Next = ca
	m.halfEdges[ca].Next = h2
	m.halfEdges[ca].Face = f2

	m.faces[f1].HalfEdge = h1
	m.faces[f2].HalfEdge = h2

	m.vertices[b].HalfEdge = bd
	m.vertices[c].HalfEdge = ca

	return nil
}
