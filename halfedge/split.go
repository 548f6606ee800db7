package halfedge

// Split inserts a new vertex m on edge (b,c), replacing the two triangles
// (b,c,a) and (c,b,d) with four: (m,c,a), (m,a,b), (m,b,d), (m,d,c). The new
// vertex's position is an unspecified copy of one endpoint; callers
// overwrite it immediately.
//
// It returns the new vertex and the four edges incident to it, in the
// fixed order [m-a, m-d, m-c, m-b]: the first two are the freshly created
// diagonals of the original triangles, which is the ordering loop
// subdivision relies on to know which edges to flip.
func (m *Mesh) Split(edge int) (int, [4]int, error) {
	h1 := m.edges[edge].HalfEdge // b -> c
	if m.halfEdges[h1].IsBoundary() {
		return 0, [4]int{}, ErrBoundary
	}
	h2 := m.halfEdges[h1].Twin // c -> b

	ca := m.halfEdges[h1].Next // c -> a
	ab := m.halfEdges[ca].Next // a -> b
	bd := m.halfEdges[h2].Next // b -> d
	dc := m.halfEdges[bd].Next // d -> c

	b := m.halfEdges[h1].Origin
	c := m.halfEdges[h2].Origin
	a := m.halfEdges[ab].Origin
	d := m.halfEdges[dc].Origin

	f1 := m.halfEdges[h1].Face
	f2 := m.halfEdges[h2].Face

	mid := m.allocVertex(m.vertices[b].Point)

	fNew1 := m.allocFace(-1) // (m,c,a)
	fNew2 := m.allocFace(-1) // (m,b,d)

	heMA := m.allocHalfEdge() // m -> a, in (m,a,b) == f1
	heAM := m.allocHalfEdge() // a -> m, in (m,c,a) == fNew1
	heMC := m.allocHalfEdge() // m -> c, in (m,c,a) == fNew1
	heMD := m.allocHalfEdge() // m -> d, in (m,d,c) == f2
	heDM := m.allocHalfEdge() // d -> m, in (m,b,d) == fNew2
	heMB := m.allocHalfEdge() // m -> b, in (m,b,d) == fNew2

	// (m,a,b): heMA -> ab -> h1 -> heMA, face f1
	m.halfEdges[heMA].Origin = mid
	m.halfEdges[heMA].Face = f1
	m.halfEdges[heMA].Next = ab
	m.halfEdges[ab].Next = h1
	m.halfEdges[h1].Next = heMA
	m.halfEdges[h1].Origin = b // unchanged, now represents b -> m

	// (m,c,a): heMC -> ca -> heAM -> heMC, face fNew1
	m.halfEdges[heMC].Origin = mid
	m.halfEdges[heMC].Face = fNew1
	m.halfEdges[heMC].Next = ca
	m.halfEdges[ca].Next = heAM
	m.halfEdges[ca].Face = fNew1
	m.halfEdges[heAM].Origin = a
	m.halfEdges[heAM].Face = fNew1
	m.halfEdges[heAM].Next = heMC

	// (m,d,c): heMD -> dc -> h2 -> heMD, face f2
	m.halfEdges[heMD].Origin = mid
	m.halfEdges[heMD].Face = f2
	m.halfEdges[heMD].Next = dc
	m.halfEdges[dc].Next = h2
	m.halfEdges[h2].Next = heMD
	m.halfEdges[h2].Origin = c // unchanged, now represents c -> m

	// (m,b,d): heMB -> bd -> heDM -> heMB, face fNew2
	m.halfEdges[heMB].Origin = mid
	m.halfEdges[heMB].Face = fNew2
	m.halfEdges[heMB].Next = bd
	m.halfEdges[bd].Next = heDM
	m.halfEdges[bd].Face = fNew2
	m.halfEdges[heDM].Origin = d
	m.halfEdges[heDM].Face = fNew2
	m.halfEdges[heDM].Next = heMB

	// twins
	m.halfEdges[h1].Twin = heMB
	m.halfEdges[heMB].Twin = h1
	m.halfEdges[h2].Twin = heMC
	m.halfEdges[heMC].Twin = h2
	m.halfEdges[heMA].Twin = heAM
	m.halfEdges[heAM].Twin = heMA
	m.halfEdges[heMD].Twin = heDM
	m.halfEdges[heDM].Twin = heMD

	// edges: reuse the split edge for (b,m); allocate the other three
	edgeBM := edge
	m.edges[edgeBM].HalfEdge = h1
	m.halfEdges[h1].Edge = edgeBM
	m.halfEdges[heMB].Edge = edgeBM

	edgeMA := m.allocEdge(heMA)
	m.halfEdges[heMA].Edge = edgeMA
	m.halfEdges[heAM].Edge = edgeMA

	edgeMD := m.allocEdge(heMD)
	m.halfEdges[heMD].Edge = edgeMD
	m.halfEdges[heDM].Edge = edgeMD

	edgeMC := m.allocEdge(heMC)
	m.halfEdges[heMC].Edge = edgeMC
	m.halfEdges[h2].Edge = edgeMC

	// face representatives
	m.faces[f1].HalfEdge = h1
	m.faces[f2].HalfEdge = h2
	m.faces[fNew1].HalfEdge = heMC
	m.faces[fNew2].HalfEdge = heMB

	m.vertices[mid].HalfEdge = heMA

	return mid, [4]int{edgeMA, edgeMD, edgeMC, edgeBM}, nil
}
