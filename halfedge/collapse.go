package halfedge

// EdgeEndpointChange records that an edge's far endpoint (the one not
// merged away) now connects to a different vertex after a collapse.
type EdgeEndpointChange struct {
	Edge  int
	Other int
}

// CollapseResult describes the effect of a successful Collapse.
type CollapseResult struct {
	RetainedVertex int
	Modified       []EdgeEndpointChange
	Removed        []int
}

// Collapse merges the edge (c,d) into its d endpoint, deleting c along
// with the two triangles incident to the edge. It refuses rather than
// errors when the collapse would break manifoldness: a missing twin, a
// failed link condition, or either wing vertex having degree 3 or less
// (the collapse would leave it with degree 2 or less).
// Refusal is reported via the boolean result, not an error, since it is
// an expected, recoverable outcome for callers like simplification that
// probe many candidate edges.
func (m *Mesh) Collapse(edge int, scratchC, scratchD []int) (CollapseResult, bool) {
	h1 := m.edges[edge].HalfEdge // c -> d
	if m.halfEdges[h1].IsBoundary() {
		return CollapseResult{}, false
	}
	h2 := m.halfEdges[h1].Twin // d -> c

	da := m.halfEdges[h1].Next // d -> a
	ac := m.halfEdges[da].Next // a -> c
	cb := m.halfEdges[h2].Next // c -> b
	bd := m.halfEdges[cb].Next // b -> d

	c := m.halfEdges[h1].Origin
	d := m.halfEdges[h2].Origin
	a := m.halfEdges[ac].Origin
	b := m.halfEdges[bd].Origin

	if a == b {
		return CollapseResult{}, false
	}

	ringC, err := m.VertexOneRing(c, scratchC)
	if err != nil {
		return CollapseResult{}, false
	}
	ringD, err := m.VertexOneRing(d, scratchD)
	if err != nil {
		return CollapseResult{}, false
	}

	inD := make(map[int]struct{}, len(ringD))
	for _, v := range ringD {
		if v != c && v != d {
			inD[v] = struct{}{}
		}
	}
	shared := 0
	for _, v := range ringC {
		if v == c || v == d {
			continue
		}
		if _, ok := inD[v]; ok {
			shared++
		}
	}
	if shared != 2 {
		return CollapseResult{}, false
	}

	degA, err := m.Degree(a)
	if err != nil || degA <= 3 {
		return CollapseResult{}, false
	}
	degB, err := m.Degree(b)
	if err != nil || degB <= 3 {
		return CollapseResult{}, false
	}

	f1 := m.halfEdges[h1].Face
	f2 := m.halfEdges[h2].Face

	caRev := m.halfEdges[ac].Twin // c -> a, survives
	adRev := m.halfEdges[da].Twin // a -> d, survives
	bcRev := m.halfEdges[cb].Twin // b -> c, survives
	dbRev := m.halfEdges[bd].Twin // d -> b, survives

	edgeCD := edge
	edgeAC := m.halfEdges[ac].Edge
	edgeAD := m.halfEdges[da].Edge
	edgeBC := m.halfEdges[cb].Edge
	edgeBD := m.halfEdges[bd].Edge

	// Walk c's one-ring, collecting every outgoing half-edge except the
	// two belonging to the doomed triangles (h1 and cb), before mutating
	// anything: the walk relies on Next/Twin pointers that the mutation
	// below destroys.
	type rewire struct {
		he       int
		neighbor int
	}
	var rewires []rewire
	start := m.vertices[c].HalfEdge
	h := start
	for {
		he := m.halfEdges[h]
		neighbor := m.halfEdges[he.Next].Origin
		if h != h1 && h != cb {
			rewires = append(rewires, rewire{he: h, neighbor: neighbor})
		}
		nn := m.halfEdges[he.Next].Next
		h = m.halfEdges[nn].Twin
		if h == start {
			break
		}
	}

	modified := make([]EdgeEndpointChange, 0, len(rewires))
	for _, r := range rewires {
		m.halfEdges[r.he].Origin = d
		if r.neighbor != a {
			modified = append(modified, EdgeEndpointChange{Edge: m.halfEdges[r.he].Edge, Other: r.neighbor})
		}
	}

	m.halfEdges[caRev].Twin = adRev
	m.halfEdges[adRev].Twin = caRev
	m.halfEdges[caRev].Edge = edgeAD
	if m.edges[edgeAD].HalfEdge == da {
		m.edges[edgeAD].HalfEdge = adRev
	}

	m.halfEdges[bcRev].Twin = dbRev
	m.halfEdges[dbRev].Twin = bcRev
	m.halfEdges[bcRev].Edge = edgeBD
	if m.edges[edgeBD].HalfEdge == bd {
		m.edges[edgeBD].HalfEdge = dbRev
	}

	m.killHalfEdge(h1)
	m.killHalfEdge(da)
	m.killHalfEdge(ac)
	m.killHalfEdge(h2)
	m.killHalfEdge(cb)
	m.killHalfEdge(bd)

	m.killEdge(edgeCD)
	m.killEdge(edgeAC)
	m.killEdge(edgeBC)

	m.killFace(f1)
	m.killFace(f2)

	m.killVertex(c)

	m.vertices[d].HalfEdge = dbRev
	m.vertices[a].HalfEdge = adRev
	m.vertices[b].HalfEdge = bcRev

	return CollapseResult{
		RetainedVertex: d,
		Modified:       modified,
		Removed:        []int{edgeCD, edgeAC, edgeBC},
	}, true
}
