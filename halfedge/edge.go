package halfedge

// Edge is an undirected edge, represented by either of its two half-edges.
type Edge struct {
	HalfEdge int

	live bool
}

// Face is a triangle, represented by any of its three bounding half-edges.
type Face struct {
	HalfEdge int

	live bool
}
