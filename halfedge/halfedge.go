// Package halfedge implements a mutable half-edge mesh for closed, oriented,
// manifold triangle surfaces: an arena of vertices, edges, faces and half
// edges addressed by dense integer ids that stay stable across deletion.
// Deleted slots are tombstoned, never reused and never renumbered during a
// run; compaction happens only on Export.
package halfedge

// HalfEdge is one directed half of an undirected edge, bound to exactly one
// triangular face on its left. There is no explicit Prev: since every face
// is a triangle, Prev(h) == Next(Next(h)).
type HalfEdge struct {
	Origin int // vertex at the tail of this directed half-edge
	Edge   int // the undirected edge this half belongs to
	Face   int // the face to the left of this half-edge
	Next   int // next half-edge around Face, CCW
	Twin   int // opposite half-edge, or -1 on a boundary

	live bool
}

// IsBoundary reports whether h has no twin.
func (h HalfEdge) IsBoundary() bool {
	return h.Twin < 0
}
