package halfedge

import "errors"

var (
	// ErrNonManifold is returned when construction finds two triangles
	// inducing the same directed half-edge.
	ErrNonManifold = errors.New("halfedge: non-manifold input")

	// ErrDegenerateFace is returned when a triangle repeats a vertex.
	ErrDegenerateFace = errors.New("halfedge: degenerate face")

	// ErrBoundary is returned by primitives that require a closed
	// manifold (flip, split, and the adjacency walks) when they
	// encounter a half-edge with no twin. The core does not attempt to
	// repair boundaries; callers treat this as fatal.
	ErrBoundary = errors.New("halfedge: boundary edge")
)
