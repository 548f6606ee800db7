package halfedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapse_TetrahedronAlwaysRefused(t *testing.T) {
	// Every vertex of a tetrahedron has degree 3; collapsing any edge
	// would drop a wing vertex below the minimum valence for a
	// manifold triangle mesh, so every edge must refuse.
	m := tetrahedron()
	var scratchC, scratchD []int
	for e, ok := m.InitialEdge(); ok; e, ok = m.NextEdge(e) {
		_, committed := m.Collapse(e, scratchC, scratchD)
		assert.False(t, committed, "edge %d should have refused", e)
	}
	assert.Equal(t, 4, m.NumLiveVertices())
	assert.Equal(t, 6, m.NumLiveEdges())
	assert.Equal(t, 4, m.NumLiveFaces())
}

func TestCollapse_OctahedronShrinksCountsAndPreservesClosure(t *testing.T) {
	m := octahedron()
	edge, ok := m.InitialEdge()
	require.True(t, ok)

	u, v := m.Endpoints(edge)

	result, committed := m.Collapse(edge, nil, nil)
	require.True(t, committed)

	assert.Equal(t, 5, m.NumLiveVertices())
	assert.Equal(t, 9, m.NumLiveEdges())
	assert.Equal(t, 6, m.NumLiveFaces())
	assert.True(t, m.IsClosed())
	assertInvariants(t, m)

	assert.True(t, result.RetainedVertex == u || result.RetainedVertex == v)
	assert.False(t, m.IsLiveVertex(u) && m.IsLiveVertex(v), "one endpoint must be removed")
	assert.Len(t, result.Removed, 3)

	for _, mod := range result.Modified {
		assert.True(t, m.IsLiveEdge(mod.Edge))
		assert.True(t, m.IsLiveVertex(mod.Other))
	}
}

func TestCollapse_MissingTwinRefused(t *testing.T) {
	m := openQuad()
	var boundary int
	for e, ok := m.InitialEdge(); ok; e, ok = m.NextEdge(e) {
		h := m.edges[e].HalfEdge
		if m.halfEdges[h].IsBoundary() {
			boundary = e
			break
		}
	}
	_, committed := m.Collapse(boundary, nil, nil)
	assert.False(t, committed)
}
