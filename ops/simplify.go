package ops

import (
	"container/heap"

	"github.com/lukas-voss/trimesh/halfedge"
	"github.com/lukas-voss/trimesh/vecmath"
)

// heapEntry is a (cost, edge, version) record in the lazy min-heap. Stale
// entries, whose version no longer matches the authoritative edgeInfo
// table, are discarded on pop instead of being removed from the heap.
type heapEntry struct {
	cost    float64
	edge    int
	version int
}

type edgeRecord struct {
	optimal vecmath.Vec3
	u, v    int
	version int
}

type edgeHeap []heapEntry

func (h edgeHeap) Len() int            { return len(h) }
func (h edgeHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h edgeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(heapEntry)) }
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

// Simplify removes edges in order of ascending quadric-error cost until
// facesToRemove faces have been removed or no further edge can be
// collapsed. It returns the number of faces actually removed and whether
// the requested target was reached.
func Simplify(m *halfedge.Mesh, facesToRemove int) (int, bool) {
	if facesToRemove <= 0 {
		return 0, true
	}

	quadrics := buildVertexQuadrics(m)
	edgeInfo := make(map[int]*edgeRecord)
	h := &edgeHeap{}

	for e, ok := m.InitialEdge(); ok; e, ok = m.NextEdge(e) {
		u, v := m.Endpoints(e)
		rec := newEdgeRecord(m, quadrics, u, v)
		edgeInfo[e] = rec
		heap.Push(h, heapEntry{cost: edgeCost(quadrics, u, v, rec.optimal), edge: e, version: rec.version})
	}

	initialFaces := m.NumLiveFaces()
	target := initialFaces - facesToRemove
	if target < 0 {
		target = 0
	}

	removedFaces := 0
	var scratchC, scratchD []int

	for m.NumLiveFaces() > target && h.Len() > 0 {
		entry := heap.Pop(h).(heapEntry)

		rec, present := edgeInfo[entry.edge]
		if !present {
			continue
		}
		if entry.version < rec.version {
			continue
		}

		result, ok := m.Collapse(entry.edge, scratchC, scratchD)
		if !ok {
			continue
		}
		removedFaces += 2

		m.SetPosition(result.RetainedVertex, rec.optimal)

		qu := quadrics[rec.u]
		qv := quadrics[rec.v]
		qm := qu.Add(qv)
		delete(quadrics, rec.u)
		delete(quadrics, rec.v)
		quadrics[result.RetainedVertex] = qm

		delete(edgeInfo, entry.edge)
		for _, removed := range result.Removed {
			delete(edgeInfo, removed)
		}

		for _, mod := range result.Modified {
			newRec := newEdgeRecord(m, quadrics, result.RetainedVertex, mod.Other)
			if old, ok := edgeInfo[mod.Edge]; ok {
				newRec.version = old.version + 1
			}
			edgeInfo[mod.Edge] = newRec
			heap.Push(h, heapEntry{
				cost:    edgeCost(quadrics, newRec.u, newRec.v, newRec.optimal),
				edge:    mod.Edge,
				version: newRec.version,
			})
		}
	}

	reachedTarget := m.NumLiveFaces() <= target
	return removedFaces, reachedTarget
}

func newEdgeRecord(m *halfedge.Mesh, quadrics map[int]vecmath.Mat4, u, v int) *edgeRecord {
	k := quadrics[u].Add(quadrics[v])
	optimal, ok := k.OptimalPosition()
	if !ok {
		optimal = m.Position(u).Midpoint(m.Position(v))
	}
	return &edgeRecord{optimal: optimal, u: u, v: v, version: 0}
}

func edgeCost(quadrics map[int]vecmath.Mat4, u, v int, p vecmath.Vec3) float64 {
	k := quadrics[u].Add(quadrics[v])
	return k.QuadricCost(p)
}

func buildVertexQuadrics(m *halfedge.Mesh) map[int]vecmath.Mat4 {
	faceQuadrics := make(map[int]vecmath.Mat4)
	for f, ok := m.InitialFace(); ok; f, ok = m.NextFace(f) {
		a, _, _ := m.FaceVertices(f)
		n := m.FaceNormal(f)
		d := -m.Position(a).Dot(n)
		faceQuadrics[f] = vecmath.PlaneQuadric(n, d)
	}

	quadrics := make(map[int]vecmath.Mat4)
	var scratch []int
	for v, ok := m.InitialVertex(); ok; v, ok = m.NextVertex(v) {
		faces, err := m.VertexAdjacentFaces(v, scratch)
		scratch = faces
		if err != nil {
			continue
		}
		var sum vecmath.Mat4
		for _, f := range faces {
			sum = sum.Add(faceQuadrics[f])
		}
		quadrics[v] = sum
	}

	return quadrics
}
