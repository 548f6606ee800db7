// Package ops implements the mesh rewrite algorithms layered on top of
// halfedge: subdivision, remeshing, simplification, denoising, and
// normal-direction noising.
package ops

import (
	"github.com/lukas-voss/trimesh/halfedge"
	"github.com/lukas-voss/trimesh/vecmath"
)

type edgeSnapshot struct {
	edge       int
	position   [3]float64
	farLeft    int
	farRight   int
}

// Subdivide runs iterations passes of Loop subdivision over m in place.
// Each pass exactly quadruples the live face count.
func Subdivide(m *halfedge.Mesh, iterations int) error {
	for i := 0; i < iterations; i++ {
		if err := subdivideOnce(m); err != nil {
			return err
		}
	}
	return nil
}

func subdivideOnce(m *halfedge.Mesh) error {
	snapshots, err := snapshotSubdivisionEdges(m)
	if err != nil {
		return err
	}

	newPositions, err := loopSmoothedPositions(m)
	if err != nil {
		return err
	}
	for v, p := range newPositions {
		m.SetPosition(v, vecmath.Vec3(p))
	}

	var flips []int
	for _, snap := range snapshots {
		mid, newEdges, err := m.Split(snap.edge)
		if err != nil {
			return err
		}
		m.SetPosition(mid, vecmath.Vec3(snap.position))

		// newEdges = [m-a, m-d, m-c, m-b] for the split of b-c with far
		// vertices a (left) and d (right). m-a and m-d are the candidate
		// diagonals of the original triangles; one of them is only a real
		// diagonal of its original triangle if that triangle's other edge
		// has not already been split (which would have replaced the far
		// vertex with an earlier midpoint), so each is checked against the
		// pre-split far vertex before being scheduled for a flip.
		newL, newR := newEdges[0], newEdges[1]
		if lu, lv := m.Endpoints(newL); otherEndpoint(lu, lv, mid) == snap.farLeft {
			flips = append(flips, newL)
		}
		if ru, rv := m.Endpoints(newR); otherEndpoint(ru, rv, mid) == snap.farRight {
			flips = append(flips, newR)
		}
	}

	for _, e := range flips {
		if err := m.Flip(e); err != nil {
			return err
		}
	}

	return nil
}

func otherEndpoint(u, v, mid int) int {
	if u == mid {
		return v
	}
	return u
}

func snapshotSubdivisionEdges(m *halfedge.Mesh) ([]edgeSnapshot, error) {
	var snapshots []edgeSnapshot

	for e, ok := m.InitialEdge(); ok; e, ok = m.NextEdge(e) {
		n := m.EdgeNeighbors(e)
		if !n.HasFarRight {
			return nil, halfedge.ErrBoundary
		}

		pu := m.Position(n.U)
		pv := m.Position(n.V)
		pl := m.Position(n.FarLeft)
		pr := m.Position(n.FarRight)

		pos := pu.Add(pv).Scale(3.0 / 8.0).Add(pl.Add(pr).Scale(1.0 / 8.0))

		snapshots = append(snapshots, edgeSnapshot{
			edge:     e,
			position: [3]float64(pos),
			farLeft:  n.FarLeft,
			farRight: n.FarRight,
		})
	}

	return snapshots, nil
}

func loopSmoothedPositions(m *halfedge.Mesh) (map[int][3]float64, error) {
	out := make(map[int][3]float64)
	var ring []int

	for v, ok := m.InitialVertex(); ok; v, ok = m.NextVertex(v) {
		var err error
		ring, err = m.VertexOneRing(v, ring)
		if err != nil {
			return nil, err
		}

		n := len(ring)
		u := 3.0 / 16.0
		if n != 3 {
			u = 3.0 / (8.0 * float64(n))
		}

		p := m.Position(v)
		sum := p.Scale(0)
		for _, nb := range ring {
			sum = sum.Add(m.Position(nb))
		}

		newPos := p.Scale(1 - float64(n)*u).Add(sum.Scale(u))
		out[v] = [3]float64(newPos)
	}

	return out, nil
}
