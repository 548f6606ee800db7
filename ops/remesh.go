package ops

import (
	"github.com/lukas-voss/trimesh/halfedge"
	"github.com/lukas-voss/trimesh/vecmath"
)

// RemeshConfig configures IsotropicRemesh.
type RemeshConfig struct {
	Iterations      int
	SmoothingWeight float64
	AllowCollapse   bool
}

// IsotropicRemesh runs cfg.Iterations passes of split-long /
// collapse-short / valence-improving-flip / tangential-smooth over m.
func IsotropicRemesh(m *halfedge.Mesh, cfg RemeshConfig) error {
	for i := 0; i < cfg.Iterations; i++ {
		if err := remeshOnce(m, cfg); err != nil {
			return err
		}
	}
	return nil
}

func edgeLength(m *halfedge.Mesh, edge int) float64 {
	u, v := m.Endpoints(edge)
	return m.Position(u).Sub(m.Position(v)).Mag()
}

func meanEdgeLength(m *halfedge.Mesh) float64 {
	var sum float64
	var n int
	for e, ok := m.InitialEdge(); ok; e, ok = m.NextEdge(e) {
		sum += edgeLength(m, e)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func remeshOnce(m *halfedge.Mesh, cfg RemeshConfig) error {
	meanLen := meanEdgeLength(m)

	if err := splitLongEdges(m, meanLen); err != nil {
		return err
	}

	if cfg.AllowCollapse {
		collapseShortEdges(m, meanLen)
	}

	if err := valenceImprovingFlips(m); err != nil {
		return err
	}

	return tangentialSmooth(m, cfg.SmoothingWeight)
}

func splitLongEdges(m *halfedge.Mesh, meanLen float64) error {
	threshold := (4.0 / 3.0) * meanLen

	type longEdge struct {
		edge     int
		midpoint vecmath.Vec3
	}
	var targets []longEdge
	for e, ok := m.InitialEdge(); ok; e, ok = m.NextEdge(e) {
		if edgeLength(m, e) > threshold {
			u, v := m.Endpoints(e)
			targets = append(targets, longEdge{edge: e, midpoint: m.Position(u).Midpoint(m.Position(v))})
		}
	}

	for _, t := range targets {
		mid, _, err := m.Split(t.edge)
		if err != nil {
			return err
		}
		m.SetPosition(mid, t.midpoint)
	}

	return nil
}

func collapseShortEdges(m *halfedge.Mesh, meanLen float64) {
	threshold := (4.0 / 5.0) * meanLen

	type shortEdge struct {
		edge     int
		midpoint vecmath.Vec3
	}
	var targets []shortEdge
	for e, ok := m.InitialEdge(); ok; e, ok = m.NextEdge(e) {
		if edgeLength(m, e) < threshold {
			u, v := m.Endpoints(e)
			targets = append(targets, shortEdge{edge: e, midpoint: m.Position(u).Midpoint(m.Position(v))})
		}
	}

	removed := make(map[int]bool)
	var scratchC, scratchD []int

	for _, t := range targets {
		if removed[t.edge] || !m.IsLiveEdge(t.edge) {
			continue
		}
		result, ok := m.Collapse(t.edge, scratchC, scratchD)
		if !ok {
			continue
		}
		for _, r := range result.Removed {
			removed[r] = true
		}
		for _, mod := range result.Modified {
			removed[mod.Edge] = true
		}
		m.SetPosition(result.RetainedVertex, t.midpoint)
	}
}

func valenceImprovingFlips(m *halfedge.Mesh) error {
	var candidates []int
	for e, ok := m.InitialEdge(); ok; e, ok = m.NextEdge(e) {
		n := m.EdgeNeighbors(e)
		if n.HasFarRight {
			candidates = append(candidates, e)
		}
	}

	for _, e := range candidates {
		if !m.IsLiveEdge(e) {
			continue
		}
		n := m.EdgeNeighbors(e)
		if !n.HasFarRight {
			continue
		}

		du, err := m.Degree(n.U)
		if err != nil {
			continue
		}
		dv, err := m.Degree(n.V)
		if err != nil {
			continue
		}
		dTop, err := m.Degree(n.FarLeft)
		if err != nil {
			continue
		}
		dBot, err := m.Degree(n.FarRight)
		if err != nil {
			continue
		}

		flipDev := absInt(du-7) + absInt(dv-7) + absInt(dTop-5) + absInt(dBot-5)
		noFlipDev := absInt(du-6) + absInt(dv-6) + absInt(dTop-6) + absInt(dBot-6)

		if flipDev < noFlipDev && du > 3 && dv > 3 {
			if err := m.Flip(e); err != nil {
				continue
			}
		}
	}

	return nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func tangentialSmooth(m *halfedge.Mesh, weight float64) error {
	type update struct {
		vertex int
		pos    vecmath.Vec3
	}
	var updates []update
	var ring []int

	for v, ok := m.InitialVertex(); ok; v, ok = m.NextVertex(v) {
		var err error
		ring, err = m.VertexOneRing(v, ring)
		if err != nil {
			return err
		}

		var centroid vecmath.Vec3
		for _, nb := range ring {
			centroid = centroid.Add(m.Position(nb))
		}
		centroid = centroid.Scale(1 / float64(len(ring)))

		n, err := m.VertexNormal(v, ring)
		if err != nil {
			return err
		}

		p := m.Position(v)
		toCentroid := centroid.Sub(p)
		delta := toCentroid.Sub(n.Scale(n.Dot(toCentroid)))

		newPos := p.Add(delta.Scale(weight))
		if newPos.HasNaN() {
			newPos = p
		}

		updates = append(updates, update{vertex: v, pos: newPos})
	}

	for _, u := range updates {
		m.SetPosition(u.vertex, u.pos)
	}

	return nil
}
