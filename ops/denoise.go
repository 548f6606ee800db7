package ops

import (
	"math"

	"github.com/lukas-voss/trimesh/halfedge"
	"github.com/lukas-voss/trimesh/vecmath"
)

// DenoiseConfig configures BilateralDenoise.
type DenoiseConfig struct {
	Iterations int
	SigmaC     float64
	SigmaS     float64
	KernelSize int
}

// BilateralDenoise runs cfg.Iterations passes of a bilateral filter over
// the geodesic-ring neighborhood of each vertex.
func BilateralDenoise(m *halfedge.Mesh, cfg DenoiseConfig) error {
	for i := 0; i < cfg.Iterations; i++ {
		if err := denoiseOnce(m, cfg); err != nil {
			return err
		}
	}
	return nil
}

func denoiseOnce(m *halfedge.Mesh, cfg DenoiseConfig) error {
	type update struct {
		vertex int
		pos    vecmath.Vec3
	}
	var updates []update
	var scratch []int

	for v, ok := m.InitialVertex(); ok; v, ok = m.NextVertex(v) {
		n, err := m.VertexNormal(v, scratch)
		if err != nil {
			return err
		}

		neighborhood, err := bfsRingNeighborhood(m, v, cfg.KernelSize)
		if err != nil {
			return err
		}

		p := m.Position(v)
		var sumWH, sumW float64

		for q := range neighborhood {
			delta := p.Sub(m.Position(q))
			t := delta.Mag()
			height := n.Dot(delta)

			wc := math.Exp(-(t * t) / (2 * cfg.SigmaC * cfg.SigmaC))
			ws := math.Exp(-(height * height) / (2 * cfg.SigmaS * cfg.SigmaS))
			w := wc * ws

			sumWH += w * height
			sumW += w
		}

		newPos := p
		if sumW != 0 {
			newPos = p.Sub(n.Scale(sumWH / sumW))
		}

		updates = append(updates, update{vertex: v, pos: newPos})
	}

	for _, u := range updates {
		m.SetPosition(u.vertex, u.pos)
	}

	return nil
}

// bfsRingNeighborhood returns the set of vertices reachable from start
// within depth one-ring hops (inclusive of start itself).
func bfsRingNeighborhood(m *halfedge.Mesh, start, depth int) (map[int]struct{}, error) {
	visited := map[int]struct{}{start: {}}
	frontier := []int{start}
	var ring []int

	for d := 0; d < depth; d++ {
		var next []int
		for _, v := range frontier {
			var err error
			ring, err = m.VertexOneRing(v, ring)
			if err != nil {
				return nil, err
			}
			for _, nb := range ring {
				if _, seen := visited[nb]; !seen {
					visited[nb] = struct{}{}
					next = append(next, nb)
				}
			}
		}
		frontier = next
	}

	return visited, nil
}
