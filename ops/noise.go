package ops

import "github.com/lukas-voss/trimesh/halfedge"

// NormalSource supplies i.i.d. samples from a normal distribution with
// mean 0 and the given standard deviation. It is the RNG collaborator the
// core treats as external; gonum.org/v2/gonum/stat/distuv.Normal is the
// default implementation wired in by the CLI.
type NormalSource interface {
	Sample(sigma float64) float64
}

// GaussianNoise perturbs each vertex along its current normal by an
// independent sample from src, in ascending vertex-index order. Because
// each vertex's normal depends on its neighbors' (possibly already
// perturbed) positions, later vertices see the effect of earlier ones:
// this ordering dependency is intentional, matching the reference
// behavior, not a bug to be fixed by snapshotting normals up front.
func GaussianNoise(m *halfedge.Mesh, sigma float64, src NormalSource) error {
	var scratch []int
	for v, ok := m.InitialVertex(); ok; v, ok = m.NextVertex(v) {
		n, err := m.VertexNormal(v, scratch)
		if err != nil {
			return err
		}
		delta := src.Sample(sigma)
		m.SetPosition(v, m.Position(v).Add(n.Scale(delta)))
	}
	return nil
}
