package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeroSource struct{}

func (zeroSource) Sample(sigma float64) float64 { return 0 }

type constantSource struct{ v float64 }

func (c constantSource) Sample(sigma float64) float64 { return c.v }

func TestGaussianNoise_ZeroSigmaIsNoOp(t *testing.T) {
	m := tetrahedron()

	var before []float64
	for v, ok := m.InitialVertex(); ok; v, ok = m.NextVertex(v) {
		p := m.Position(v)
		before = append(before, p.X(), p.Y(), p.Z())
	}

	require.NoError(t, GaussianNoise(m, 0, zeroSource{}))

	i := 0
	for v, ok := m.InitialVertex(); ok; v, ok = m.NextVertex(v) {
		p := m.Position(v)
		assert.Equal(t, before[i], p.X())
		assert.Equal(t, before[i+1], p.Y())
		assert.Equal(t, before[i+2], p.Z())
		i += 3
	}
}

func TestGaussianNoise_PerturbsAlongNormal(t *testing.T) {
	m := tetrahedron()
	v, ok := m.InitialVertex()
	require.True(t, ok)

	before := m.Position(v)
	n, err := m.VertexNormal(v, nil)
	require.NoError(t, err)

	require.NoError(t, GaussianNoise(m, 1, constantSource{v: 0.5}))

	expected := before.Add(n.Scale(0.5))
	got := m.Position(v)
	assert.InDelta(t, expected.X(), got.X(), 1e-9)
	assert.InDelta(t, expected.Y(), got.Y(), 1e-9)
	assert.InDelta(t, expected.Z(), got.Z(), 1e-9)
}
