package ops

import (
	"math/rand"

	"gonum.org/v2/gonum/stat/distuv"
)

// GonumNormalSource is the default NormalSource, backed by
// gonum.org/v2/gonum/stat/distuv rather than a hand-rolled Box-Muller
// transform.
type GonumNormalSource struct {
	Rand *rand.Rand
}

// NewGonumNormalSource builds a source seeded deterministically from seed.
func NewGonumNormalSource(seed int64) *GonumNormalSource {
	return &GonumNormalSource{Rand: rand.New(rand.NewSource(seed))}
}

// Sample draws one value from N(0, sigma^2).
func (s *GonumNormalSource) Sample(sigma float64) float64 {
	n := distuv.Normal{Mu: 0, Sigma: sigma, Src: s.Rand}
	return n.Rand()
}
