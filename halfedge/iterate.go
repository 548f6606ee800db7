package halfedge

// InitialVertex returns the least live vertex id, if any.
func (m *Mesh) InitialVertex() (int, bool) { return nextLive(len(m.vertices), m.IsLiveVertex, 0) }

// NextVertex returns the least live vertex id strictly greater than i.
func (m *Mesh) NextVertex(i int) (int, bool) { return nextLive(len(m.vertices), m.IsLiveVertex, i+1) }

// InitialEdge returns the least live edge id, if any.
func (m *Mesh) InitialEdge() (int, bool) { return nextLive(len(m.edges), m.IsLiveEdge, 0) }

// NextEdge returns the least live edge id strictly greater than i.
func (m *Mesh) NextEdge(i int) (int, bool) { return nextLive(len(m.edges), m.IsLiveEdge, i+1) }

// InitialFace returns the least live face id, if any.
func (m *Mesh) InitialFace() (int, bool) { return nextLive(len(m.faces), m.IsLiveFace, 0) }

// NextFace returns the least live face id strictly greater than i.
func (m *Mesh) NextFace(i int) (int, bool) { return nextLive(len(m.faces), m.IsLiveFace, i+1) }

func nextLive(n int, live func(int) bool, from int) (int, bool) {
	for i := from; i < n; i++ {
		if live(i) {
			return i, true
		}
	}
	return 0, false
}
