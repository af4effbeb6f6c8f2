package graph

// NodeType distinguishes the two entity kinds a dependency graph holds.
type NodeType string

const (
	TypeIndicator NodeType = "indicator"
	TypeStrategy  NodeType = "strategy"
)

const (
	DefaultIndicatorRadius = 22.0
	DefaultStrategyRadius  = 28.0
)

// Node is a single entity in the layout. Positions and velocities are
// mutated in place by the engine; FX/FY are set externally while the node
// is dragged and cleared on release.
type Node struct {
	ID        string
	Name      string
	Type      NodeType
	X, Y      float64
	VX, VY    float64
	FX, FY    *float64
	Radius    float64
	Component int
}

// Pinned reports whether the node has externally fixed coordinates.
func (n *Node) Pinned() bool {
	return n.FX != nil && n.FY != nil
}

// Pin fixes the node at (x, y) until Unpin is called.
func (n *Node) Pin(x, y float64) {
	n.FX, n.FY = &x, &y
}

func (n *Node) Unpin() {
	n.FX, n.FY = nil, nil
}

// Edge is a directed depends-on link. Direction only matters for arrow
// rendering; connectivity and force scaling treat it as undirected.
type Edge struct {
	ID     string
	Source string
	Target string
}

// Model owns the node and edge arrays consumed by the layout engine.
// Nodes live in a dense slice with stable indices; edges resolve through
// the id->index map so force accumulation never chases stale pointers.
type Model struct {
	Nodes          []Node
	Edges          []Edge
	ComponentCount int

	index map[string]int
}

// NewModel assembles a model from pre-built nodes and edges, indexing
// node IDs and deriving ComponentCount from the Component labels already
// on the nodes. Use Build when components still need to be computed.
func NewModel(nodes []Node, edges []Edge) *Model {
	m := &Model{
		Nodes: nodes,
		Edges: edges,
		index: make(map[string]int, len(nodes)),
	}
	for i := range nodes {
		m.index[nodes[i].ID] = i
		if nodes[i].Component >= m.ComponentCount {
			m.ComponentCount = nodes[i].Component + 1
		}
	}
	return m
}

// IndexOf resolves a node ID to its slice index.
func (m *Model) IndexOf(id string) (int, bool) {
	i, ok := m.index[id]
	return i, ok
}

// Endpoints resolves an edge to node indices. The second result is false
// when either endpoint is unknown; such edges are skipped, not reported.
func (m *Model) Endpoints(e Edge) (int, int, bool) {
	si, ok := m.index[e.Source]
	if !ok {
		return 0, 0, false
	}
	ti, ok := m.index[e.Target]
	if !ok {
		return 0, 0, false
	}
	return si, ti, true
}

// Degree returns the number of resolvable edges touching node i.
func (m *Model) Degree(i int) int {
	d := 0
	for _, e := range m.Edges {
		si, ti, ok := m.Endpoints(e)
		if !ok {
			continue
		}
		if si == i || ti == i {
			d++
		}
	}
	return d
}
