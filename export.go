package padictree

import (
	"strconv"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// graphNode adapts an arena slot to a gonum graph node with DOT metadata.
type graphNode struct {
	id    int64
	dotID string
	attrs []encoding.Attribute
}

func (n graphNode) ID() int64                        { return n.id }
func (n graphNode) DOTID() string                    { return n.dotID }
func (n graphNode) Attributes() []encoding.Attribute { return n.attrs }

// Graph converts the window to a gonum undirected graph whose node IDs are
// the arena indices; tree edges connect each node to its parent. Nodes
// carry DOT attributes describing orbit, hull and cell membership, so the
// result is usable both for gonum graph algorithms and for DOT rendering.
// Any of orbit, hull and cell may be nil.
func (s *Subtree) Graph(orbit Orbit, hull *ConvexHull, cell *VoronoiCell) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i, n := range s.nodes {
		id := n.Vertex.ID()
		attrs := []encoding.Attribute{
			{Key: "level", Value: strconv.Itoa(n.Vertex.K)},
		}
		color := ""
		switch {
		case orbit != nil && orbit[id] != nil:
			color = chartColorOrbit
		case cell != nil && cell.Vertices[id]:
			color = chartColorCell
		case hull != nil && hull.Vertices[id]:
			color = chartColorHull
		}
		if color != "" {
			attrs = append(attrs,
				encoding.Attribute{Key: "style", Value: "filled"},
				encoding.Attribute{Key: "fillcolor", Value: strconv.Quote(color)},
			)
		}
		g.AddNode(graphNode{
			id:    int64(i),
			dotID: strconv.Quote(id.String()),
			attrs: attrs,
		})
	}
	for i, n := range s.nodes {
		if n.Parent >= 0 {
			g.SetEdge(g.NewEdge(g.Node(int64(n.Parent)), g.Node(int64(i))))
		}
	}
	return g
}

// MarshalDOT renders the window as Graphviz DOT with membership attributes.
func (s *Subtree) MarshalDOT(orbit Orbit, hull *ConvexHull, cell *VoronoiCell) ([]byte, error) {
	return dot.Marshal(s.Graph(orbit, hull, cell), "padictree", "", "  ")
}
