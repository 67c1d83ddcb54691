package padictree

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Node colors for the interactive chart, by membership priority.
const (
	chartColorOrbit = "#da1e28" // orbit vertex
	chartColorCell  = "#24a148" // Voronoi cell of [0]_0
	chartColorHull  = "#ff832b" // convex hull
	chartColorPlain = "#8d8d8d"
)

// BuildGraph renders the window as an interactive force-directed graph with
// the orbit, convex hull and Voronoi cell color-coded. Any of orbit, hull
// and cell may be nil. The returned chart renders itself onto an HTTP
// response or into a components.Page.
func BuildGraph(s *Subtree, orbit Orbit, hull *ConvexHull, cell *VoronoiCell) *charts.Graph {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Bruhat–Tits tree for PGL(2, Q_%d)", s.tree.p),
			Subtitle: "orbit · convex hull · Voronoi cell of [0]_0",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	nodes, links := graphData(s, orbit, hull, cell)
	graph.AddSeries("tree", nodes, links).SetSeriesOptions(
		charts.WithGraphChartOpts(opts.GraphChart{
			Force:  &opts.GraphForce{Repulsion: 400, Gravity: 0.2},
			Layout: "force",
			Roam:   opts.Bool(true),
		}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right", Formatter: "{b}"}),
	)
	return graph
}

// graphData flattens the arena into chart nodes and parent->child links.
func graphData(s *Subtree, orbit Orbit, hull *ConvexHull, cell *VoronoiCell) ([]opts.GraphNode, []opts.GraphLink) {
	nodes := make([]opts.GraphNode, 0, len(s.nodes))
	links := make([]opts.GraphLink, 0, len(s.nodes))

	for i, n := range s.nodes {
		id := n.Vertex.ID()
		color := chartColorPlain
		switch {
		case orbit != nil && orbit[id] != nil:
			color = chartColorOrbit
		case cell != nil && cell.Vertices[id]:
			color = chartColorCell
		case hull != nil && hull.Vertices[id]:
			color = chartColorHull
		}

		nodes = append(nodes, opts.GraphNode{
			Name:      n.Vertex.String(),
			Value:     float32(n.Vertex.K),
			ItemStyle: &opts.ItemStyle{Color: color},
		})
		if n.Parent >= 0 {
			links = append(links, opts.GraphLink{
				Source: s.nodes[n.Parent].Vertex.String(),
				Target: s.nodes[i].Vertex.String(),
			})
		}
	}
	return nodes, links
}
