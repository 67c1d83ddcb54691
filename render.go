package padictree

import (
	"strings"

	"github.com/xlab/treeprint"
)

// Render draws the window as an ASCII tree, one branch per materialized
// child, tagging each vertex with its memberships. Any of orbit, hull and
// cell may be nil to skip that annotation.
//
//	[0]_0  «orbit, hull, cell»
//	├── [0]_1  «hull»
//	│   └── [0]_2  «orbit, hull»
//	└── [1]_1
func (s *Subtree) Render(orbit Orbit, hull *ConvexHull, cell *VoronoiCell) string {
	tree := treeprint.New()
	tree.SetValue(s.renderLabel(s.root, orbit, hull, cell))
	s.renderChildren(tree, s.root, orbit, hull, cell)
	return tree.String()
}

func (s *Subtree) renderChildren(branch treeprint.Tree, idx int, orbit Orbit, hull *ConvexHull, cell *VoronoiCell) {
	for _, child := range s.nodes[idx].Children {
		label := s.renderLabel(child, orbit, hull, cell)
		if len(s.nodes[child].Children) == 0 {
			branch.AddNode(label)
			continue
		}
		s.renderChildren(branch.AddBranch(label), child, orbit, hull, cell)
	}
}

func (s *Subtree) renderLabel(idx int, orbit Orbit, hull *ConvexHull, cell *VoronoiCell) string {
	v := s.nodes[idx].Vertex
	id := v.ID()
	var tags []string
	if orbit != nil && orbit[id] != nil {
		tags = append(tags, "orbit")
	}
	if hull != nil && hull.Vertices[id] {
		tags = append(tags, "hull")
	}
	if cell != nil && cell.Vertices[id] {
		tags = append(tags, "cell")
	}
	if len(tags) == 0 {
		return v.String()
	}
	return v.String() + "  «" + strings.Join(tags, ", ") + "»"
}
