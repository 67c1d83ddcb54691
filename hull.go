package padictree

// EdgeKey identifies a directed edge between two vertices.
type EdgeKey struct {
	From, To VertexID
}

// String renders the interchange form "fromId->toId".
func (e EdgeKey) String() string {
	return e.From.String() + "->" + e.To.String()
}

// ConvexHull is the union of tree-paths between every pair of orbit
// vertices. In a tree that union is the unique minimal connected subtree
// (Steiner tree) spanning the orbit, so no separate Steiner algorithm is
// needed. Edges store both orientations of each traversed edge, making
// adjacency lookups direction-agnostic.
type ConvexHull struct {
	Vertices map[VertexID]bool
	Edges    map[EdgeKey]bool
}

// ConvexHull computes the hull of the orbit over this window. Orbit
// vertices are inserted first, so the result does not depend on how deep
// the display window was expanded. For every pair, the lowest common
// ancestor is found by collecting one side's ancestor set and climbing the
// other until it hits a member; the two root-ward chains are then unioned
// into the result. O(m²·depth) for m orbit vertices — fine at the orbit
// sizes bounded word enumeration produces.
//
// An orbit with 0 or 1 vertices yields the trivial hull (empty, or a
// single vertex with no edges).
func (s *Subtree) ConvexHull(orbit Orbit) *ConvexHull {
	hull := &ConvexHull{
		Vertices: make(map[VertexID]bool),
		Edges:    make(map[EdgeKey]bool),
	}

	terminals := make([]int, 0, len(orbit))
	for _, entry := range orbit {
		terminals = append(terminals, s.Insert(entry.Vertex))
	}
	if len(terminals) == 1 {
		hull.Vertices[s.nodes[terminals[0]].Vertex.ID()] = true
		return hull
	}

	for i := 0; i < len(terminals); i++ {
		ancestors := s.ancestorSet(terminals[i])
		for j := i + 1; j < len(terminals); j++ {
			lca := terminals[j]
			for !ancestors[lca] {
				lca = s.nodes[lca].Parent
			}
			s.addPathToHull(hull, terminals[i], lca)
			s.addPathToHull(hull, terminals[j], lca)
		}
	}
	return hull
}

// addPathToHull unions the root-ward chain from start to lca (inclusive)
// into the hull, recording each traversed edge in both directions.
func (s *Subtree) addPathToHull(hull *ConvexHull, start, lca int) {
	prev := -1
	for cur := start; ; cur = s.nodes[cur].Parent {
		id := s.nodes[cur].Vertex.ID()
		hull.Vertices[id] = true
		if prev >= 0 {
			prevID := s.nodes[prev].Vertex.ID()
			hull.Edges[EdgeKey{From: prevID, To: id}] = true
			hull.Edges[EdgeKey{From: id, To: prevID}] = true
		}
		if cur == lca {
			return
		}
		prev = cur
	}
}
