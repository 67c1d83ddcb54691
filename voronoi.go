package padictree

// VoronoiCell is the cell of the distinguished vertex [0]_0 with respect to
// the other orbit vertices: the window vertices strictly closer to [0]_0
// than to every other orbit vertex. Boundary vertices (ties) are excluded
// from Vertices, but their incident edges are still classified. FullEdges
// have both endpoints in the cell (keyed parent->child); HalfEdges have
// exactly one (keyed in-cell endpoint -> out-of-cell endpoint, the
// direction a renderer draws to the edge midpoint).
type VoronoiCell struct {
	Vertices  map[VertexID]bool
	HalfEdges map[EdgeKey]bool
	FullEdges map[EdgeKey]bool
}

// VoronoiCell classifies every window vertex against the orbit. If [0]_0
// is absent from the orbit there is no distinguished point to center the
// cell on and the result is empty. Otherwise orbit vertices are inserted
// into the window and each window vertex is tested by the closed-form
// ultrametric distance — one evaluation per other orbit vertex, no path
// search.
func (s *Subtree) VoronoiCell(orbit Orbit) *VoronoiCell {
	cell := &VoronoiCell{
		Vertices:  make(map[VertexID]bool),
		HalfEdges: make(map[EdgeKey]bool),
		FullEdges: make(map[EdgeKey]bool),
	}

	base := s.tree.Origin()
	baseID := base.ID()
	if orbit[baseID] == nil {
		return cell
	}

	others := make([]Vertex, 0, len(orbit)-1)
	for id, entry := range orbit {
		s.Insert(entry.Vertex)
		if id != baseID {
			others = append(others, entry.Vertex)
		}
	}

	inCell := make([]bool, len(s.nodes))
	for i := range s.nodes {
		v := s.nodes[i].Vertex
		toBase := s.tree.Distance(v, base)
		in := true
		for _, w := range others {
			if toBase >= s.tree.Distance(v, w) {
				in = false
				break
			}
		}
		inCell[i] = in
		if in {
			cell.Vertices[v.ID()] = true
		}
	}

	for i := range s.nodes {
		parent := s.nodes[i].Parent
		if parent < 0 {
			continue
		}
		parentID := s.nodes[parent].Vertex.ID()
		childID := s.nodes[i].Vertex.ID()
		switch {
		case inCell[parent] && inCell[i]:
			cell.FullEdges[EdgeKey{From: parentID, To: childID}] = true
		case inCell[parent]:
			cell.HalfEdges[EdgeKey{From: parentID, To: childID}] = true
		case inCell[i]:
			cell.HalfEdges[EdgeKey{From: childID, To: parentID}] = true
		}
	}
	return cell
}
