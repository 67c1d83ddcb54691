package padictree

// SubtreeNode is one arena slot of a materialized window: a vertex, the
// arena index of its parent (-1 for the window root), and the indices of
// its materialized children.
type SubtreeNode struct {
	Vertex   Vertex
	Parent   int
	Children []int
}

// Subtree is a finite window of the tree materialized for one query: an
// arena of nodes with parent back-references plus a vertex-identity index,
// so ancestor walks are O(depth) without pointer cycles. The ambient tree
// has no root; the window root is simply the highest materialized vertex,
// and lifts itself when an insertion connects above it. Build a fresh
// Subtree per query; there is no cross-query caching of nodes.
type Subtree struct {
	tree  *Tree
	nodes []SubtreeNode
	index map[VertexID]int
	root  int
}

// NewSubtree starts a window containing only the given root vertex
// (canonicalized at its level).
func NewSubtree(t *Tree, root Vertex) *Subtree {
	s := &Subtree{tree: t, index: make(map[VertexID]int)}
	s.add(t.Vertex(root.K, root.Q), -1)
	return s
}

// add appends a node and links it under parent.
func (s *Subtree) add(v Vertex, parent int) int {
	idx := len(s.nodes)
	s.nodes = append(s.nodes, SubtreeNode{Vertex: v, Parent: parent})
	s.index[v.ID()] = idx
	if parent >= 0 {
		s.nodes[parent].Children = append(s.nodes[parent].Children, idx)
	}
	return idx
}

// Insert links v into the window and returns its arena index. The parent
// chain of v is materialized upward until it meets an existing node; when
// the chain passes the current root's level without meeting one, the root
// is lifted (its parent is materialized and adopts it) until the chains
// join at the common ancestor. Inserting a present vertex is a lookup.
func (s *Subtree) Insert(v Vertex) int {
	v = s.tree.Vertex(v.K, v.Q)
	var chain []Vertex
	cur := v
	for {
		if at, ok := s.index[cur.ID()]; ok {
			for i := len(chain) - 1; i >= 0; i-- {
				at = s.add(chain[i], at)
			}
			return at
		}
		if cur.K > s.nodes[s.root].Vertex.K {
			chain = append(chain, cur)
			cur = s.tree.Parent(cur)
			continue
		}
		s.liftRoot()
	}
}

// liftRoot materializes the current root's parent and makes it the root.
func (s *Subtree) liftRoot() {
	oldRoot := s.root
	parent := s.tree.Parent(s.nodes[oldRoot].Vertex)
	idx := len(s.nodes)
	s.nodes = append(s.nodes, SubtreeNode{
		Vertex:   parent,
		Parent:   -1,
		Children: []int{oldRoot},
	})
	s.index[parent.ID()] = idx
	s.nodes[oldRoot].Parent = idx
	s.root = idx
}

// ExpandToLevel materializes all p children of every node down to level
// maxK, filling out the display window. Nodes at or below maxK are left
// untouched.
func (s *Subtree) ExpandToLevel(maxK int) {
	for i := 0; i < len(s.nodes); i++ {
		v := s.nodes[i].Vertex
		if v.K >= maxK {
			continue
		}
		for _, child := range s.tree.Children(v) {
			if _, ok := s.index[child.ID()]; !ok {
				s.add(child, i)
			}
		}
	}
}

// Root returns the arena index of the window root.
func (s *Subtree) Root() int {
	return s.root
}

// Len returns the number of materialized nodes.
func (s *Subtree) Len() int {
	return len(s.nodes)
}

// Node returns a copy of the arena slot at index i.
func (s *Subtree) Node(i int) SubtreeNode {
	return s.nodes[i]
}

// Lookup returns the arena index of the vertex with the given identity.
func (s *Subtree) Lookup(id VertexID) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// Contains reports whether v is materialized in the window.
func (s *Subtree) Contains(v Vertex) bool {
	_, ok := s.index[v.ID()]
	return ok
}

// ancestorSet collects the arena indices on the root-ward chain from i,
// inclusive of i and the root.
func (s *Subtree) ancestorSet(i int) map[int]bool {
	set := make(map[int]bool)
	for cur := i; cur >= 0; cur = s.nodes[cur].Parent {
		set[cur] = true
	}
	return set
}
