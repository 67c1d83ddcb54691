package padictree

import (
	"math/big"
	"testing"
)

func TestSubtreeInsert_Descendant(t *testing.T) {
	tree := mustTree(t, 2)
	s := NewSubtree(tree, tree.Origin())
	idx := s.Insert(tree.Vertex(2, big.NewRat(3, 1)))
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	want := []string{"[0]_0", "[1]_1", "[3]_2"}
	for i, w := range want {
		if got := s.Node(i).Vertex.String(); got != w {
			t.Errorf("node %d = %s, want %s", i, got, w)
		}
	}
	if idx != 2 {
		t.Errorf("Insert returned %d, want 2", idx)
	}
	if s.Node(idx).Parent != 1 || s.Node(1).Parent != s.Root() {
		t.Error("parent chain does not run through [1]_1 to the root")
	}
	if s.Node(s.Root()).Parent != -1 {
		t.Error("root must have no parent")
	}
}

func TestSubtreeInsert_LiftsRoot(t *testing.T) {
	tree := mustTree(t, 2)
	s := NewSubtree(tree, tree.Origin())
	idx := s.Insert(tree.Vertex(-2, new(big.Rat)))
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	root := s.Node(s.Root())
	if root.Vertex.String() != "[0]_-2" {
		t.Fatalf("root = %s, want [0]_-2", root.Vertex)
	}
	if idx != s.Root() {
		t.Errorf("inserted vertex should be the lifted root")
	}
	// The old root is now an interior node on the chain down from the new one.
	at, ok := s.Lookup(VertexID{K: 0, Q: "0"})
	if !ok {
		t.Fatal("original root vanished from the index")
	}
	if s.Node(at).Parent < 0 {
		t.Error("original root should have gained a parent")
	}

	if s.Insert(tree.Vertex(2, big.NewRat(3, 1))); s.Len() != 5 {
		t.Errorf("Len = %d after adding [3]_2, want 5", s.Len())
	}
}

func TestSubtreeInsert_ExistingIsLookup(t *testing.T) {
	tree := mustTree(t, 2)
	s := NewSubtree(tree, tree.Origin())
	first := s.Insert(tree.Vertex(2, big.NewRat(3, 1)))
	n := s.Len()
	second := s.Insert(tree.Vertex(2, big.NewRat(3, 1)))
	if second != first || s.Len() != n {
		t.Errorf("re-insert allocated: idx %d vs %d, Len %d vs %d", second, first, s.Len(), n)
	}
}

func TestSubtreeInsert_CanonicalizesInput(t *testing.T) {
	tree := mustTree(t, 2)
	s := NewSubtree(tree, tree.Origin())
	// 7/6 and 1/2 name the same level-1 vertex.
	a := s.Insert(Vertex{K: 1, Q: big.NewRat(7, 6)})
	b := s.Insert(tree.Vertex(1, big.NewRat(1, 2)))
	if a != b {
		t.Errorf("equivalent representatives got distinct slots %d and %d", a, b)
	}
}

func TestSubtreeExpandToLevel(t *testing.T) {
	tree := mustTree(t, 2)
	s := NewSubtree(tree, tree.Vertex(-2, new(big.Rat)))
	s.ExpandToLevel(2)
	// Full binary window over levels -2..2: 1+2+4+8+16 nodes.
	if s.Len() != 31 {
		t.Fatalf("Len = %d, want 31", s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		n := s.Node(i)
		if n.Vertex.K < 2 && len(n.Children) != 2 {
			t.Errorf("node %s has %d children, want 2", n.Vertex, len(n.Children))
		}
		if n.Vertex.K == 2 && len(n.Children) != 0 {
			t.Errorf("leaf %s has children", n.Vertex)
		}
		for _, c := range n.Children {
			if s.Node(c).Parent != i {
				t.Errorf("child link %d -> %d not mirrored", i, c)
			}
		}
	}
}

func TestSubtreeExpandToLevel_KeepsExisting(t *testing.T) {
	tree := mustTree(t, 3)
	s := NewSubtree(tree, tree.Origin())
	deep := s.Insert(tree.Vertex(2, big.NewRat(4, 1)))
	s.ExpandToLevel(1)
	// 1 root + 3 children at level 1 + the pre-existing level-2 node.
	if s.Len() != 5 {
		t.Fatalf("Len = %d, want 5", s.Len())
	}
	if !s.Contains(s.Node(deep).Vertex) {
		t.Error("expansion dropped a pre-existing node")
	}
}

func TestSubtreeLookup(t *testing.T) {
	tree := mustTree(t, 2)
	s := NewSubtree(tree, tree.Origin())
	s.Insert(tree.Vertex(2, big.NewRat(3, 1)))
	if _, ok := s.Lookup(VertexID{K: 1, Q: "1"}); !ok {
		t.Error("intermediate chain vertex missing from the index")
	}
	if _, ok := s.Lookup(VertexID{K: 1, Q: "0"}); ok {
		t.Error("unmaterialized vertex reported present")
	}
	if !s.Contains(tree.Origin()) {
		t.Error("root missing")
	}
}
