package padictree

import (
	"math/big"
	"testing"
)

// orbitOf builds an orbit containing exactly the given vertices, for
// exercising the geometry stages without word enumeration.
func orbitOf(verts ...Vertex) Orbit {
	orbit := make(Orbit)
	for _, v := range verts {
		orbit[v.ID()] = &OrbitEntry{Vertex: v, Words: []string{"e"}}
	}
	return orbit
}

func TestConvexHull_PathPair(t *testing.T) {
	tree := mustTree(t, 2)
	s := NewSubtree(tree, tree.Origin())
	hull := s.ConvexHull(orbitOf(tree.Origin(), tree.Vertex(2, new(big.Rat))))
	wantVerts := []VertexID{{K: 0, Q: "0"}, {K: 1, Q: "0"}, {K: 2, Q: "0"}}
	if len(hull.Vertices) != len(wantVerts) {
		t.Fatalf("got %d hull vertices, want %d", len(hull.Vertices), len(wantVerts))
	}
	for _, id := range wantVerts {
		if !hull.Vertices[id] {
			t.Errorf("hull missing %v", id)
		}
	}
	if len(hull.Edges) != 4 {
		t.Errorf("got %d directed edges, want 4", len(hull.Edges))
	}
	for _, e := range []EdgeKey{
		{From: VertexID{K: 0, Q: "0"}, To: VertexID{K: 1, Q: "0"}},
		{From: VertexID{K: 1, Q: "0"}, To: VertexID{K: 0, Q: "0"}},
	} {
		if !hull.Edges[e] {
			t.Errorf("hull missing edge %s", e)
		}
	}
}

func TestConvexHull_ThroughCommonAncestor(t *testing.T) {
	tree := mustTree(t, 2)
	s := NewSubtree(tree, tree.Origin())
	a := tree.Vertex(2, new(big.Rat))
	b := tree.Vertex(2, big.NewRat(3, 1))
	hull := s.ConvexHull(orbitOf(a, b))
	// [0]_2 and [3]_2 join at [0]_0: two chains of two edges each.
	if len(hull.Vertices) != 5 {
		t.Errorf("got %d hull vertices, want 5", len(hull.Vertices))
	}
	if len(hull.Edges) != 8 {
		t.Errorf("got %d directed edges, want 8", len(hull.Edges))
	}
	if !hull.Vertices[VertexID{K: 0, Q: "0"}] {
		t.Error("hull missing the common ancestor [0]_0")
	}
	if !hull.Vertices[VertexID{K: 1, Q: "1"}] {
		t.Error("hull missing the interior vertex [1]_1")
	}
}

func TestConvexHull_ThreeTerminals(t *testing.T) {
	tree := mustTree(t, 2)
	s := NewSubtree(tree, tree.Origin())
	hull := s.ConvexHull(orbitOf(
		tree.Vertex(2, new(big.Rat)),
		tree.Vertex(2, big.NewRat(3, 1)),
		tree.Vertex(-1, new(big.Rat)),
	))
	if len(hull.Vertices) != 6 {
		t.Errorf("got %d hull vertices, want 6", len(hull.Vertices))
	}
	if len(hull.Edges) != 10 {
		t.Errorf("got %d directed edges, want 10", len(hull.Edges))
	}
}

func TestConvexHull_OfOrbit(t *testing.T) {
	tree := mustTree(t, 3)
	orbit, err := ComputeOrbit(tree, tree.Origin(), exampleGens(t), 1)
	if err != nil {
		t.Fatalf("ComputeOrbit: %v", err)
	}
	// The length-1 orbit is [0]_0 with its parent and its three children: a
	// star whose hull is itself.
	if len(orbit) != 5 {
		t.Fatalf("got %d orbit entries, want 5", len(orbit))
	}
	s := NewSubtree(tree, tree.Origin())
	hull := s.ConvexHull(orbit)
	if len(hull.Vertices) != 5 {
		t.Errorf("got %d hull vertices, want 5", len(hull.Vertices))
	}
	if len(hull.Edges) != 8 {
		t.Errorf("got %d directed edges, want 8", len(hull.Edges))
	}
	for id := range orbit {
		if !hull.Vertices[id] {
			t.Errorf("hull missing orbit vertex %v", id)
		}
	}
}

func TestConvexHull_Degenerate(t *testing.T) {
	tree := mustTree(t, 2)

	s := NewSubtree(tree, tree.Origin())
	hull := s.ConvexHull(Orbit{})
	if len(hull.Vertices) != 0 || len(hull.Edges) != 0 {
		t.Errorf("empty orbit: got %d vertices, %d edges", len(hull.Vertices), len(hull.Edges))
	}

	s = NewSubtree(tree, tree.Origin())
	hull = s.ConvexHull(orbitOf(tree.Vertex(2, big.NewRat(3, 1))))
	if len(hull.Vertices) != 1 || len(hull.Edges) != 0 {
		t.Errorf("single vertex: got %d vertices, %d edges", len(hull.Vertices), len(hull.Edges))
	}
	if !hull.Vertices[VertexID{K: 2, Q: "3"}] {
		t.Error("single-vertex hull missing its vertex")
	}
}

func TestConvexHull_WindowIndependent(t *testing.T) {
	tree := mustTree(t, 2)
	orbit := orbitOf(tree.Vertex(2, new(big.Rat)), tree.Vertex(2, big.NewRat(3, 1)))

	plain := NewSubtree(tree, tree.Origin())
	a := plain.ConvexHull(orbit)

	expanded := NewSubtree(tree, tree.Vertex(-2, new(big.Rat)))
	expanded.ExpandToLevel(3)
	b := expanded.ConvexHull(orbit)

	if len(a.Vertices) != len(b.Vertices) || len(a.Edges) != len(b.Edges) {
		t.Fatalf("hull depends on the window: %d/%d vertices, %d/%d edges",
			len(a.Vertices), len(b.Vertices), len(a.Edges), len(b.Edges))
	}
	for id := range a.Vertices {
		if !b.Vertices[id] {
			t.Errorf("expanded-window hull missing %v", id)
		}
	}
}

func TestEdgeKeyString(t *testing.T) {
	e := EdgeKey{From: VertexID{K: 0, Q: "0"}, To: VertexID{K: 1, Q: "1/2"}}
	if got, want := e.String(), "0-0->1-1/2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
