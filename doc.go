// Package padictree implements the arithmetic core of a Bruhat–Tits tree
// explorer for PGL(2, Q_p): exact rational arithmetic over big integers,
// p-adic valuation and vertex canonicalization, the 2×2 matrix action on
// tree vertices, bounded enumeration of freely-reduced generator words with
// orbit and stabilizer maps, and two derived structures over an orbit — the
// convex hull (Steiner tree) and the Voronoi cell of the distinguished
// vertex [0]_0 under the tree's ultrametric distance.
//
// Vertices of the tree are cosets q + p^k·Z_p, written [q]_k. Every vertex
// at level k has one parent at level k-1 and p children at level k+1, so the
// tree is (p+1)-regular and conceptually unbounded in both directions; a
// Subtree is a finite window materialized for one query.
//
// Basic usage:
//
//	cfg := padictree.DefaultConfig()
//	cfg.P = 3
//	g1, _ := padictree.ParseMat2("3,0;0,1")
//	g2, _ := padictree.ParseMat2("5,-4;2,-1")
//	cfg.Generators = []padictree.Mat2{g1, g2}
//	result, err := padictree.Explore(cfg)
//	// result.Orbit maps vertex IDs to the words reaching them
//	// result.Stabilizer lists the words fixing the base vertex
//	// result.Hull and result.Cell are the derived structures
//
// The algebra layers are also usable directly: build a Tree with NewTree,
// construct vertices with Tree.Vertex, and combine Tree.Action,
// Tree.Distance, GenerateGroupWords and ComputeOrbit as needed. All
// computation is synchronous and CPU-bound; a Tree's canonicalization cache
// is safe for concurrent readers.
package padictree
