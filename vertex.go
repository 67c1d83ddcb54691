package padictree

import (
	"math/big"
	"strconv"
)

// Vertex is a vertex of the Bruhat–Tits tree: the coset Q + p^K·Z_p,
// written [Q]_K. Q is always the canonical representative for level K
// (construct vertices through Tree.Vertex to guarantee this). Vertices are
// values; Q must not be mutated.
type Vertex struct {
	K int
	Q *big.Rat
}

// VertexID identifies a vertex by level and rendered canonical
// representative. It is a comparable struct usable as a map key; two
// vertices are the same tree vertex iff their IDs are equal.
type VertexID struct {
	K int
	Q string
}

// String renders the interchange form "k-q", with q as "n" or "n/d".
func (id VertexID) String() string {
	return strconv.Itoa(id.K) + "-" + id.Q
}

// ID returns the vertex's identity key.
func (v Vertex) ID() VertexID {
	return VertexID{K: v.K, Q: v.Q.RatString()}
}

// String renders the coset notation [q]_k.
func (v Vertex) String() string {
	return "[" + v.Q.RatString() + "]_" + strconv.Itoa(v.K)
}

// Equal reports whether v and w are the same tree vertex.
func (v Vertex) Equal(w Vertex) bool {
	return v.K == w.K && v.Q.Cmp(w.Q) == 0
}

// Vertex constructs the vertex [q]_k, canonicalizing q at level k.
func (t *Tree) Vertex(k int, q *big.Rat) Vertex {
	return Vertex{K: k, Q: t.Canonicalize(q, k)}
}

// Origin returns the distinguished vertex [0]_0, the class of the standard
// lattice.
func (t *Tree) Origin() Vertex {
	return t.Vertex(0, new(big.Rat))
}

// Parent returns the unique neighbor of v one level up: [q mod p^(k-1)]_(k-1).
func (t *Tree) Parent(v Vertex) Vertex {
	return t.Vertex(v.K-1, v.Q)
}

// Children returns the p neighbors of v one level down, obtained by adding
// i·p^k for i = 0..p-1.
func (t *Tree) Children(v Vertex) []Vertex {
	step := t.powP(v.K)
	children := make([]Vertex, t.p)
	for i := 0; i < t.p; i++ {
		q := new(big.Rat).Mul(ratInt(int64(i)), step)
		q.Add(q, v.Q)
		children[i] = t.Vertex(v.K+1, q)
	}
	return children
}
