package padictree

import (
	"fmt"
	"math/big"
)

// Action applies an invertible 2×2 rational matrix to a vertex [q]_k.
//
// The vertex is lifted to the lattice basis matrix [[p^k, q], [0, 1]] and
// multiplied by m; the product x = [[a, b], [c, d]] is then reduced back to
// vertex form. The bottom-row entry of smaller valuation decides which
// column dominates: if val(c) < val(d) the new level is
// val(det(x)) - 2·val(c) and the representative is a/c; otherwise the new
// level is val(det(x)) - 2·val(d) and the representative is b/d. The
// representative is canonicalized at the new level.
//
// When c = 0 or d = 0 exactly, the infinite-valuation sentinel routes the
// comparison to the surviving column; c and d cannot both vanish because
// det(x) = det(m)·p^k is nonzero.
func (t *Tree) Action(m Mat2, v Vertex) (Vertex, error) {
	if m.Det().Sign() == 0 {
		return Vertex{}, fmt.Errorf("%w: %s", ErrSingularMatrix, m)
	}

	pk := t.powP(v.K)
	a := new(big.Rat).Mul(m.A, pk)
	b := new(big.Rat).Mul(m.A, v.Q)
	b.Add(b, m.B)
	c := new(big.Rat).Mul(m.C, pk)
	d := new(big.Rat).Mul(m.C, v.Q)
	d.Add(d, m.D)

	det := new(big.Rat).Mul(a, d)
	det.Sub(det, new(big.Rat).Mul(b, c))

	if t.Valuation(c) < t.Valuation(d) {
		k := t.Valuation(det) - 2*t.Valuation(c)
		return t.Vertex(k, new(big.Rat).Quo(a, c)), nil
	}
	k := t.Valuation(det) - 2*t.Valuation(d)
	return t.Vertex(k, new(big.Rat).Quo(b, d)), nil
}
