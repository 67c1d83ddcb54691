package padictree

import "math/big"

// Distance returns the number of tree edges between v1 and v2, via the
// ultrametric closed form: with w = val(q1 - q2),
//
//	d = k1 + k2 - 2w   if w < min(k1, k2)
//	d = |k1 - k2|      otherwise
//
// Equal vertices have w = InfValuation and distance 0. No path search is
// ever needed; this closed form is what makes the Voronoi computation a
// plain per-vertex comparison.
func (t *Tree) Distance(v1, v2 Vertex) int {
	w := t.Valuation(new(big.Rat).Sub(v1.Q, v2.Q))
	minK := v1.K
	if v2.K < minK {
		minK = v2.K
	}
	if w < minK {
		return v1.K + v2.K - 2*w
	}
	if v1.K > v2.K {
		return v1.K - v2.K
	}
	return v2.K - v1.K
}
