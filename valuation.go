package padictree

import (
	"math"
	"math/big"
)

// InfValuation is the p-adic valuation of zero. It compares greater than
// every finite valuation, which is exactly what the action formula's branch
// selection relies on when a matrix entry vanishes.
const InfValuation = math.MaxInt

// IntExponent returns the largest e such that p^e divides n.
// For n = 0 it returns InfValuation.
func IntExponent(n *big.Int, p int) int {
	if n.Sign() == 0 {
		return InfValuation
	}
	pBig := big.NewInt(int64(p))
	m := new(big.Int).Abs(n)
	quo := new(big.Int)
	rem := new(big.Int)
	e := 0
	for {
		quo.QuoRem(m, pBig, rem)
		if rem.Sign() != 0 {
			return e
		}
		m.Set(quo)
		e++
	}
}

// Valuation returns the p-adic valuation of q: the exponent of p in the
// numerator minus the exponent of p in the denominator. Negative for
// fractions with p in the denominator; InfValuation for q = 0.
func (t *Tree) Valuation(q *big.Rat) int {
	if q.Sign() == 0 {
		return InfValuation
	}
	return IntExponent(q.Num(), t.p) - IntExponent(q.Denom(), t.p)
}
