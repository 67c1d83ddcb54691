package padictree

import "math/big"

// Canonicalize returns the canonical representative of q's coset
// q + p^k·Z_p. The result is the unique rational r in [0, p^k) whose
// denominator is a power of p with val(q - r) >= k, computed as follows:
// with v = val(q), the coset is p^k·Z_p itself when v >= k (representative
// 0); otherwise q = u·p^v for a p-adic unit u, and r = (u mod p^(k-v))·p^v,
// the unit reduced through a modular inverse of its denominator.
//
// For k >= 0 and p-integral q this is exactly "q mod p^k as a residue in
// [0, p^k)". The unit-part reduction extends that uniformly to negative
// levels and negative valuations and keeps the form stable: representatives
// like 7/6 and 1/2 of the same 2-adic coset at k = 1 canonicalize
// identically, and Canonicalize is idempotent.
//
// The returned rational is shared with the memo cache and must not be
// mutated.
func (t *Tree) Canonicalize(q *big.Rat, k int) *big.Rat {
	key := canonKey{k: k, q: q.RatString()}
	t.mu.RLock()
	r, ok := t.canon[key]
	t.mu.RUnlock()
	if ok {
		return r
	}

	r = t.canonicalize(q, k)
	t.mu.Lock()
	t.canon[key] = r
	t.mu.Unlock()
	return r
}

func (t *Tree) canonicalize(q *big.Rat, k int) *big.Rat {
	v := t.Valuation(q)
	if v >= k {
		// Covers q = 0 (infinite valuation): the coset is p^k·Z_p.
		return new(big.Rat)
	}

	// Unit part u = q / p^v; numerator and denominator are both coprime
	// to p, so the denominator is invertible modulo p^(k-v).
	u := new(big.Rat).Quo(q, t.powP(v))
	mod := new(big.Int).Exp(big.NewInt(int64(t.p)), big.NewInt(int64(k-v)), nil)
	inv := new(big.Int).ModInverse(u.Denom(), mod)
	res := new(big.Int).Mul(u.Num(), inv)
	res.Mod(res, mod) // Euclidean: lands in [0, p^(k-v)) for negative numerators too

	return new(big.Rat).Mul(new(big.Rat).SetInt(res), t.powP(v))
}
