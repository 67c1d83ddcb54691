package padictree

import (
	"errors"
	"fmt"
	"math/big"
	"sync"
)

// ErrNotPrime is returned by NewTree for a non-prime p.
var ErrNotPrime = errors.New("padictree: p must be prime")

// canonKey memoizes canonical representatives per (level, rendered rational).
type canonKey struct {
	k int
	q string
}

// Tree is the Bruhat–Tits tree for PGL(2, Q_p) for a fixed prime p. It owns
// the canonicalization memo cache, so equality of vertex representatives is
// decided once per (q, k) within the Tree's lifetime. Cache entries are
// written once and never invalidated; concurrent readers are safe.
type Tree struct {
	p int

	mu    sync.RWMutex
	canon map[canonKey]*big.Rat
}

// NewTree builds the tree context for prime p. Non-prime p is rejected:
// the valuation and canonicalization formulas silently produce wrong
// results on composite moduli, so the check is not left to the caller.
func NewTree(p int) (*Tree, error) {
	if p < 2 || !isPrime(p) {
		return nil, fmt.Errorf("%w, got %d", ErrNotPrime, p)
	}
	return &Tree{p: p, canon: make(map[canonKey]*big.Rat)}, nil
}

// Prime returns p.
func (t *Tree) Prime() int {
	return t.p
}

// isPrime reports primality by trial division. The primes this explorer
// runs at are tiny, so anything fancier would be wasted.
func isPrime(p int) bool {
	if p < 2 {
		return false
	}
	for d := 2; d*d <= p; d++ {
		if p%d == 0 {
			return false
		}
	}
	return true
}

// powP returns p^k as an exact rational; for negative k that is 1/p^(-k).
func (t *Tree) powP(k int) *big.Rat {
	abs := k
	if abs < 0 {
		abs = -abs
	}
	pk := new(big.Int).Exp(big.NewInt(int64(t.p)), big.NewInt(int64(abs)), nil)
	if k >= 0 {
		return new(big.Rat).SetInt(pk)
	}
	return new(big.Rat).SetFrac(big.NewInt(1), pk)
}
