package padictree

import (
	"math/big"
	"testing"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		q    string
		k    int
		p    int
		want string
	}{
		// k >= 0, p-integral q: residue in [0, p^k) via modular inverse.
		{"1/3", 1, 2, "1"},
		{"22/7", 3, 2, "2"},
		{"-1", 2, 3, "8"},
		{"4", 0, 2, "0"},
		{"10", 2, 5, "10"},
		{"-7/3", 2, 5, "6"},
		// negative valuation: unit part reduced, p-power denominator kept.
		{"3/8", 0, 2, "3/8"},
		{"-3/8", 0, 2, "5/8"},
		{"17/2", 2, 2, "1/2"},
		{"9/4", -1, 2, "1/4"},
		// valuation >= k: the coset is p^k·Z_p itself.
		{"5/2", -1, 2, "0"},
		{"8", 2, 2, "0"},
		{"0", 3, 2, "0"},
		{"0", -2, 2, "0"},
		// representatives with a unit tail in the denominator must agree:
		// 7/6 and 1/2 name the same 2-adic coset at level 1.
		{"7/6", 1, 2, "1/2"},
		{"1/2", 1, 2, "1/2"},
	}
	for _, tt := range tests {
		tree := mustTree(t, tt.p)
		got := tree.Canonicalize(mustRat(t, tt.q), tt.k)
		if got.RatString() != tt.want {
			t.Errorf("Canonicalize(%s, %d, p=%d) = %s, want %s",
				tt.q, tt.k, tt.p, got.RatString(), tt.want)
		}
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	for _, p := range []int{2, 3, 5} {
		tree := mustTree(t, p)
		for _, q := range []string{"0", "7/6", "-22/7", "3/8", "-3/8", "17/2", "1/3", "41", "-5/9"} {
			for k := -4; k <= 5; k++ {
				once := tree.Canonicalize(mustRat(t, q), k)
				twice := tree.Canonicalize(once, k)
				if once.Cmp(twice) != 0 {
					t.Errorf("p=%d q=%s k=%d: Canonicalize not idempotent: %s then %s",
						p, q, k, once.RatString(), twice.RatString())
				}
			}
		}
	}
}

func TestCanonicalize_FundamentalDomain(t *testing.T) {
	for _, p := range []int{2, 3, 5} {
		tree := mustTree(t, p)
		for _, qs := range []string{"7/6", "-22/7", "3/8", "-3/8", "17/2", "1/3", "41", "-5/9"} {
			q := mustRat(t, qs)
			for k := -4; k <= 5; k++ {
				r := tree.Canonicalize(q, k)
				// 0 <= r < p^k.
				if r.Sign() < 0 {
					t.Fatalf("p=%d q=%s k=%d: negative representative %s", p, qs, k, r.RatString())
				}
				if r.Cmp(tree.powP(k)) >= 0 {
					t.Fatalf("p=%d q=%s k=%d: representative %s outside [0, p^k)", p, qs, k, r.RatString())
				}
				// Same coset: val(q - r) >= k.
				diff := new(big.Rat).Sub(q, r)
				if w := tree.Valuation(diff); w < k {
					t.Fatalf("p=%d q=%s k=%d: representative %s not in the coset (val %d)",
						p, qs, k, r.RatString(), w)
				}
				// k >= 0 with p-integral q: plain integer residue.
				if k >= 0 && tree.Valuation(q) >= 0 {
					if r.Denom().Cmp(big.NewInt(1)) != 0 {
						t.Fatalf("p=%d q=%s k=%d: integral coset got fractional representative %s",
							p, qs, k, r.RatString())
					}
				}
			}
		}
	}
}

func TestCanonicalize_MemoSharing(t *testing.T) {
	tree := mustTree(t, 2)
	a := tree.Canonicalize(mustRat(t, "7/6"), 1)
	b := tree.Canonicalize(mustRat(t, "7/6"), 1)
	if a != b {
		t.Error("repeated canonicalization should return the cached rational")
	}
}
