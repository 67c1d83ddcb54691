package padictree

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrSingularMatrix is returned when an operation requires an invertible
// matrix but the determinant is zero.
var ErrSingularMatrix = errors.New("padictree: singular matrix")

// Mat2 is a 2×2 matrix of exact rationals, row-major:
//
//	[ A B ]
//	[ C D ]
//
// Matrices are treated as immutable; operations return new values.
type Mat2 struct {
	A, B, C, D *big.Rat
}

// NewMat2 builds a matrix from the four entries (copied, so later mutation
// of the arguments does not affect the matrix).
func NewMat2(a, b, c, d *big.Rat) Mat2 {
	return Mat2{
		A: new(big.Rat).Set(a),
		B: new(big.Rat).Set(b),
		C: new(big.Rat).Set(c),
		D: new(big.Rat).Set(d),
	}
}

// Identity returns the 2×2 identity matrix.
func Identity() Mat2 {
	return Mat2{A: ratInt(1), B: ratInt(0), C: ratInt(0), D: ratInt(1)}
}

// Mul returns the matrix product m·n.
func (m Mat2) Mul(n Mat2) Mat2 {
	mul := func(x, y *big.Rat) *big.Rat { return new(big.Rat).Mul(x, y) }
	add := func(x, y *big.Rat) *big.Rat { return new(big.Rat).Add(x, y) }
	return Mat2{
		A: add(mul(m.A, n.A), mul(m.B, n.C)),
		B: add(mul(m.A, n.B), mul(m.B, n.D)),
		C: add(mul(m.C, n.A), mul(m.D, n.C)),
		D: add(mul(m.C, n.B), mul(m.D, n.D)),
	}
}

// Det returns the determinant AD - BC.
func (m Mat2) Det() *big.Rat {
	ad := new(big.Rat).Mul(m.A, m.D)
	bc := new(big.Rat).Mul(m.B, m.C)
	return ad.Sub(ad, bc)
}

// Inverse returns m⁻¹, or ErrSingularMatrix if the determinant is zero.
func (m Mat2) Inverse() (Mat2, error) {
	det := m.Det()
	if det.Sign() == 0 {
		return Mat2{}, fmt.Errorf("%w: %s", ErrSingularMatrix, m)
	}
	inv := new(big.Rat).Inv(det)
	neg := func(x *big.Rat) *big.Rat { return new(big.Rat).Neg(x) }
	scale := func(x *big.Rat) *big.Rat { return new(big.Rat).Mul(x, inv) }
	return Mat2{
		A: scale(m.D),
		B: scale(neg(m.B)),
		C: scale(neg(m.C)),
		D: scale(m.A),
	}, nil
}

// String renders the matrix as [[a, b], [c, d]] with exact entries.
func (m Mat2) String() string {
	return fmt.Sprintf("[[%s, %s], [%s, %s]]",
		m.A.RatString(), m.B.RatString(), m.C.RatString(), m.D.RatString())
}

// ParseMat2 parses "a,b;c,d" where each entry is an exact rational in
// "n" or "n/d" notation.
func ParseMat2(s string) (Mat2, error) {
	rows := strings.Split(s, ";")
	if len(rows) != 2 {
		return Mat2{}, fmt.Errorf("padictree: matrix %q must have 2 rows separated by ';'", s)
	}
	var entries [4]*big.Rat
	for i, row := range rows {
		cols := strings.Split(row, ",")
		if len(cols) != 2 {
			return Mat2{}, fmt.Errorf("padictree: matrix row %q must have 2 entries separated by ','", row)
		}
		for j, col := range cols {
			q, err := ParseRational(col)
			if err != nil {
				return Mat2{}, err
			}
			entries[2*i+j] = q
		}
	}
	return Mat2{A: entries[0], B: entries[1], C: entries[2], D: entries[3]}, nil
}
