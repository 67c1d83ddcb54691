package padictree

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrZeroDenominator is returned when a rational is constructed or parsed
// with a zero denominator.
var ErrZeroDenominator = errors.New("padictree: zero denominator")

// NewRational returns num/den as an exact rational in lowest terms with a
// positive denominator. A zero denominator is a fatal input error, reported
// here rather than deferred into a later computation.
func NewRational(num, den *big.Int) (*big.Rat, error) {
	if den.Sign() == 0 {
		return nil, fmt.Errorf("%w: %s/0", ErrZeroDenominator, num.String())
	}
	return new(big.Rat).SetFrac(num, den), nil
}

// NewRationalInt64 is NewRational for machine-sized operands.
func NewRationalInt64(num, den int64) (*big.Rat, error) {
	return NewRational(big.NewInt(num), big.NewInt(den))
}

// ParseRational parses an exact rational from "n" or "n/d" decimal notation.
// Surrounding whitespace is ignored.
func ParseRational(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if numStr, denStr, found := strings.Cut(s, "/"); found {
		num, ok := new(big.Int).SetString(strings.TrimSpace(numStr), 10)
		if !ok {
			return nil, fmt.Errorf("padictree: invalid rational %q", s)
		}
		den, ok := new(big.Int).SetString(strings.TrimSpace(denStr), 10)
		if !ok {
			return nil, fmt.Errorf("padictree: invalid rational %q", s)
		}
		return NewRational(num, den)
	}
	num, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("padictree: invalid rational %q", s)
	}
	return new(big.Rat).SetInt(num), nil
}

// ratInt returns n as a rational.
func ratInt(n int64) *big.Rat {
	return new(big.Rat).SetInt64(n)
}
