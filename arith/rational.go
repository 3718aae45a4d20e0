package arith

import (
	"fmt"
	"math/big"
)

// Exact-rational arithmetic is carried by big.Rat, which keeps every value as
// a reduced fraction with a positive denominator. The helpers below add the
// two checks big.Rat leaves to the caller: a zero divisor panics inside the
// standard library, and extracting an integer from a non-integral fraction
// must be an error rather than a truncation.

// NewRat builds the reduced fraction num/den.
func NewRat(num, den *big.Int) (*big.Rat, error) {
	if den.Sign() == 0 {
		return nil, fmt.Errorf("denominator %s/0: %w", num.String(), ErrDivisionByZero)
	}
	return new(big.Rat).SetFrac(num, den), nil
}

// Quo returns a/b.
func Quo(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, fmt.Errorf("rational divisor is zero: %w", ErrDivisionByZero)
	}
	return new(big.Rat).Quo(a, b), nil
}

// RatInt extracts the integer value of r, failing when r has a denominator
// other than one.
func RatInt(r *big.Rat) (*big.Int, error) {
	if !r.IsInt() {
		return nil, fmt.Errorf("value %s: %w", r.RatString(), ErrNonIntegerResult)
	}
	return new(big.Int).Set(r.Num()), nil
}
