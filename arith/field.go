package arith

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrDivisionByZero is returned when a divisor or inverse target is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNonIntegerResult is returned when an exact-rational computation does
	// not reduce to a whole integer.
	ErrNonIntegerResult = errors.New("result is not an integer")
)

// Field performs arithmetic modulo a fixed prime. Every result lies in
// [0, modulus). The modulus must exceed all values fed into it, otherwise
// distinct inputs can collide; callers that cannot bound their inputs should
// use exact-rational arithmetic instead.
type Field struct {
	p *big.Int
}

// NewField creates a field with the given prime modulus.
func NewField(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("modulus must be a prime >= 2")
	}
	if !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("modulus %s is not prime", p.String())
	}
	return &Field{p: new(big.Int).Set(p)}, nil
}

// Modulus returns a copy of the field's prime modulus.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// Reduce maps an arbitrary integer into [0, modulus).
func (f *Field) Reduce(a *big.Int) *big.Int {
	return new(big.Int).Mod(a, f.p)
}

func (f *Field) Add(a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Add(a, b)
	res.Mod(res, f.p)
	return
}

func (f *Field) Sub(a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Sub(a, b)
	res.Mod(res, f.p)
	return
}

func (f *Field) Mul(a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Mul(a, b)
	res.Mod(res, f.p)
	return
}

// Inv returns the multiplicative inverse of a, computed as a^(p-2) mod p.
func (f *Field) Inv(a *big.Int) (*big.Int, error) {
	r := f.Reduce(a)
	if r.Sign() == 0 {
		return nil, fmt.Errorf("inverse of zero mod %s: %w", f.p.String(), ErrDivisionByZero)
	}
	exp := new(big.Int).Sub(f.p, big.NewInt(2))
	return r.Exp(r, exp, f.p), nil
}

// Div returns a/b in the field.
func (f *Field) Div(a, b *big.Int) (*big.Int, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return nil, err
	}
	return f.Mul(a, inv), nil
}
