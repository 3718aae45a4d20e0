package shamir

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Split takes a secret and splits it into n shares with a threshold of t,
// evaluating a random degree t-1 polynomial at x = 1, 2, ..., n. The
// arithmetic is performed modulo the given prime.
func Split(secret *big.Int, n, t int, prime *big.Int) ([]*Share, error) {
	coeffs, err := randomCoeffs(secret, n, t, prime)
	if err != nil {
		return nil, err
	}
	shares := make([]*Share, n)
	for i := 1; i <= n; i++ {
		x := big.NewInt(int64(i))
		y := evalPoly(coeffs, x, prime)
		shares[i-1] = &Share{ID: i - 1, X: x, Y: y}
	}
	return shares, nil
}

// SplitInt is the fixture counterpart of Split for exact-rational
// reconstruction: the polynomial has plain integer coefficients drawn from
// [1, coeffMax), so no modulus has to be chosen up front and the shares are
// exact integers of unbounded size.
func SplitInt(secret *big.Int, n, t int, coeffMax *big.Int) ([]*Share, error) {
	coeffs, err := randomCoeffs(secret, n, t, coeffMax)
	if err != nil {
		return nil, err
	}
	shares := make([]*Share, n)
	for i := 1; i <= n; i++ {
		x := big.NewInt(int64(i))
		y := evalPoly(coeffs, x, nil)
		shares[i-1] = &Share{ID: i - 1, X: x, Y: y}
	}
	return shares, nil
}

func randomCoeffs(secret *big.Int, n, t int, bound *big.Int) ([]*big.Int, error) {
	if t <= 0 || n < t {
		return nil, fmt.Errorf("n must be >= t and t must be > 0, got n=%d t=%d: %w", n, t, ErrInvalidInput)
	}
	if bound == nil || bound.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("coefficient bound must be >= 2: %w", ErrInvalidInput)
	}
	// f(x) = secret + a_1*x + ... + a_{t-1}*x^{t-1}
	coeffs := make([]*big.Int, t)
	coeffs[0] = new(big.Int).Set(secret)
	for i := 1; i < t; i++ {
		c, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return coeffs, nil
}

// evalPoly evaluates the polynomial at x, reducing mod prime when one is
// given.
func evalPoly(coeffs []*big.Int, x, prime *big.Int) *big.Int {
	y := new(big.Int)
	xPowJ := big.NewInt(1)
	for _, c := range coeffs {
		term := new(big.Int).Mul(c, xPowJ)
		y.Add(y, term)
		xPowJ.Mul(xPowJ, x)
		if prime != nil {
			xPowJ.Mod(xPowJ, prime)
		}
	}
	if prime != nil {
		y.Mod(y, prime)
	}
	return y
}
