package shamir

import (
	"fmt"
	"math/big"

	"github.com/quorumvault/shamirx/arith"
)

// Reconstruct interpolates the secret polynomial's value at zero from the
// given shares using exact-rational arithmetic. The shares must have
// pairwise-distinct x values; every combination of exactly t shares from a
// degree t-1 polynomial yields the same constant term.
//
// The result of a genuine sharing is always a whole integer; when the input
// points do not lie on a common integer polynomial the interpolation can
// land on a fraction, which is reported as ErrNonIntegerResult instead of
// being rounded. Reconstruct performs no I/O and is safe to call from
// concurrent goroutines on disjoint inputs.
func Reconstruct(shares []*Share) (*big.Int, error) {
	if len(shares) == 0 {
		return nil, fmt.Errorf("no shares provided: %w", ErrInvalidInput)
	}
	if err := CheckDistinctX(shares); err != nil {
		return nil, err
	}
	if len(shares) == 1 {
		return new(big.Int).Set(shares[0].Y), nil
	}

	secret := new(big.Rat)
	for j, shareJ := range shares {
		// L_j(0) = prod_{i != j} (-x_i) / (x_j - x_i)
		term := new(big.Rat).SetInt(shareJ.Y)
		for i, shareI := range shares {
			if i == j {
				continue
			}
			num := new(big.Int).Neg(shareI.X)
			den := new(big.Int).Sub(shareJ.X, shareI.X)
			ratio, err := arith.NewRat(num, den)
			if err != nil {
				return nil, err
			}
			term.Mul(term, ratio)
		}
		secret.Add(secret, term)
	}

	return arith.RatInt(secret)
}

// ReconstructMod interpolates the secret at zero in the given prime field.
// Unlike the rational mode there is no integrality check: every field
// element is a valid secret, so the caller must know the modulus bounds all
// inputs.
func ReconstructMod(shares []*Share, field *arith.Field) (*big.Int, error) {
	if len(shares) == 0 {
		return nil, fmt.Errorf("no shares provided: %w", ErrInvalidInput)
	}
	if err := CheckDistinctX(shares); err != nil {
		return nil, err
	}
	if len(shares) == 1 {
		return field.Reduce(shares[0].Y), nil
	}

	secret := new(big.Int)
	for j, shareJ := range shares {
		num := big.NewInt(1)
		den := big.NewInt(1)
		for i, shareI := range shares {
			if i == j {
				continue
			}
			num = field.Mul(num, shareI.X)
			den = field.Mul(den, field.Sub(shareI.X, shareJ.X))
		}
		lJAt0, err := field.Div(num, den)
		if err != nil {
			return nil, err
		}
		term := field.Mul(shareJ.Y, lJAt0)
		secret = field.Add(secret, term)
	}

	return secret, nil
}
