package sieve

import (
	"math/big"

	"github.com/quorumvault/shamirx/arith"
	"github.com/quorumvault/shamirx/shamir"
)

// Solve filters the shares and reconstructs the secret from k authentic
// ones. Any k of the authentic subset determine the same polynomial, so the
// choice does not matter; the first k in input order are used. Errors from
// either stage are returned as-is, and no plausible-but-wrong secret is ever
// produced: every non-consensus path ends in an error.
func Solve(shares []*shamir.Share, k int) (*big.Int, error) {
	authentic, err := Filter(shares, k)
	if err != nil {
		return nil, err
	}
	return shamir.Reconstruct(authentic[:k])
}

// SolveMod is Solve over a prime field.
func SolveMod(shares []*shamir.Share, k int, field *arith.Field) (*big.Int, error) {
	authentic, err := FilterMod(shares, k, field)
	if err != nil {
		return nil, err
	}
	return shamir.ReconstructMod(authentic[:k], field)
}

// SolveParallel is Solve with a parallel filtering stage.
func SolveParallel(shares []*shamir.Share, k, workers int) (*big.Int, error) {
	authentic, err := FilterParallel(shares, k, workers)
	if err != nil {
		return nil, err
	}
	return shamir.Reconstruct(authentic[:k])
}

// SolveModParallel is SolveMod with a parallel filtering stage.
func SolveModParallel(shares []*shamir.Share, k int, field *arith.Field, workers int) (*big.Int, error) {
	authentic, err := FilterModParallel(shares, k, field, workers)
	if err != nil {
		return nil, err
	}
	return shamir.ReconstructMod(authentic[:k], field)
}
