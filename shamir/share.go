package shamir

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/quorumvault/shamirx/arith"
)

var (
	// ErrInvalidInput is returned for malformed thresholds, too few shares,
	// or a duplicated evaluation point within one working set.
	ErrInvalidInput = errors.New("invalid input")

	// Aliases for the arithmetic-layer errors, so callers of this package
	// can match every reconstruction failure in one place.
	ErrDivisionByZero   = arith.ErrDivisionByZero
	ErrNonIntegerResult = arith.ErrNonIntegerResult
)

// Share is one sample (x, f(x)) of the secret polynomial. ID is a stable
// identity assigned at creation; it survives reordering and lets callers
// regroup shares after filtering. Shares are treated as read-only once built.
type Share struct {
	ID int
	X  *big.Int
	Y  *big.Int
}

// NewShare builds a share with its own copies of x and y.
func NewShare(id int, x, y *big.Int) *Share {
	return &Share{ID: id, X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

func (s *Share) String() string {
	return fmt.Sprintf("share#%d(x=%s)", s.ID, s.X.String())
}

// CheckDistinctX verifies that no two shares sample the same point.
// Interpolation over a repeated x is ill-defined, so a duplicate must be
// rejected before any reconstruction is attempted.
func CheckDistinctX(shares []*Share) error {
	seen := make(map[string]int, len(shares))
	for _, s := range shares {
		key := s.X.String()
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("shares #%d and #%d both sample x=%s: %w", prev, s.ID, key, ErrInvalidInput)
		}
		seen[key] = s.ID
	}
	return nil
}
