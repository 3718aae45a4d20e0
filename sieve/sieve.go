// Package sieve separates authentic shares from corrupted ones by exhaustive
// majority vote: every threshold-sized combination of the input is
// interpolated, the reconstructed values are tallied, and a share counts as
// authentic when it took part in at least one combination that produced the
// winning value.
//
// The vote visits all C(m, k) combinations, so the cost is O(C(m, k) * k)
// field operations. Callers must keep m and k small enough for that to be
// tractable; m around 25 is already past five million combinations.
package sieve

import (
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/quorumvault/shamirx/arith"
	"github.com/quorumvault/shamirx/combin"
	"github.com/quorumvault/shamirx/shamir"
)

// ErrInsufficientConsistentShares is returned when no reconstructed value
// attracted at least k supporting shares. More shares (or a corrected
// threshold) are needed; the filter never retries on its own.
var ErrInsufficientConsistentShares = errors.New("insufficient consistent shares")

const batchSize = 256

// vote records one reconstructed value, how many combinations produced it,
// and which input shares (by index) took part in those combinations.
type vote struct {
	value   *big.Int
	count   int
	members map[int]struct{}
}

// tally accumulates votes across combinations. It is the only mutable state
// of a filter run; parallel workers each own a private tally and merge them
// afterwards, which is sound because the majority is computed over a
// multiset and does not depend on combination order.
type tally struct {
	votes map[string]*vote
}

func newTally() *tally {
	return &tally{votes: make(map[string]*vote)}
}

func (t *tally) add(value *big.Int, combo []int) {
	key := value.String()
	v, ok := t.votes[key]
	if !ok {
		v = &vote{value: value, members: make(map[int]struct{})}
		t.votes[key] = v
	}
	v.count++
	for _, idx := range combo {
		v.members[idx] = struct{}{}
	}
}

func (t *tally) merge(other *tally) {
	for key, ov := range other.votes {
		v, ok := t.votes[key]
		if !ok {
			t.votes[key] = ov
			continue
		}
		v.count += ov.count
		for idx := range ov.members {
			v.members[idx] = struct{}{}
		}
	}
}

// majority returns the most frequent vote, or nil when nothing voted.
// Ties on the count are broken toward the smallest numeric value, so the
// outcome never depends on map iteration order.
func (t *tally) majority() *vote {
	var best *vote
	for _, v := range t.votes {
		switch {
		case best == nil:
			best = v
		case v.count > best.count:
			best = v
		case v.count == best.count && v.value.Cmp(best.value) < 0:
			best = v
		}
	}
	return best
}

// Filter classifies shares by exhaustive majority vote using exact-rational
// interpolation and returns the authentic subset in input order. At least k
// shares must support the winning value, otherwise the whole operation fails
// with ErrInsufficientConsistentShares.
func Filter(shares []*shamir.Share, k int) ([]*shamir.Share, error) {
	return filter(shares, k, nil, 1)
}

// FilterMod is Filter over a prime field instead of exact rationals.
func FilterMod(shares []*shamir.Share, k int, field *arith.Field) ([]*shamir.Share, error) {
	return filter(shares, k, field, 1)
}

// FilterParallel is Filter with the per-combination reconstructions spread
// over the given number of workers. Combinations are independent, so the
// result is identical to the serial filter.
func FilterParallel(shares []*shamir.Share, k, workers int) ([]*shamir.Share, error) {
	return filter(shares, k, nil, workers)
}

// FilterModParallel is FilterMod spread over the given number of workers.
func FilterModParallel(shares []*shamir.Share, k int, field *arith.Field, workers int) ([]*shamir.Share, error) {
	return filter(shares, k, field, workers)
}

func filter(shares []*shamir.Share, k int, field *arith.Field, workers int) ([]*shamir.Share, error) {
	if k <= 0 {
		return nil, fmt.Errorf("threshold %d: %w", k, shamir.ErrInvalidInput)
	}
	if len(shares) < k {
		return nil, fmt.Errorf("%d shares for threshold %d: %w", len(shares), k, shamir.ErrInvalidInput)
	}
	if err := shamir.CheckDistinctX(shares); err != nil {
		return nil, err
	}
	if err := checkDistinctIDs(shares); err != nil {
		return nil, err
	}

	gen, err := combin.NewGenerator(len(shares), k)
	if err != nil {
		return nil, fmt.Errorf("enumerating combinations: %w", err)
	}

	var acc *tally
	if workers > 1 {
		acc, err = tallyParallel(shares, gen, field, workers)
	} else {
		acc, err = tallySerial(shares, gen, field)
	}
	if err != nil {
		return nil, err
	}

	win := acc.majority()
	if win == nil {
		return nil, fmt.Errorf("no combination produced a value: %w", ErrInsufficientConsistentShares)
	}

	authentic := make([]*shamir.Share, 0, len(win.members))
	for idx, s := range shares {
		if _, ok := win.members[idx]; ok {
			authentic = append(authentic, s)
		}
	}
	if len(authentic) < k {
		return nil, fmt.Errorf("majority value %s is supported by %d of the required %d shares: %w",
			win.value.String(), len(authentic), k, ErrInsufficientConsistentShares)
	}
	return authentic, nil
}

func tallySerial(shares []*shamir.Share, gen *combin.Generator, field *arith.Field) (*tally, error) {
	acc := newTally()
	for {
		combo, ok := gen.Next()
		if !ok {
			return acc, nil
		}
		if err := tallyOne(acc, shares, combo, field); err != nil {
			return nil, err
		}
	}
}

func tallyParallel(shares []*shamir.Share, gen *combin.Generator, field *arith.Field, workers int) (*tally, error) {
	batches := make(chan [][]int, workers)
	locals := make([]*tally, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		local := newTally()
		locals[w] = local
		g.Go(func() error {
			for batch := range batches {
				for _, combo := range batch {
					if err := tallyOne(local, shares, combo, field); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}

	batch := make([][]int, 0, batchSize)
	for {
		combo, ok := gen.Next()
		if !ok {
			break
		}
		batch = append(batch, combo)
		if len(batch) == batchSize {
			batches <- batch
			batch = make([][]int, 0, batchSize)
		}
	}
	if len(batch) > 0 {
		batches <- batch
	}
	close(batches)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	acc := newTally()
	for _, local := range locals {
		acc.merge(local)
	}
	return acc, nil
}

// tallyOne reconstructs a single combination and records its vote. A
// combination that lands on a non-integer value or divides by zero simply
// does not vote; one degenerate subset must not abort the whole filter.
func tallyOne(acc *tally, shares []*shamir.Share, combo []int, field *arith.Field) error {
	subset := make([]*shamir.Share, len(combo))
	for i, idx := range combo {
		subset[i] = shares[idx]
	}

	var value *big.Int
	var err error
	if field != nil {
		value, err = shamir.ReconstructMod(subset, field)
	} else {
		value, err = shamir.Reconstruct(subset)
	}
	if err != nil {
		if errors.Is(err, shamir.ErrNonIntegerResult) || errors.Is(err, shamir.ErrDivisionByZero) {
			return nil
		}
		return err
	}
	acc.add(value, combo)
	return nil
}

func checkDistinctIDs(shares []*shamir.Share) error {
	seen := make(map[int]struct{}, len(shares))
	for _, s := range shares {
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("share id %d appears twice: %w", s.ID, shamir.ErrInvalidInput)
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}
