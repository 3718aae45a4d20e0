// Package combin enumerates k-element index subsets of [0, n) in
// lexicographic order. It knows nothing about shares; callers map the
// indices onto their own data.
package combin

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidInput is returned for out-of-range enumeration bounds.
var ErrInvalidInput = errors.New("invalid input")

// Generator walks all C(n, k) combinations, starting from [0, 1, ..., k-1].
// Each Generator is independent; a fresh one (or Reset) always replays the
// same deterministic sequence, so several consumers can walk the same input
// without sharing state.
type Generator struct {
	n, k int
	cur  []int
	done bool
}

// NewGenerator creates an enumerator over k-subsets of [0, n).
func NewGenerator(n, k int) (*Generator, error) {
	if n < 0 || k <= 0 || k > n {
		return nil, fmt.Errorf("cannot choose %d of %d: %w", k, n, ErrInvalidInput)
	}
	g := &Generator{n: n, k: k}
	g.Reset()
	return g, nil
}

// Reset rewinds the generator to the first combination.
func (g *Generator) Reset() {
	g.cur = nil
	g.done = false
}

// Next returns the next combination and true, or nil and false once all
// combinations have been produced. The returned slice is owned by the caller.
func (g *Generator) Next() ([]int, bool) {
	if g.done {
		return nil, false
	}
	if g.cur == nil {
		g.cur = make([]int, g.k)
		for i := range g.cur {
			g.cur[i] = i
		}
		return append([]int(nil), g.cur...), true
	}

	// Find the rightmost position that can still advance.
	i := g.k - 1
	for i >= 0 && g.cur[i] == g.n-g.k+i {
		i--
	}
	if i < 0 {
		g.done = true
		return nil, false
	}
	g.cur[i]++
	for j := i + 1; j < g.k; j++ {
		g.cur[j] = g.cur[j-1] + 1
	}
	return append([]int(nil), g.cur...), true
}

// Count returns the binomial coefficient C(n, k), the number of combinations
// a Generator over the same bounds will produce. Useful for budgeting the
// exponential cost of exhaustive consistency checks before starting one.
func Count(n, k int) (*big.Int, error) {
	if n < 0 || k <= 0 || k > n {
		return nil, fmt.Errorf("cannot choose %d of %d: %w", k, n, ErrInvalidInput)
	}
	return new(big.Int).Binomial(int64(n), int64(k)), nil
}
