package arith

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldBasicOps(t *testing.T) {
	f, err := NewField(big.NewInt(97))
	require.NoError(t, err)

	assert.Equal(t, int64(5), f.Add(big.NewInt(50), big.NewInt(52)).Int64())
	assert.Equal(t, int64(95), f.Sub(big.NewInt(2), big.NewInt(4)).Int64())
	assert.Equal(t, int64(50), f.Mul(big.NewInt(21), big.NewInt(7)).Int64())
	assert.Equal(t, int64(3), f.Reduce(big.NewInt(-94)).Int64())
}

func TestFieldInv(t *testing.T) {
	f, err := NewField(big.NewInt(97))
	require.NoError(t, err)

	for _, a := range []int64{1, 2, 13, 96} {
		inv, err := f.Inv(big.NewInt(a))
		require.NoError(t, err)
		assert.Equal(t, int64(1), f.Mul(big.NewInt(a), inv).Int64(), "a=%d", a)
	}

	_, err = f.Inv(big.NewInt(0))
	require.ErrorIs(t, err, ErrDivisionByZero)

	// Multiples of the modulus are zero in the field.
	_, err = f.Inv(big.NewInt(97 * 3))
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestFieldDiv(t *testing.T) {
	f, err := NewField(big.NewInt(97))
	require.NoError(t, err)

	q, err := f.Div(big.NewInt(50), big.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, int64(10), q.Int64())

	_, err = f.Div(big.NewInt(50), big.NewInt(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestNewFieldRejectsComposite(t *testing.T) {
	_, err := NewField(big.NewInt(91)) // 7 * 13
	assert.Error(t, err)
	_, err = NewField(nil)
	assert.Error(t, err)
	_, err = NewField(big.NewInt(1))
	assert.Error(t, err)
}

func TestModulusRegistry(t *testing.T) {
	for _, name := range []string{"P-256", "P-384", "P-521", "secp256k1"} {
		p := ModulusGet(name)
		require.NotNil(t, p, name)
		f, err := NewField(p)
		require.NoError(t, err, name)
		assert.Equal(t, 0, f.Modulus().Cmp(p))
	}
	assert.Nil(t, ModulusGet("no-such-prime"))
}

func TestRationalHelpers(t *testing.T) {
	r, err := NewRat(big.NewInt(6), big.NewInt(-4))
	require.NoError(t, err)
	assert.Equal(t, "-3/2", r.RatString())

	_, err = NewRat(big.NewInt(1), big.NewInt(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Quo(new(big.Rat).SetInt64(1), new(big.Rat))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	q, err := Quo(new(big.Rat).SetInt64(7), new(big.Rat).SetInt64(2))
	require.NoError(t, err)
	_, err = RatInt(q)
	assert.ErrorIs(t, err, ErrNonIntegerResult)

	n, err := RatInt(new(big.Rat).SetFrac64(-12, 4))
	require.NoError(t, err)
	assert.Equal(t, int64(-3), n.Int64())
}
