package shareio

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumvault/shamirx/shamir"
	"github.com/quorumvault/shamirx/sieve"
)

const testcase1 = `{
	"keys": { "n": 4, "k": 3 },
	"1": { "base": "10", "value": "4" },
	"2": { "base": "2",  "value": "111" },
	"3": { "base": "10", "value": "12" },
	"6": { "base": "4",  "value": "213" }
}`

const testcase2 = `{
	"keys": { "n": 4, "k": 3 },
	"1":  { "base": 16, "value": "0xab54a98ceb1f0ae6" },
	"2":  { "base": 36, "value": "2lsohxawjuia0" },
	"5":  { "base": 8,  "value": "1255245230635307605702" },
	"10": { "base": 10, "value": "12345678901234568720" }
}`

func TestParseTestcase1(t *testing.T) {
	set, err := Parse([]byte(testcase1))
	require.NoError(t, err)

	assert.Equal(t, 4, set.N)
	assert.Equal(t, 3, set.K)
	require.Len(t, set.Shares, 4)

	// Shares come back ordered by x with decoded y values.
	wantX := []int64{1, 2, 3, 6}
	wantY := []int64{4, 7, 12, 39}
	for i, s := range set.Shares {
		assert.Equal(t, i, s.ID)
		assert.Equal(t, wantX[i], s.X.Int64())
		assert.Equal(t, wantY[i], s.Y.Int64())
	}

	secret, err := sieve.Solve(set.Shares, set.K)
	require.NoError(t, err)
	assert.Equal(t, int64(3), secret.Int64())
}

func TestParseTestcase2MixedBases(t *testing.T) {
	set, err := Parse([]byte(testcase2))
	require.NoError(t, err)
	require.Len(t, set.Shares, 4)

	secret, err := sieve.Solve(set.Shares, set.K)
	require.NoError(t, err)

	want, ok := new(big.Int).SetString("12345678901234567890", 10)
	require.True(t, ok)
	assert.Equal(t, 0, want.Cmp(secret))
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testcase.json")
	require.NoError(t, os.WriteFile(path, []byte(testcase1), 0o600))

	set, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, set.K)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestFingerprintStableAcrossParses(t *testing.T) {
	a, err := Parse([]byte(testcase1))
	require.NoError(t, err)
	b, err := Parse([]byte(testcase1))
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint, b.Fingerprint)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "each parse gets its own identity")

	c, err := Parse([]byte(testcase2))
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint, c.Fingerprint)
}

func TestParseRejections(t *testing.T) {
	cases := map[string]string{
		"not json":        `{`,
		"no keys object":  `{"1": {"base": "10", "value": "4"}}`,
		"zero threshold":  `{"keys": {"n": 1, "k": 0}, "1": {"base": "10", "value": "4"}}`,
		"bad x":           `{"keys": {"n": 1, "k": 1}, "one": {"base": "10", "value": "4"}}`,
		"base too small":  `{"keys": {"n": 1, "k": 1}, "1": {"base": "1", "value": "4"}}`,
		"base too large":  `{"keys": {"n": 1, "k": 1}, "1": {"base": "37", "value": "4"}}`,
		"bad digits":      `{"keys": {"n": 1, "k": 1}, "1": {"base": "2", "value": "102"}}`,
		"empty value":     `{"keys": {"n": 1, "k": 1}, "1": {"base": "10", "value": ""}}`,
		"0x with base 10": `{"keys": {"n": 1, "k": 1}, "1": {"base": "10", "value": "0xff"}}`,
		"missing base":    `{"keys": {"n": 1, "k": 1}, "1": {"value": "4"}}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestShareWireRoundTrip(t *testing.T) {
	for _, s := range []*shamir.Share{
		shamir.NewShare(0, big.NewInt(1), big.NewInt(4)),
		shamir.NewShare(41, big.NewInt(7), big.NewInt(-123456789)),
		shamir.NewShare(2, new(big.Int).Lsh(big.NewInt(1), 200), new(big.Int).Lsh(big.NewInt(3), 300)),
	} {
		data, err := MarshalShare(s)
		require.NoError(t, err)

		got, err := UnmarshalShare(data)
		require.NoError(t, err)
		assert.Equal(t, s.ID, got.ID)
		assert.Equal(t, 0, s.X.Cmp(got.X))
		assert.Equal(t, 0, s.Y.Cmp(got.Y))
	}

	_, err := UnmarshalShare([]byte{0xff})
	assert.Error(t, err)
}
