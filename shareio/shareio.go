// Package shareio loads share sets from the JSON testcase format and
// provides a compact binary encoding for single shares.
//
// A testcase document looks like:
//
//	{
//	  "keys": { "n": 4, "k": 3 },
//	  "1": { "base": "10", "value": "4" },
//	  "2": { "base": "2",  "value": "111" },
//	  ...
//	}
//
// Every top-level key other than "keys" is an x coordinate; the y value is
// given as digits in the entry's radix (2 to 36), or as a 0x-prefixed hex
// string. Values are delivered to the solver as exact big integers, so no
// modulus has to be known in advance.
package shareio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"

	"github.com/quorumvault/shamirx/shamir"
	"github.com/quorumvault/shamirx/utils"
)

// ShareSet is a parsed testcase: the declared share count and threshold plus
// the shares ordered by ascending x. ID is assigned fresh at parse time;
// Fingerprint is a SHA3-256 digest of the canonical share encoding, stable
// across parses of the same document.
type ShareSet struct {
	ID          string
	N, K        int
	Shares      []*shamir.Share
	Fingerprint []byte
}

type keysInfo struct {
	N int `json:"n"`
	K int `json:"k"`
}

type rawEntry struct {
	Base  json.RawMessage `json:"base"`
	Value string          `json:"value"`
}

// ParseFile reads and parses a testcase document from disk.
func ParseFile(path string) (*ShareSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return set, nil
}

// Parse decodes a testcase document.
func Parse(data []byte) (*ShareSet, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed document: %w", err)
	}

	keysRaw, ok := raw["keys"]
	if !ok {
		return nil, fmt.Errorf("document has no \"keys\" object: %w", shamir.ErrInvalidInput)
	}
	var keys keysInfo
	if err := json.Unmarshal(keysRaw, &keys); err != nil {
		return nil, fmt.Errorf("malformed \"keys\" object: %w", err)
	}
	if keys.K <= 0 {
		return nil, fmt.Errorf("threshold k=%d: %w", keys.K, shamir.ErrInvalidInput)
	}

	type point struct{ x, y *big.Int }
	points := make([]point, 0, len(raw)-1)
	for key, entryRaw := range raw {
		if key == "keys" {
			continue
		}
		x, ok := new(big.Int).SetString(key, 10)
		if !ok {
			return nil, fmt.Errorf("x coordinate %q is not an integer: %w", key, shamir.ErrInvalidInput)
		}
		var entry rawEntry
		if err := json.Unmarshal(entryRaw, &entry); err != nil {
			return nil, fmt.Errorf("malformed entry for x=%s: %w", key, err)
		}
		y, err := decodeValue(entry)
		if err != nil {
			return nil, fmt.Errorf("entry for x=%s: %w", key, err)
		}
		points = append(points, point{x: x, y: y})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].x.Cmp(points[j].x) < 0 })

	shares := make([]*shamir.Share, len(points))
	for i, p := range points {
		shares[i] = shamir.NewShare(i, p.x, p.y)
	}
	if err := shamir.CheckDistinctX(shares); err != nil {
		return nil, err
	}

	fp, err := fingerprint(keys.K, shares)
	if err != nil {
		return nil, err
	}

	return &ShareSet{
		ID:          uuid.NewString(),
		N:           keys.N,
		K:           keys.K,
		Shares:      shares,
		Fingerprint: fp,
	}, nil
}

func decodeValue(entry rawEntry) (*big.Int, error) {
	value := strings.TrimSpace(entry.Value)
	if value == "" {
		return nil, fmt.Errorf("empty value: %w", shamir.ErrInvalidInput)
	}
	base, err := decodeBase(entry.Base)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		if base != 16 {
			return nil, fmt.Errorf("0x-prefixed value with base %d: %w", base, shamir.ErrInvalidInput)
		}
		y, err := hexutil.DecodeBig("0x" + strings.ToLower(value[2:]))
		if err != nil {
			return nil, fmt.Errorf("hex value %q: %w", value, err)
		}
		return y, nil
	}

	y, ok := new(big.Int).SetString(strings.ToLower(value), base)
	if !ok {
		return nil, fmt.Errorf("value %q is not valid base-%d: %w", value, base, shamir.ErrInvalidInput)
	}
	return y, nil
}

// decodeBase accepts the radix as either a JSON number or a quoted string;
// both spellings occur in the wild.
func decodeBase(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("missing base: %w", shamir.ErrInvalidInput)
	}
	var base int
	if err := json.Unmarshal(raw, &base); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, fmt.Errorf("unreadable base %s: %w", string(raw), shamir.ErrInvalidInput)
		}
		var convErr error
		base, convErr = strconv.Atoi(strings.TrimSpace(s))
		if convErr != nil {
			return 0, fmt.Errorf("base %q is not an integer: %w", s, shamir.ErrInvalidInput)
		}
	}
	if base < 2 || base > 36 {
		return 0, fmt.Errorf("base %d out of range [2, 36]: %w", base, shamir.ErrInvalidInput)
	}
	return base, nil
}

// fingerprint hashes the canonical encoding of the threshold and the
// x-ordered shares.
func fingerprint(k int, shares []*shamir.Share) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := utils.WriteVarInt(buf, int64(k)); err != nil {
		return nil, err
	}
	for _, s := range shares {
		if err := utils.WriteVarBytes(buf, []byte(s.X.Text(10))); err != nil {
			return nil, err
		}
		if err := utils.WriteVarBytes(buf, []byte(s.Y.Text(10))); err != nil {
			return nil, err
		}
	}
	return utils.Sha3Hash(buf.Bytes())
}
