package shareio

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/quorumvault/shamirx/shamir"
	"github.com/quorumvault/shamirx/utils"
)

// MarshalShare serializes a share into a compact binary form: a varint ID
// followed by the decimal text of x and y as length-prefixed byte strings.
// Decimal text keeps the sign, which raw big-endian bytes would drop.
func MarshalShare(share *shamir.Share) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := utils.WriteVarInt(buf, int64(share.ID)); err != nil {
		return nil, err
	}
	if err := utils.WriteVarBytes(buf, []byte(share.X.Text(10))); err != nil {
		return nil, err
	}
	if err := utils.WriteVarBytes(buf, []byte(share.Y.Text(10))); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalShare deserializes a share produced by MarshalShare.
func UnmarshalShare(data []byte) (*shamir.Share, error) {
	buf := bytes.NewBuffer(data)

	id, _, err := utils.ReadVarInt(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to read share id: %w", err)
	}
	xText, _, err := utils.ReadVarBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to read x value: %w", err)
	}
	yText, _, err := utils.ReadVarBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to read y value: %w", err)
	}

	x, ok := new(big.Int).SetString(string(xText), 10)
	if !ok {
		return nil, fmt.Errorf("corrupt x value %q: %w", string(xText), shamir.ErrInvalidInput)
	}
	y, ok := new(big.Int).SetString(string(yText), 10)
	if !ok {
		return nil, fmt.Errorf("corrupt y value %q: %w", string(yText), shamir.ErrInvalidInput)
	}
	return &shamir.Share{ID: int(id), X: x, Y: y}, nil
}
