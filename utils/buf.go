package utils

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxVarBytesLen caps the length prefix accepted by ReadVarBytes so a
// corrupted stream cannot trigger an arbitrarily large allocation.
const MaxVarBytesLen = 1 << 20

type readByte struct {
	in   io.Reader
	read int
}

func (s *readByte) ReadByte() (byte, error) {
	var data [1]byte
	_, err := io.ReadFull(s.in, data[:])
	s.read++
	return data[0], err
}

// ReadVarInt reads a varint-encoded integer and reports how many bytes were
// consumed.
func ReadVarInt(r io.Reader) (num int64, n int64, err error) {
	rb := &readByte{in: r}
	v, err := binary.ReadVarint(rb)
	return v, int64(rb.read), err
}

// ReadVarBytes reads a varint length prefix followed by that many bytes.
func ReadVarBytes(r io.Reader) (data []byte, varIntLen int, err error) {
	num, n, err := ReadVarInt(r)
	if err != nil {
		return nil, 0, err
	}
	if num < 0 || num > MaxVarBytesLen {
		return nil, int(n), fmt.Errorf("invalid byte length %d", num)
	}
	data = make([]byte, num)
	_, err = io.ReadFull(r, data)
	return data, int(n), err
}

// WriteVarInt writes a varint-encoded integer.
func WriteVarInt(w io.Writer, num int64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutVarint(buf[:], num)
	_, err := w.Write(buf[:n])
	return err
}

// WriteVarBytes writes a varint length prefix followed by the data.
func WriteVarBytes(w io.Writer, data []byte) error {
	if err := WriteVarInt(w, int64(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}
