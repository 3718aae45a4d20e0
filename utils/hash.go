package utils

import (
	"golang.org/x/crypto/sha3"
)

// Sha3Hash converts a message to a hash value using SHA3-256.
func Sha3Hash(message []byte) ([]byte, error) {
	sha := sha3.New256()
	if _, err := sha.Write(message); err != nil {
		return nil, err
	}
	return sha.Sum(nil), nil
}
