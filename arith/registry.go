package arith

import (
	"crypto/elliptic"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Modulus is a map of registered prime moduli, keyed by name. The stock
// entries are the group orders of common curves, all large enough for
// 256-bit secrets and share values.
var Modulus = make(map[string]*big.Int)

// ModulusRegist registers a prime so it can be looked up by name.
func ModulusRegist(name string, p *big.Int) {
	if _, ok := Modulus[name]; ok {
		panic("modulus already registered")
	}
	Modulus[name] = new(big.Int).Set(p)
}

// ModulusGet retrieves a registered prime by its name.
func ModulusGet(name string) *big.Int {
	p := Modulus[name]
	if p == nil {
		return nil
	}
	return new(big.Int).Set(p)
}

func init() {
	ModulusRegist(elliptic.P256().Params().Name, elliptic.P256().Params().N)
	ModulusRegist(elliptic.P384().Params().Name, elliptic.P384().Params().N)
	ModulusRegist(elliptic.P521().Params().Name, elliptic.P521().Params().N)
	ModulusRegist(secp256k1.S256().Params().Name, secp256k1.S256().Params().N)
}
