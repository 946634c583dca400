package bip38

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for hash160, not a choice
)

// sha256d is double-SHA-256, the building block for both checksums and
// (inside the EC-multiply branch) the pass_factor ladder.
func sha256d(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// hash160 is RIPEMD-160(SHA-256(b)), used to build a P2PKH address from
// a public key, the same construction legacy Bitcoin addresses use.
func hash160(b []byte) []byte {
	sum := sha256.Sum256(b)
	r := ripemd160.New()
	r.Write(sum[:])
	return r.Sum(nil)
}

// checksum is the first 4 bytes of double-SHA-256(x), used both for
// Base58Check envelopes and for binding an encrypted WIF to the address
// it was derived from.
func checksum(x []byte) []byte {
	return sha256d(x)[:checksumLength]
}
