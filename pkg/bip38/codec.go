package bip38

import (
	"math/big"

	"golang.org/x/text/unicode/norm"
)

// normalizePassphrase applies Unicode NFC and returns the UTF-8 bytes fed
// into scrypt. Load-bearing for non-ASCII passphrases.
func normalizePassphrase(passphrase string) []byte {
	return []byte(norm.NFC.String(passphrase))
}

// fixedWidthBytes big-endian encodes n into exactly width bytes,
// left-padding with zeros. A minimum-width encoder would corrupt every
// AES block boundary and the lot/sequence field.
func fixedWidthBytes(n *big.Int, width int) []byte {
	out := make([]byte, width)
	b := n.Bytes()
	if len(b) > width {
		// Truncate to the low-order bytes, matching big-endian overflow
		// semantics used when XOR-ing 128-bit AES blocks.
		b = b[len(b)-width:]
	}
	copy(out[width-len(b):], b)
	return out
}

func bytesToInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// xorFixed XORs two byte strings of equal length and re-encodes the
// result at the same fixed width.
func xorFixed(a, b []byte) []byte {
	width := len(a)
	if len(b) > width {
		width = len(b)
	}
	x := new(big.Int).Xor(bytesToInt(a), bytesToInt(b))
	return fixedWidthBytes(x, width)
}

func u32be(n uint32) []byte {
	return []byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}
}
