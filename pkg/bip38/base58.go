package bip38

import "github.com/mr-tron/base58"

// base58Encode and base58Decode wrap mr-tron/base58, the same Base58
// codec the bitcoin and solana/tron address generators use.
func base58Encode(b []byte) string {
	return base58.Encode(b)
}

func base58Decode(s string) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, newErr(InvalidEncoding, "invalid base58 string: %v", err)
	}
	return b, nil
}

// base58CheckEncode appends a 4-byte double-SHA-256 checksum before
// Base58-encoding.
func base58CheckEncode(payload []byte) string {
	full := make([]byte, len(payload)+checksumLength)
	copy(full, payload)
	copy(full[len(payload):], checksum(payload))
	return base58Encode(full)
}

// base58CheckDecode decodes and verifies the trailing checksum, returning
// the payload with the checksum stripped.
func base58CheckDecode(s string) ([]byte, error) {
	full, err := base58Decode(s)
	if err != nil {
		return nil, err
	}
	if len(full) < checksumLength {
		return nil, newErr(InvalidLength, "base58check payload too short: %d bytes", len(full))
	}
	payload := full[:len(full)-checksumLength]
	want := full[len(full)-checksumLength:]
	got := checksum(payload)
	if !bytesEqual(want, got) {
		return nil, newErr(InvalidEncoding, "base58check checksum mismatch")
	}
	return payload, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
