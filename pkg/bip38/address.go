package bip38

// PublicKeyToAddress derives the P2PKH address for a public key,
// Base58Check(addr_version ‖ hash160(pub)).
//
// The compressed and uncompressed encodings of the same private key
// produce different addresses; callers must pass whichever form they
// intend to commit to, since the address does not record it.
func PublicKeyToAddress(publicKey []byte, network Network) (string, error) {
	prefix, ok := addressPrefixes[network]
	if !ok {
		return "", newErr(InvalidParameter, "unknown network %q", network)
	}
	payload := make([]byte, 21)
	payload[0] = prefix
	copy(payload[1:], hash160(publicKey))
	return base58CheckEncode(payload), nil
}

// addressHash computes the 4-byte checksum that binds an encrypted
// envelope to the address it was derived for. The ASCII bytes of the
// address string are hashed, not the raw Base58Check payload.
func addressHash(address string) []byte {
	return checksum([]byte(address))
}
