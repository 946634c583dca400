package bip38

import "golang.org/x/crypto/scrypt"

// ConfirmCode verifies a passphrase against a confirmation code minted by
// CreateNewEncryptedWIF, without decrypting the
// private key itself. On success it returns the address the mint
// produced (and, via detail, the public key and decoded lot/sequence).
func ConfirmCode(passphrase, confirmationCode string, network Network, detail bool) (string, *ConfirmResult, error) {
	decoded, err := base58CheckDecode(confirmationCode)
	if err != nil {
		return "", nil, err
	}
	if len(decoded) != 51 {
		return "", nil, newErr(InvalidLength, "invalid confirmation code length %d (expected 51)", len(decoded))
	}

	wantPrefix := u40be(confirmationCodePrefix)
	if !bytesEqual(decoded[:5], wantPrefix) {
		return "", nil, newErr(InvalidPrefix, "invalid confirmation code prefix")
	}

	flag := decoded[5]
	addrHash := decoded[6:10]
	ownerEntropy := decoded[10:18]
	encryptedPointB := decoded[18:51]

	if flagSets.illegal[flag] {
		return "", nil, newErr(InvalidFlag, "illegal flag byte 0x%02x", flag)
	}
	hasLotSeq := flagSets.lotAndSequence[flag]

	passFactor, err := derivePassFactor(passphrase, ownerEntropy, hasLotSeq)
	if err != nil {
		return "", nil, err
	}

	passPoint, err := PrivateKeyToPublicKey(passFactor, Compressed)
	if err != nil {
		return "", nil, err
	}

	salt := append(append([]byte{}, addrHash...), ownerEntropy...)
	scryptHash, err := scrypt.Key(passPoint, salt, mintScryptN, mintScryptR, mintScryptP, mintScryptKeyLen)
	if err != nil {
		return "", nil, newErr(InvalidParameter, "scrypt derivation failed: %v", err)
	}
	derivedHalf1, derivedHalf2, key := scryptHash[:16], scryptHash[16:32], scryptHash[32:]

	aesCipher, err := newAESECB(key)
	if err != nil {
		return "", nil, err
	}

	pointBHalf1 := xorFixed(aesCipher.decryptBlock(encryptedPointB[1:17]), derivedHalf1)
	pointBHalf2 := xorFixed(aesCipher.decryptBlock(encryptedPointB[17:33]), derivedHalf2)
	pointBPrefix := encryptedPointB[0] ^ (scryptHash[63] & 1)

	pointB := make([]byte, 0, 33)
	pointB = append(pointB, pointBPrefix)
	pointB = append(pointB, pointBHalf1...)
	pointB = append(pointB, pointBHalf2...)

	pkType := Uncompressed
	if flagSets.compression[flag] {
		pkType = Compressed
	}

	publicKey, err := multiplyPublicKey(pointB, passFactor, pkType)
	if err != nil {
		return "", nil, err
	}
	address, err := PublicKeyToAddress(publicKey, network)
	if err != nil {
		return "", nil, err
	}
	if !bytesEqual(addressHash(address), addrHash) {
		return "", nil, newErr(IncorrectPassphrase, "address hash does not match; wrong passphrase")
	}

	if !detail {
		return address, nil, nil
	}

	result := &ConfirmResult{Address: address, PublicKey: publicKey, PublicKeyType: pkType}
	if hasLotSeq {
		_, lot, sequence := decodeLotSequence(ownerEntropy)
		result.Lot = &lot
		result.Sequence = &sequence
	}
	return address, result, nil
}
