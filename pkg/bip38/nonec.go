package bip38

import (
	"golang.org/x/crypto/scrypt"

	"github.com/qtum-io/qbip38/pkg/bip38/secp256k1"
)

const (
	// Non-EC scrypt cost parameters: N=16384, r=8, p=8, dkLen=64.
	nonECScryptN      = 16384
	nonECScryptR      = 8
	nonECScryptP      = 8
	nonECScryptKeyLen = 64
)

// encryptNonEC implements the non-EC-multiplied BIP38 branch: encrypt
// the WIF-carrying private key directly against a scrypt-derived key
// keyed by the address hash.
func encryptNonEC(wif string, passphrase string, network Network) (string, error) {
	w, err := DecodeWIF(wif)
	if err != nil {
		return "", err
	}

	var flag byte
	var pkType PublicKeyType
	switch w.Type {
	case WifUncompressed:
		flag, pkType = noECFlagUncompressed, Uncompressed
	case WifCompressed:
		flag, pkType = noECFlagCompressed, Compressed
	default:
		return "", newErr(InvalidParameter, "invalid WIF type %q", w.Type)
	}

	privateKey := w.PrivateKey[:]
	publicKey, err := PrivateKeyToPublicKey(privateKey, pkType)
	if err != nil {
		return "", err
	}
	address, err := PublicKeyToAddress(publicKey, network)
	if err != nil {
		return "", err
	}
	addrHash := addressHash(address)

	key, err := scrypt.Key(normalizePassphrase(passphrase), addrHash, nonECScryptN, nonECScryptR, nonECScryptP, nonECScryptKeyLen)
	if err != nil {
		return "", newErr(InvalidParameter, "scrypt derivation failed: %v", err)
	}
	derivedHalf1, derivedHalf2 := key[:32], key[32:64]

	aesCipher, err := newAESECB(derivedHalf2)
	if err != nil {
		return "", err
	}

	block1 := xorFixed(privateKey[:16], derivedHalf1[:16])
	block2 := xorFixed(privateKey[16:32], derivedHalf1[16:32])
	encryptedHalf1 := aesCipher.encryptBlock(block1)
	encryptedHalf2 := aesCipher.encryptBlock(block2)

	payload := make([]byte, 0, 39)
	payload = append(payload, byte(noECMultipliedPrefix>>8), byte(noECMultipliedPrefix))
	payload = append(payload, flag)
	payload = append(payload, addrHash...)
	payload = append(payload, encryptedHalf1...)
	payload = append(payload, encryptedHalf2...)

	return base58CheckEncode(payload), nil
}

// decryptNonEC implements the inverse of encryptNonEC, given the fields
// of the 39-byte decoded envelope with prefix and flag already stripped
// by the dispatcher.
func decryptNonEC(flag byte, addrHash, encryptedHalf1, encryptedHalf2 []byte, passphrase string, network Network) (*DecryptResult, error) {
	var wifType WifType
	var pkType PublicKeyType
	switch flag {
	case noECFlagUncompressed:
		wifType, pkType = WifUncompressed, Uncompressed
	case noECFlagCompressed:
		wifType, pkType = WifCompressed, Compressed
	default:
		return nil, newErr(InvalidFlag, "invalid non-EC flag 0x%02x (expected 0x%02x or 0x%02x)", flag, noECFlagUncompressed, noECFlagCompressed)
	}

	key, err := scrypt.Key(normalizePassphrase(passphrase), addrHash, nonECScryptN, nonECScryptR, nonECScryptP, nonECScryptKeyLen)
	if err != nil {
		return nil, newErr(InvalidParameter, "scrypt derivation failed: %v", err)
	}
	derivedHalf1, derivedHalf2 := key[:32], key[32:64]

	aesCipher, err := newAESECB(derivedHalf2)
	if err != nil {
		return nil, err
	}
	decryptedHalf1 := aesCipher.decryptBlock(encryptedHalf1)
	decryptedHalf2 := aesCipher.decryptBlock(encryptedHalf2)

	privateKey := xorFixed(append(append([]byte{}, decryptedHalf1...), decryptedHalf2...), derivedHalf1)
	if !secp256k1.IsValidScalar(bytesToInt(privateKey)) {
		return nil, newErr(InvalidParameter, "decrypted scalar out of range (0, N)")
	}

	publicKey, err := PrivateKeyToPublicKey(privateKey, pkType)
	if err != nil {
		return nil, err
	}
	address, err := PublicKeyToAddress(publicKey, network)
	if err != nil {
		return nil, err
	}
	if !bytesEqual(addressHash(address), addrHash) {
		return nil, newErr(IncorrectPassphrase, "address hash does not match; wrong passphrase")
	}

	wif, err := PrivateKeyToWIF(privateKey, wifType, network)
	if err != nil {
		return nil, err
	}

	return &DecryptResult{
		WIF:           wif,
		PrivateKey:    privateKey,
		WifType:       wifType,
		PublicKey:     publicKey,
		PublicKeyType: pkType,
		Address:       address,
	}, nil
}
