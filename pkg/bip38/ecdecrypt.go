package bip38

import (
	"golang.org/x/crypto/scrypt"

	"github.com/qtum-io/qbip38/pkg/bip38/secp256k1"
)

// decryptEC recovers the WIF from an EC-multiplied envelope given the
// passphrase that produced its intermediate code.
func decryptEC(flag byte, addrHash, ownerEntropy, eh1Half1, eh2 []byte, passphrase string, network Network) (*DecryptResult, error) {
	if flagSets.illegal[flag] {
		return nil, newErr(InvalidFlag, "illegal flag byte 0x%02x", flag)
	}
	hasLotSeq := flagSets.lotAndSequence[flag]

	passFactor, err := derivePassFactor(passphrase, ownerEntropy, hasLotSeq)
	if err != nil {
		return nil, err
	}

	prePublicKey, err := PrivateKeyToPublicKey(passFactor, Compressed)
	if err != nil {
		return nil, err
	}

	salt := append(append([]byte{}, addrHash...), ownerEntropy...)
	scryptHash, err := scrypt.Key(prePublicKey, salt, mintScryptN, mintScryptR, mintScryptP, mintScryptKeyLen)
	if err != nil {
		return nil, newErr(InvalidParameter, "scrypt derivation failed: %v", err)
	}
	derivedHalf1, derivedHalf2, key := scryptHash[:16], scryptHash[16:32], scryptHash[32:]

	aesCipher, err := newAESECB(key)
	if err != nil {
		return nil, err
	}

	half1Half2AndSeedTail := xorFixed(aesCipher.decryptBlock(eh2), derivedHalf2)
	eh1Half2 := half1Half2AndSeedTail[:8]
	seedTail := half1Half2AndSeedTail[8:]

	eh1 := append(append([]byte{}, eh1Half1...), eh1Half2...)
	seedHead := xorFixed(aesCipher.decryptBlock(eh1), derivedHalf1)

	seed := append(append([]byte{}, seedHead...), seedTail...)

	factorB := sha256d(seed)
	if !secp256k1.IsValidScalar(bytesToInt(factorB)) {
		return nil, newErr(InvalidParameter, "factor_b out of range (0, N)")
	}

	privateKey := multiplyPrivateKey(passFactor, factorB)

	pkType := Uncompressed
	wifType := WifUncompressed
	if flagSets.compression[flag] {
		pkType = Compressed
		wifType = WifCompressed
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

	result := &DecryptResult{
		WIF:           wif,
		PrivateKey:    privateKey,
		WifType:       wifType,
		PublicKey:     publicKey,
		PublicKeyType: pkType,
		Seed:          seed,
		Address:       address,
	}
	if hasLotSeq {
		_, lot, sequence := decodeLotSequence(ownerEntropy)
		result.Lot = &lot
		result.Sequence = &sequence
	}
	return result, nil
}
