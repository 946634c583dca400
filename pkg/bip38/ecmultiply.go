package bip38

import (
	"golang.org/x/crypto/scrypt"

	"github.com/qtum-io/qbip38/pkg/bip38/secp256k1"
)

const seedLen = 24

// CreateNewEncryptedWIF mints a new encrypted WIF, its confirmation code,
// and the corresponding address from an intermediate code and fresh
// entropy, without ever learning the passphrase that
// produced the intermediate code.
func CreateNewEncryptedWIF(intermediateCode string, pkType PublicKeyType, seed []byte, network Network, rand RandomSource) (*MintResult, error) {
	if seed == nil {
		if rand == nil {
			rand = DefaultRandomSource
		}
		s, err := rand(seedLen)
		if err != nil {
			return nil, err
		}
		seed = s
	}
	if len(seed) != seedLen {
		return nil, newErr(InvalidParameter, "seed must be %d bytes, got %d", seedLen, len(seed))
	}

	decoded, err := base58CheckDecode(intermediateCode)
	if err != nil {
		return nil, err
	}
	if len(decoded) != 49 {
		return nil, newErr(InvalidLength, "invalid intermediate code length %d (expected 49)", len(decoded))
	}

	magic := u64beToUint(decoded[:8])
	ownerEntropy := decoded[8:16]
	passPoint := decoded[16:49]

	flag, err := flagForMagic(magic, pkType)
	if err != nil {
		return nil, err
	}

	factorB := sha256d(seed)
	if !secp256k1.IsValidScalar(bytesToInt(factorB)) {
		return nil, newErr(InvalidParameter, "factor_b out of range (0, N)")
	}

	publicKey, err := multiplyPublicKey(passPoint, factorB, pkType)
	if err != nil {
		return nil, err
	}
	address, err := PublicKeyToAddress(publicKey, network)
	if err != nil {
		return nil, err
	}
	addrHash := addressHash(address)

	salt := append(append([]byte{}, addrHash...), ownerEntropy...)
	scryptHash, err := scrypt.Key(passPoint, salt, mintScryptN, mintScryptR, mintScryptP, mintScryptKeyLen)
	if err != nil {
		return nil, newErr(InvalidParameter, "scrypt derivation failed: %v", err)
	}
	derivedHalf1, derivedHalf2, key := scryptHash[:16], scryptHash[16:32], scryptHash[32:]

	aesCipher, err := newAESECB(key)
	if err != nil {
		return nil, err
	}

	encHalf1 := aesCipher.encryptBlock(xorFixed(seed[:16], derivedHalf1))
	half2Plain := xorFixed(append(append([]byte{}, encHalf1[8:]...), seed[16:24]...), derivedHalf2)
	encHalf2 := aesCipher.encryptBlock(half2Plain)

	payload := make([]byte, 0, 39)
	payload = append(payload, byte(ecMultipliedPrefix>>8), byte(ecMultipliedPrefix))
	payload = append(payload, flag)
	payload = append(payload, addrHash...)
	payload = append(payload, ownerEntropy...)
	payload = append(payload, encHalf1[:8]...)
	payload = append(payload, encHalf2...)
	encryptedWIF := base58CheckEncode(payload)

	pointB, err := PrivateKeyToPublicKey(factorB, Compressed)
	if err != nil {
		return nil, err
	}
	pointBPrefix := pointB[0] ^ (scryptHash[63] & 1)
	pointBHalf1 := aesCipher.encryptBlock(xorFixed(pointB[1:17], derivedHalf1))
	pointBHalf2 := aesCipher.encryptBlock(xorFixed(pointB[17:33], derivedHalf2))

	encryptedPointB := make([]byte, 0, 33)
	encryptedPointB = append(encryptedPointB, pointBPrefix)
	encryptedPointB = append(encryptedPointB, pointBHalf1...)
	encryptedPointB = append(encryptedPointB, pointBHalf2...)

	confirmPayload := make([]byte, 0, 51)
	confirmPayload = append(confirmPayload, u40be(confirmationCodePrefix)...)
	confirmPayload = append(confirmPayload, flag)
	confirmPayload = append(confirmPayload, addrHash...)
	confirmPayload = append(confirmPayload, ownerEntropy...)
	confirmPayload = append(confirmPayload, encryptedPointB...)
	confirmationCode := base58CheckEncode(confirmPayload)

	return &MintResult{
		EncryptedWIF:     encryptedWIF,
		ConfirmationCode: confirmationCode,
		PublicKey:        publicKey,
		Seed:             seed,
		PublicKeyType:    pkType,
		Address:          address,
	}, nil
}

func flagForMagic(magic uint64, pkType PublicKeyType) (byte, error) {
	switch magic {
	case magicLotSequence:
		switch pkType {
		case Uncompressed:
			return magicLotSeqUncompressedFlag, nil
		case Compressed:
			return magicLotSeqCompressedFlag, nil
		}
	case magicNoLotSequence:
		switch pkType {
		case Uncompressed:
			return magicNoLotSeqUncompressedFlag, nil
		case Compressed:
			return magicNoLotSeqCompressedFlag, nil
		}
	default:
		return 0, newErr(InvalidMagic, "unrecognized intermediate code magic 0x%016x", magic)
	}
	return 0, newErr(InvalidParameter, "invalid public key type %q", pkType)
}

func u64beToUint(b []byte) uint64 {
	var n uint64
	for _, v := range b {
		n = n<<8 | uint64(v)
	}
	return n
}

func u40be(n uint64) []byte {
	return []byte{byte(n >> 32), byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}
}
