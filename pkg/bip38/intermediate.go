package bip38

import "golang.org/x/crypto/scrypt"

const (
	// Intermediate-code scrypt cost parameters: N=16384, r=8, p=8.
	intermediateScryptN = 16384
	intermediateScryptR = 8
	intermediateScryptP = 8

	minLot, maxLot           = 100000, 999999
	minSequence, maxSequence = 0, 4095
)

// IntermediateCode generates a Base58Check intermediate passphrase
// that a third party can use to mint new encrypted keys
// without ever learning passphrase.
func IntermediateCode(passphrase string, opts *IntermediateCodeOptions) (string, error) {
	if opts == nil {
		opts = &IntermediateCodeOptions{}
	}
	randSource := opts.Rand
	if randSource == nil {
		randSource = DefaultRandomSource
	}

	if opts.LotSeq != nil {
		if opts.LotSeq.Lot < minLot || opts.LotSeq.Lot > maxLot {
			return "", newErr(InvalidParameter, "lot must be in [%d, %d], got %d", minLot, maxLot, opts.LotSeq.Lot)
		}
		if opts.LotSeq.Sequence < minSequence || opts.LotSeq.Sequence > maxSequence {
			return "", newErr(InvalidParameter, "sequence must be in [%d, %d], got %d", minSequence, maxSequence, opts.LotSeq.Sequence)
		}
	}

	ownerSalt := opts.OwnerSalt
	if ownerSalt == nil {
		saltLen := 8
		if opts.LotSeq != nil {
			saltLen = 4
		}
		salt, err := randSource(saltLen)
		if err != nil {
			return "", err
		}
		ownerSalt = salt
	}

	switch len(ownerSalt) {
	case 4:
		if opts.LotSeq == nil {
			return "", newErr(InvalidParameter, "a 4-byte owner salt requires lot/sequence")
		}
	case 8:
		if opts.LotSeq != nil {
			return "", newErr(InvalidParameter, "lot/sequence requires a 4-byte owner salt, got 8")
		}
	default:
		return "", newErr(InvalidParameter, "owner salt must be 4 or 8 bytes, got %d", len(ownerSalt))
	}

	passBytes := normalizePassphrase(passphrase)

	var passFactor, ownerEntropy []byte
	var magic uint64

	if opts.LotSeq != nil {
		preFactor, err := scrypt.Key(passBytes, ownerSalt, intermediateScryptN, intermediateScryptR, intermediateScryptP, 32)
		if err != nil {
			return "", newErr(InvalidParameter, "scrypt derivation failed: %v", err)
		}
		lotSeqValue := uint32(opts.LotSeq.Lot)*4096 + uint32(opts.LotSeq.Sequence)
		ownerEntropy = append(append([]byte{}, ownerSalt...), u32be(lotSeqValue)...)
		passFactor = sha256d(append(append([]byte{}, preFactor...), ownerEntropy...))
		magic = magicLotSequence
	} else {
		factor, err := scrypt.Key(passBytes, ownerSalt, intermediateScryptN, intermediateScryptR, intermediateScryptP, 32)
		if err != nil {
			return "", newErr(InvalidParameter, "scrypt derivation failed: %v", err)
		}
		passFactor = factor
		ownerEntropy = ownerSalt
		magic = magicNoLotSequence
	}

	passPoint, err := PrivateKeyToPublicKey(passFactor, Compressed)
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, 49)
	payload = append(payload, u64be8(magic)...)
	payload = append(payload, ownerEntropy...)
	payload = append(payload, passPoint...)

	return base58CheckEncode(payload), nil
}

func u64be8(n uint64) []byte {
	return []byte{
		byte(n >> 56), byte(n >> 48), byte(n >> 40), byte(n >> 32),
		byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n),
	}
}
