package bip38

import (
	"golang.org/x/crypto/scrypt"

	"github.com/qtum-io/qbip38/pkg/bip38/secp256k1"
)

const (
	// EC-multiply pass_factor scrypt parameters: N=16384, r=8, p=8, dkLen=32.
	passFactorScryptN = 16384
	passFactorScryptR = 8
	passFactorScryptP = 8

	// EC-multiply mint/decrypt scrypt parameters: N=1024, r=1, p=1, dkLen=64.
	mintScryptN      = 1024
	mintScryptR      = 1
	mintScryptP      = 1
	mintScryptKeyLen = 64
)

// derivePassFactor recomputes pass_factor from a passphrase and
// owner_entropy, choosing the lot/sequence ladder or the plain ladder
// according to the envelope's lot/sequence flag bit.
func derivePassFactor(passphrase string, ownerEntropy []byte, hasLotSequence bool) ([]byte, error) {
	ownerSalt := ownerEntropy
	if hasLotSequence {
		ownerSalt = ownerEntropy[:4]
	}

	preFactor, err := scrypt.Key(normalizePassphrase(passphrase), ownerSalt, passFactorScryptN, passFactorScryptR, passFactorScryptP, 32)
	if err != nil {
		return nil, newErr(InvalidParameter, "scrypt derivation failed: %v", err)
	}

	passFactor := preFactor
	if hasLotSequence {
		passFactor = sha256d(append(append([]byte{}, preFactor...), ownerEntropy...))
	}

	if !secp256k1.IsValidScalar(bytesToInt(passFactor)) {
		return nil, newErr(InvalidParameter, "pass_factor out of range (0, N)")
	}
	return passFactor, nil
}

func decodeLotSequence(ownerEntropy []byte) (hasLotSeq bool, lot, sequence int) {
	lotSeqValue := bytesToInt(ownerEntropy[4:]).Uint64()
	sequence = int(lotSeqValue % 4096)
	lot = int((lotSeqValue - uint64(sequence)) / 4096)
	return true, lot, sequence
}
