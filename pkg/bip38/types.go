package bip38

// DecryptResult is the full detail returned by Decrypt, mirroring the
// reference implementation's `detail=True` dict output. Callers that
// only want the WIF string can ignore the rest.
type DecryptResult struct {
	WIF           string
	PrivateKey    []byte
	WifType       WifType
	PublicKey     []byte
	PublicKeyType PublicKeyType
	Seed          []byte // only set for EC-multiplied envelopes
	Address       string
	Lot           *int // only set when the envelope carries lot/sequence
	Sequence      *int
}

// LotAndSequence is an optional pair embedded in an intermediate code's
// owner_entropy. Both fields are required together, so it is modeled as
// one optional struct rather than two optional ints.
type LotAndSequence struct {
	Lot      int
	Sequence int
}

// IntermediateCodeOptions configures IntermediateCode generation.
type IntermediateCodeOptions struct {
	// LotSeq, if non-nil, requests the lot/sequence branch and must
	// carry a 4-byte OwnerSalt below.
	LotSeq *LotAndSequence
	// OwnerSalt is 8 bytes without LotSeq, or 4 bytes with it. If nil,
	// a fresh salt of the correct length is drawn from Rand.
	OwnerSalt []byte
	// Rand supplies randomness for an unset OwnerSalt. Defaults to
	// DefaultRandomSource.
	Rand RandomSource
}

// MintResult is returned by CreateNewEncryptedWIF.
type MintResult struct {
	EncryptedWIF     string
	ConfirmationCode string
	PublicKey        []byte
	Seed             []byte
	PublicKeyType    PublicKeyType
	Address          string
}

// ConfirmResult is returned by ConfirmCode with detail requested.
type ConfirmResult struct {
	Address       string
	PublicKey     []byte
	PublicKeyType PublicKeyType
	Lot           *int
	Sequence      *int
}
