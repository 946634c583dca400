package bip38

// Network selects the version-byte set used for WIF and address
// encoding. This module targets a Bitcoin-derived chain whose prefixes
// differ from Bitcoin mainnet/testnet.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// WIF version bytes.
var wifPrefixes = map[Network]byte{
	Mainnet: 0x80,
	Testnet: 0xef,
}

// P2PKH address version bytes.
var addressPrefixes = map[Network]byte{
	Mainnet: 0x3a,
	Testnet: 0x78,
}

// WifType distinguishes whether a WIF carries the trailing compression
// byte.
type WifType string

const (
	WifUncompressed WifType = "wif"
	WifCompressed   WifType = "wif-compressed"
)

// PublicKeyType selects the SEC1 serialization form of a public key.
type PublicKeyType string

const (
	Uncompressed PublicKeyType = "uncompressed"
	Compressed   PublicKeyType = "compressed"
)

const (
	compressedPrivateKeyPrefix = 0x01

	evenCompressedPubKeyPrefix = 0x02
	oddCompressedPubKeyPrefix  = 0x03
	uncompressedPubKeyPrefix   = 0x04

	checksumLength = 4

	noECMultipliedPrefix = 0x0142
	ecMultipliedPrefix   = 0x0143

	noECFlagUncompressed = 0xc0
	noECFlagCompressed   = 0xe0

	magicLotSequence   uint64 = 0x2ce9b3e1ff39e251
	magicNoLotSequence uint64 = 0x2ce9b3e1ff39e253

	magicLotSeqUncompressedFlag   = 0x04
	magicLotSeqCompressedFlag     = 0x24
	magicNoLotSeqUncompressedFlag = 0x00
	magicNoLotSeqCompressedFlag   = 0x20

	confirmationCodePrefix uint64 = 0x643bf6a89a
)

// flagSets mirrors the python reference's FLAGS table: each byte in an
// encrypted-WIF / confirmation-code flag can independently signal
// compression, lot/sequence presence, non-EC vs EC mode, or be outright
// illegal.
var flagSets = struct {
	compression    map[byte]bool
	lotAndSequence map[byte]bool
	nonEC          map[byte]bool
	ec             map[byte]bool
	illegal        map[byte]bool
}{
	compression:    setOf(0x20, 0x24, 0x28, 0x2c, 0x30, 0x34, 0x38, 0x3c, 0xe0, 0xe8, 0xf0, 0xf8),
	lotAndSequence: setOf(0x04, 0x24, 0x0c, 0x14, 0x1c, 0x2c, 0x34, 0x3c),
	nonEC:          setOf(0xc0, 0xe0, 0xc8, 0xd0, 0xd8, 0xe8, 0xf0, 0xf8),
	ec:             setOf(0x00, 0x04, 0x08, 0x0c, 0x10, 0x14, 0x18, 0x1c, 0x20, 0x24, 0x28, 0x2c, 0x30, 0x34, 0x38, 0x3c),
	illegal:        setOf(0xc4, 0xcc, 0xd4, 0xdc, 0xe4, 0xec, 0xf4, 0xfc),
}

func setOf(bs ...byte) map[byte]bool {
	m := make(map[byte]bool, len(bs))
	for _, b := range bs {
		m[b] = true
	}
	return m
}
