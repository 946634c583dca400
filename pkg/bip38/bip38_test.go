package bip38

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// Scenario 1: non-EC round trip, compressed, mainnet.
func TestNonECRoundTripCompressedMainnet(t *testing.T) {
	privateKey := mustHex(t, "cbf4b9f70470856bb4f40f80b87edb90865997ffee6df315ab166d713af433a5"[:64])
	wif, err := PrivateKeyToWIF(privateKey, WifCompressed, Mainnet)
	require.NoError(t, err)

	encrypted, err := Encrypt(wif, "qtum123", Mainnet)
	require.NoError(t, err)

	result, err := Decrypt(encrypted, "qtum123", Mainnet)
	require.NoError(t, err)
	require.Equal(t, wif, result.WIF)
	require.Equal(t, WifCompressed, result.WifType)
}

// Scenario 2: non-EC round trip, uncompressed, mainnet; must differ from (1).
func TestNonECRoundTripUncompressedMainnet(t *testing.T) {
	privateKey := mustHex(t, "cbf4b9f70470856bb4f40f80b87edb90865997ffee6df315ab166d713af433a5"[:64])
	wif, err := PrivateKeyToWIF(privateKey, WifUncompressed, Mainnet)
	require.NoError(t, err)

	encryptedUncompressed, err := Encrypt(wif, "qtum123", Mainnet)
	require.NoError(t, err)

	compressedWIF, err := PrivateKeyToWIF(privateKey, WifCompressed, Mainnet)
	require.NoError(t, err)
	encryptedCompressed, err := Encrypt(compressedWIF, "qtum123", Mainnet)
	require.NoError(t, err)

	require.NotEqual(t, encryptedUncompressed, encryptedCompressed)

	result, err := Decrypt(encryptedUncompressed, "qtum123", Mainnet)
	require.NoError(t, err)
	require.Equal(t, wif, result.WIF)
	require.Equal(t, WifUncompressed, result.WifType)
}

// Scenario 3: cross-implementation vector, network=testnet. The network
// argument governs only the address version used inside the envelope,
// not the WIF's own embedded version byte — so the WIF decrypt recovers
// re-encodes under the same testnet network passed to both calls.
func TestStandardVectorTestnet(t *testing.T) {
	const wif = "5KN7MzqK5wt2TP1fQCYyHBtDrXdJuXbUzm4A9rKAteGu3Qi5CVR"

	decoded, err := DecodeWIF(wif)
	require.NoError(t, err)
	require.Equal(t, WifUncompressed, decoded.Type)

	expectedWIF, err := PrivateKeyToWIF(decoded.PrivateKey[:], WifUncompressed, Testnet)
	require.NoError(t, err)

	encrypted, err := Encrypt(wif, "qtum123", Testnet)
	require.NoError(t, err)

	result, err := Decrypt(encrypted, "qtum123", Testnet)
	require.NoError(t, err)
	require.Equal(t, expectedWIF, result.WIF)
	require.Equal(t, WifUncompressed, result.WifType)
}

// Scenario 4: intermediate code + mint, no lot/sequence.
func TestIntermediateAndMintNoLotSequence(t *testing.T) {
	ownerSalt := mustHex(t, "75ed1cdeb254d161")
	code, err := IntermediateCode("qtum123", &IntermediateCodeOptions{OwnerSalt: ownerSalt})
	require.NoError(t, err)

	seed := mustHex(t, "99241d58245c883896f80843d2846672d7312e6195ca1a6c")
	mint, err := CreateNewEncryptedWIF(code, Compressed, seed, Mainnet, nil)
	require.NoError(t, err)

	result, err := Decrypt(mint.EncryptedWIF, "qtum123", Mainnet)
	require.NoError(t, err)
	require.Equal(t, mint.Address, result.Address)
}

// Scenario 5: intermediate code + mint, lot=263183, sequence=1.
func TestIntermediateAndMintWithLotSequence(t *testing.T) {
	ownerSalt := mustHex(t, "75ed1cdeb254d161")[:4]
	code, err := IntermediateCode("qtum123", &IntermediateCodeOptions{
		LotSeq:    &LotAndSequence{Lot: 263183, Sequence: 1},
		OwnerSalt: ownerSalt,
	})
	require.NoError(t, err)

	decoded, err := base58CheckDecode(code)
	require.NoError(t, err)
	ownerEntropy := decoded[8:16]
	require.Equal(t, append(append([]byte{}, ownerSalt...), u32be(263183*4096+1)...), ownerEntropy)

	seed := mustHex(t, "99241d58245c883896f80843d2846672d7312e6195ca1a6c")
	mint, err := CreateNewEncryptedWIF(code, Uncompressed, seed, Mainnet, nil)
	require.NoError(t, err)

	result, err := Decrypt(mint.EncryptedWIF, "qtum123", Mainnet)
	require.NoError(t, err)
	require.NotNil(t, result.Lot)
	require.NotNil(t, result.Sequence)
	require.Equal(t, 263183, *result.Lot)
	require.Equal(t, 1, *result.Sequence)
}

// Scenario 6: confirmation code correctness.
func TestConfirmationCode(t *testing.T) {
	ownerSalt := mustHex(t, "75ed1cdeb254d161")
	code, err := IntermediateCode("qtum123", &IntermediateCodeOptions{OwnerSalt: ownerSalt})
	require.NoError(t, err)

	seed := mustHex(t, "99241d58245c883896f80843d2846672d7312e6195ca1a6c")
	mint, err := CreateNewEncryptedWIF(code, Compressed, seed, Mainnet, nil)
	require.NoError(t, err)

	address, _, err := ConfirmCode("qtum123", mint.ConfirmationCode, Mainnet, false)
	require.NoError(t, err)
	require.Equal(t, mint.Address, address)

	_, _, err = ConfirmCode("qtum124", mint.ConfirmationCode, Mainnet, false)
	require.Error(t, err)
	var bipErr *Error
	require.ErrorAs(t, err, &bipErr)
	require.Equal(t, IncorrectPassphrase, bipErr.Kind)
}

// Scenario 7: flag rejection before any scrypt attempt.
func TestFlagRejection(t *testing.T) {
	// Build a syntactically valid non-EC envelope but with the illegal
	// flag byte 0xc4.
	payload := make([]byte, 0, 39)
	payload = append(payload, 0x01, 0x42, 0xc4)
	payload = append(payload, make([]byte, 4)...)  // address_hash
	payload = append(payload, make([]byte, 32)...) // two AES blocks
	token := base58CheckEncode(payload)

	_, err := Decrypt(token, "anything", Mainnet)
	require.Error(t, err)
	var bipErr *Error
	require.ErrorAs(t, err, &bipErr)
	require.Equal(t, InvalidFlag, bipErr.Kind)
}

func TestWrongPassphraseIsIncorrectNotSilentSuccess(t *testing.T) {
	privateKey := mustHex(t, "cbf4b9f70470856bb4f40f80b87edb90865997ffee6df315ab166d713af433a5"[:64])
	wif, err := PrivateKeyToWIF(privateKey, WifCompressed, Mainnet)
	require.NoError(t, err)

	encrypted, err := Encrypt(wif, "correct horse", Mainnet)
	require.NoError(t, err)

	_, err = Decrypt(encrypted, "wrong horse", Mainnet)
	require.Error(t, err)
	var bipErr *Error
	require.ErrorAs(t, err, &bipErr)
	require.Equal(t, IncorrectPassphrase, bipErr.Kind)
}

func TestPrivateKeyWIFRoundTrip(t *testing.T) {
	privateKey := mustHex(t, "0000000000000000000000000000000000000000000000000000000000000001"[:64])
	for _, tc := range []struct {
		wifType WifType
		network Network
	}{
		{WifUncompressed, Mainnet},
		{WifCompressed, Mainnet},
		{WifUncompressed, Testnet},
		{WifCompressed, Testnet},
	} {
		wif, err := PrivateKeyToWIF(privateKey, tc.wifType, tc.network)
		require.NoError(t, err)

		recovered, err := WifToPrivateKey(wif)
		require.NoError(t, err)
		require.Equal(t, privateKey, recovered)

		gotType, err := GetWIFType(wif)
		require.NoError(t, err)
		require.Equal(t, tc.wifType, gotType)

		gotNetwork, err := GetWIFNetwork(wif)
		require.NoError(t, err)
		require.Equal(t, tc.network, gotNetwork)
	}
}

func TestCompressUncompressPublicKeyRoundTrip(t *testing.T) {
	privateKey := mustHex(t, "cbf4b9f70470856bb4f40f80b87edb90865997ffee6df315ab166d713af433a5"[:64])

	compressed, err := PrivateKeyToPublicKey(privateKey, Compressed)
	require.NoError(t, err)
	uncompressed, err := PrivateKeyToPublicKey(privateKey, Uncompressed)
	require.NoError(t, err)

	recompressed, err := CompressPublicKey(uncompressed)
	require.NoError(t, err)
	require.Equal(t, compressed, recompressed)

	reuncompressed, err := UncompressPublicKey(compressed)
	require.NoError(t, err)
	require.Equal(t, uncompressed, reuncompressed)
}

func TestIntermediateCodeRejectsInconsistentInputs(t *testing.T) {
	_, err := IntermediateCode("qtum123", &IntermediateCodeOptions{
		LotSeq:    &LotAndSequence{Lot: 1, Sequence: 1},
		OwnerSalt: make([]byte, 8),
	})
	require.Error(t, err)

	_, err = IntermediateCode("qtum123", &IntermediateCodeOptions{
		LotSeq:    &LotAndSequence{Lot: 99999, Sequence: 1},
		OwnerSalt: make([]byte, 4),
	})
	require.Error(t, err)

	_, err = IntermediateCode("qtum123", &IntermediateCodeOptions{
		OwnerSalt: make([]byte, 4),
	})
	require.Error(t, err)
}
