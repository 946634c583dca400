package secp256k1

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarBaseMultKnownVector(t *testing.T) {
	// 1*G == G.
	p, err := ScalarBaseMult(big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, Gx, p.X)
	require.Equal(t, Gy, p.Y)
}

func TestScalarMultRejectsOutOfRange(t *testing.T) {
	_, err := ScalarBaseMult(big.NewInt(0))
	require.Error(t, err)

	_, err = ScalarBaseMult(N)
	require.Error(t, err)
}

func TestCompressUncompressRoundTrip(t *testing.T) {
	k := big.NewInt(424242)
	p, err := ScalarBaseMult(k)
	require.NoError(t, err)

	prefix := CompressPrefix(p.Y)
	recovered := Uncompress(prefix, p.X)

	require.Equal(t, p.X, recovered.X)
	require.Equal(t, p.Y, recovered.Y)
}

func TestDoubleMatchesScalarMult(t *testing.T) {
	k := big.NewInt(7)
	p, err := ScalarBaseMult(k)
	require.NoError(t, err)

	doubled := Double(p)
	viaScalar, err := ScalarBaseMult(big.NewInt(14))
	require.NoError(t, err)

	require.Equal(t, viaScalar.X, doubled.X)
	require.Equal(t, viaScalar.Y, doubled.Y)
}
