package bip38

import (
	"math/big"

	"github.com/qtum-io/qbip38/pkg/bip38/secp256k1"
)

// PrivateKeyToPublicKey derives the public key for a 32-byte private key,
// in the SEC1 form selected by pkType.
func PrivateKeyToPublicKey(privateKey []byte, pkType PublicKeyType) ([]byte, error) {
	if len(privateKey) != 32 {
		return nil, newErr(InvalidParameter, "private key must be 32 bytes, got %d", len(privateKey))
	}
	p, err := secp256k1.ScalarBaseMult(bytesToInt(privateKey))
	if err != nil {
		return nil, newErr(InvalidParameter, "invalid private key scalar: %v", err)
	}
	return encodePublicKey(p, pkType)
}

func encodePublicKey(p secp256k1.Point, pkType PublicKeyType) ([]byte, error) {
	switch pkType {
	case Uncompressed:
		out := make([]byte, 65)
		out[0] = uncompressedPubKeyPrefix
		copy(out[1:33], fixedWidthBytes(p.X, 32))
		copy(out[33:], fixedWidthBytes(p.Y, 32))
		return out, nil
	case Compressed:
		out := make([]byte, 33)
		out[0] = secp256k1.CompressPrefix(p.Y)
		copy(out[1:], fixedWidthBytes(p.X, 32))
		return out, nil
	default:
		return nil, newErr(InvalidParameter, "invalid public key type %q (expected %q or %q)", pkType, Uncompressed, Compressed)
	}
}

// CompressPublicKey converts a 65-byte uncompressed public key to its
// 33-byte compressed form.
func CompressPublicKey(pub []byte) ([]byte, error) {
	if len(pub) != 65 || pub[0] != uncompressedPubKeyPrefix {
		return nil, newErr(InvalidParameter, "expected a 65-byte uncompressed public key")
	}
	x, y := pub[1:33], pub[33:]
	out := make([]byte, 33)
	out[0] = secp256k1.CompressPrefix(bytesToInt(y))
	copy(out[1:], x)
	return out, nil
}

// UncompressPublicKey converts a 33-byte compressed public key to its
// 65-byte uncompressed form by solving y² = x³ + 7 mod P.
func UncompressPublicKey(pub []byte) ([]byte, error) {
	if len(pub) != 33 || (pub[0] != evenCompressedPubKeyPrefix && pub[0] != oddCompressedPubKeyPrefix) {
		return nil, newErr(InvalidParameter, "expected a 33-byte compressed public key")
	}
	x := bytesToInt(pub[1:])
	point := secp256k1.Uncompress(pub[0], x)

	out := make([]byte, 65)
	out[0] = uncompressedPubKeyPrefix
	copy(out[1:33], fixedWidthBytes(point.X, 32))
	copy(out[33:], fixedWidthBytes(point.Y, 32))
	return out, nil
}

func toPoint(pub []byte) (secp256k1.Point, error) {
	switch {
	case len(pub) == 33:
		full, err := UncompressPublicKey(pub)
		if err != nil {
			return secp256k1.Point{}, err
		}
		return toPoint(full)
	case len(pub) == 65 && pub[0] == uncompressedPubKeyPrefix:
		return secp256k1.Point{X: bytesToInt(pub[1:33]), Y: bytesToInt(pub[33:])}, nil
	default:
		return secp256k1.Point{}, newErr(InvalidParameter, "invalid public key encoding")
	}
}

// multiplyPublicKey computes scalar*pub (curve scalar multiplication, not
// the private-key multiply below), re-encoding the result in pkType's
// form. Used by the EC-multiply engine to turn a pass_point/point_b into
// the minted public key.
func multiplyPublicKey(pub []byte, scalar []byte, pkType PublicKeyType) ([]byte, error) {
	point, err := toPoint(pub)
	if err != nil {
		return nil, err
	}
	result, err := secp256k1.ScalarMult(point, bytesToInt(scalar))
	if err != nil {
		return nil, newErr(InvalidParameter, "invalid scalar: %v", err)
	}
	return encodePublicKey(result, pkType)
}

// multiplyPrivateKey computes (a*b) mod N, used to recombine pass_factor
// and factor_b into the final private key during EC-multiply decryption.
func multiplyPrivateKey(a, b []byte) []byte {
	product := new(big.Int).Mul(bytesToInt(a), bytesToInt(b))
	product.Mod(product, secp256k1.N)
	return fixedWidthBytes(product, 32)
}
