package secp256k1

import "math/big"

// sqrtExp is (P+1)/4, valid because P ≡ 3 (mod 4): for any quadratic
// residue α, α^sqrtExp mod P is a square root of α.
var sqrtExp = new(big.Int).Rsh(new(big.Int).Add(P, big.NewInt(1)), 2)

// Uncompress recovers the full affine point from a 33-byte SEC1
// compressed public key (prefix 0x02/0x03 followed by X).
func Uncompress(prefix byte, x *big.Int) Point {
	ySquared := new(big.Int).Exp(x, big.NewInt(3), P)
	ySquared.Add(ySquared, B)
	ySquared.Mod(ySquared, P)

	y := new(big.Int).Exp(ySquared, sqrtExp, P)

	expectedParity := uint(prefix - 2)
	if y.Bit(0) != expectedParity {
		y.Sub(P, y)
		y.Mod(y, P)
	}
	return Point{X: new(big.Int).Set(x), Y: y}
}

// CompressPrefix returns 0x02 for an even Y, 0x03 for an odd Y.
func CompressPrefix(y *big.Int) byte {
	if y.Bit(0) == 1 {
		return 0x03
	}
	return 0x02
}
