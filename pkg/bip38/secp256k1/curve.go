// Package secp256k1 implements the minimal field and point arithmetic
// BIP38's EC-multiplied mode needs over the curve y² = x³ + 7: modular
// inverse, point addition, point doubling, and scalar multiplication by
// repeated double-and-add. It intentionally does not implement a general
// elliptic.Curve interface or constant-time guarantees.
package secp256k1

import "math/big"

var (
	// P is the field prime 2^256 - 2^32 - 977.
	P = mustBig("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	// N is the order of the base point G.
	N = mustBig("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	// A and B are the curve coefficients: y² = x³ + A*x + B.
	A = big.NewInt(0)
	B = big.NewInt(7)
	// Gx, Gy is the standard secp256k1 base point.
	Gx = mustBig("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	Gy = mustBig("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")
)

func mustBig(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("secp256k1: invalid constant " + hexStr)
	}
	return n
}

// Point is an affine point on the curve. The point at infinity is never
// represented; callers must avoid operations that would produce it.
type Point struct {
	X, Y *big.Int
}

// G is the standard generator point.
func G() Point { return Point{X: new(big.Int).Set(Gx), Y: new(big.Int).Set(Gy)} }

// ModInverse computes a⁻¹ mod n via the extended Euclidean algorithm. The
// result is undefined (big.Int's ModInverse returns nil) when gcd(a,n)≠1.
func ModInverse(a, n *big.Int) *big.Int {
	return new(big.Int).ModInverse(new(big.Int).Mod(a, n), n)
}

// Add computes p1+p2 for two points with distinct X coordinates. Callers
// must route the equal-X case to Double themselves; Add does not detect
// it.
func Add(p1, p2 Point) Point {
	lambda := new(big.Int).Mul(
		new(big.Int).Sub(p2.Y, p1.Y),
		ModInverse(new(big.Int).Sub(p2.X, p1.X), P),
	)
	lambda.Mod(lambda, P)

	x := new(big.Int).Sub(new(big.Int).Mul(lambda, lambda), p1.X)
	x.Sub(x, p2.X)
	x.Mod(x, P)

	y := new(big.Int).Sub(p1.X, x)
	y.Mul(y, lambda)
	y.Sub(y, p1.Y)
	y.Mod(y, P)

	return Point{X: x, Y: y}
}

// Double computes 2*p.
func Double(p Point) Point {
	num := new(big.Int).Mul(p.X, p.X)
	num.Mul(num, big.NewInt(3))
	num.Add(num, A)

	den := ModInverse(new(big.Int).Lsh(p.Y, 1), P)

	lambda := new(big.Int).Mul(num, den)
	lambda.Mod(lambda, P)

	x := new(big.Int).Mul(lambda, lambda)
	x.Sub(x, new(big.Int).Lsh(p.X, 1))
	x.Mod(x, P)

	y := new(big.Int).Sub(p.X, x)
	y.Mul(y, lambda)
	y.Sub(y, p.Y)
	y.Mod(y, P)

	return Point{X: x, Y: y}
}

// ScalarMult computes k*p by left-to-right double-and-add over k's binary
// expansion, the same algorithm as the reference implementation: the
// accumulator starts at p (consuming the leading 1 bit implicitly) and
// every subsequent bit doubles, adding p again on a set bit.
//
// Fails if k is 0 or k >= N: both would require representing the point
// at infinity, which this package does not model.
func ScalarMult(p Point, k *big.Int) (Point, error) {
	if k.Sign() == 0 || k.Cmp(N) >= 0 {
		return Point{}, errInvalidScalar
	}

	bits := k.Text(2)
	acc := p
	for i := 1; i < len(bits); i++ {
		acc = Double(acc)
		if bits[i] == '1' {
			acc = Add(acc, p)
		}
	}
	return acc, nil
}

// ScalarBaseMult computes k*G.
func ScalarBaseMult(k *big.Int) (Point, error) {
	return ScalarMult(G(), k)
}

var errInvalidScalar = &scalarError{"scalar must satisfy 0 < k < N"}

type scalarError struct{ msg string }

func (e *scalarError) Error() string { return e.msg }

// IsValidScalar reports whether k is in the open interval (0, N), the
// range every private key / pass_factor / factor_b must satisfy.
func IsValidScalar(k *big.Int) bool {
	return k.Sign() > 0 && k.Cmp(N) < 0
}
