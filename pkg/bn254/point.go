package bn254

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// ErrPointDecode is returned when a 32-byte value does not represent a
// valid compressed BN254 G1 point.
var ErrPointDecode = fmt.Errorf("bn254: value is not a valid compressed G1 point")

// Point is a BN254 G1 point in compressed 32-byte form, used only
// inside the collaborative protocol (§3).
type Point struct {
	inner bn254.G1Affine
}

// HashToCurvePrefix is the domain-separation tag pinned for every
// hash-to-curve call the protocol makes (§9 design note c).
const HashToCurvePrefix = "CRA_FINGERPRINT"

// HashToCurve maps a seed field element to a G1 point using
// gnark-crypto's RFC 9380 hash-to-curve for BN254 G1 (the Shallue-van
// de Woestijne map), with HashToCurvePrefix as the domain separator.
// The suite itself is an implementer's choice per §9; it must simply
// stay fixed across every agent in a topology, which pinning it here
// guarantees.
func HashToCurve(seed Element) (Point, error) {
	msg := seed.Bytes()
	p, err := bn254.HashToG1(msg[:], []byte(HashToCurvePrefix))
	if err != nil {
		return Point{}, fmt.Errorf("bn254: hash-to-curve failed: %w", err)
	}
	return Point{inner: p}, nil
}

// ScalarMul returns scalar * p (the G^s of §4.5).
func (p Point) ScalarMul(scalar Element) Point {
	var out bn254.G1Affine
	var s big.Int
	scalar.inner.BigInt(&s)
	out.ScalarMultiplication(&p.inner, &s)
	return Point{inner: out}
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	var sum bn254.G1Jac
	var pj, oj bn254.G1Jac
	pj.FromAffine(&p.inner)
	oj.FromAffine(&other.inner)
	sum.Set(&pj).AddAssign(&oj)
	var out bn254.G1Affine
	out.FromJacobian(&sum)
	return Point{inner: out}
}

// Equal reports whether p and other are the same curve point.
func (p Point) Equal(other Point) bool {
	return p.inner.Equal(&other.inner)
}

// IdentityPoint returns the point at infinity, the identity of G1
// under addition.
func IdentityPoint() Point {
	var p bn254.G1Affine
	p.SetInfinity()
	return Point{inner: p}
}

// Bytes returns the compressed 32-byte encoding.
func (p Point) Bytes() [32]byte {
	b := p.inner.Bytes()
	return b
}

// PointFromBytes decodes a compressed 32-byte G1 point.
func PointFromBytes(b [32]byte) (Point, error) {
	var p bn254.G1Affine
	if _, err := p.SetBytes(b[:]); err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrPointDecode, err)
	}
	return Point{inner: p}, nil
}

// FoldToField splits a compressed curve point into the two field
// elements that H(Q) in §4.5 absorbs: the 32 compressed bytes form two
// 16-byte limbs, each zero-extended into its own field element.
func (p Point) FoldToField() [2]Element {
	raw := p.Bytes()
	var limbs [2]Element
	for i := 0; i < 2; i++ {
		var buf [32]byte
		copy(buf[:16], raw[i*16:i*16+16])
		limbs[i] = FromBytesOrZero(buf)
	}
	return limbs
}
