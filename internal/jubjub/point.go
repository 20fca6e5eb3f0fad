package jubjub

import (
	"errors"
	"math/big"

	bls12381fr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	native "github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
)

// ErrInvalidEncoding is returned when a byte string does not decode to a
// point on the curve, or is the wrong length.
var ErrInvalidEncoding = errors.New("jubjub: invalid point encoding")

// Point is an affine point of the Jubjub curve. Affine coordinates (u, v)
// live in Fq, the base field, which is also the native field of the outer
// circuit.
type Point struct {
	inner native.PointAffine
}

// Generator wraps a fixed native point as a named protocol constant.
func Generator(x, y *big.Int) Point {
	var p native.PointAffine
	p.X.SetBigInt(x)
	p.Y.SetBigInt(y)
	return Point{inner: p}
}

// Identity returns the curve's identity element (0, 1).
func Identity() Point {
	var p native.PointAffine
	p.X.SetZero()
	p.Y.SetOne()
	return Point{inner: p}
}

// Base returns the curve's canonical prime-order-subgroup generator, as
// fixed by gnark-crypto's curve parameters. Protocol-level fixed generators
// are derived from it by scalar multiplication rather than by hashing to the
// curve, since this repository does not implement a hash-to-curve gadget.
func Base() Point {
	return Point{inner: curveParams.Base}
}

// U and V return the affine coordinates, exposed for public-input binding.
func (p Point) U() *big.Int { return fqToBigInt(&p.inner.X) }
func (p Point) V() *big.Int { return fqToBigInt(&p.inner.Y) }

// Add returns p + q using the curve's complete addition law.
func (p Point) Add(q Point) Point {
	var r native.PointAffine
	r.Add(&p.inner, &q.inner)
	return Point{inner: r}
}

// ScalarMul returns [s]p.
func (p Point) ScalarMul(s Scalar) Point {
	var r native.PointAffine
	r.ScalarMultiplication(&p.inner, s.BigInt())
	return Point{inner: r}
}

// IsOnCurve reports whether p satisfies the twisted Edwards curve equation.
func (p Point) IsOnCurve() bool {
	return p.inner.IsOnCurve()
}

// IsSmallOrder reports whether p is a nontrivial point of the curve's small
// cofactor subgroup: multiplying it by the cofactor 8 (three doublings)
// yields the identity while p itself is not the identity.
func (p Point) IsSmallOrder() bool {
	q := p.inner
	for i := 0; i < 3; i++ {
		q.Double(&q)
	}
	id := Identity().inner
	return q.X.Equal(&id.X) && q.Y.Equal(&id.Y) && !(p.inner.X.Equal(&id.X) && p.inner.Y.Equal(&id.Y))
}

// Equal reports whether p and q are the same affine point.
func (p Point) Equal(q Point) bool {
	return p.inner.X.Equal(&q.inner.X) && p.inner.Y.Equal(&q.inner.Y)
}

// Compressed returns the 32-byte little-endian compressed encoding: the
// v-coordinate with the sign of u folded into its top bit.
func (p Point) Compressed() [32]byte {
	var out [32]byte
	vBytes := p.inner.Y.Bytes() // big-endian, 32 bytes
	for i := 0; i < 32; i++ {
		out[i] = vBytes[31-i]
	}
	if isOdd(&p.inner.X) {
		out[31] |= 0x80
	}
	return out
}

// SetCompressed decodes a 32-byte compressed point, recovering u from the
// curve equation and the sign bit. It fails if the bytes do not correspond
// to a point on the curve.
func SetCompressed(b []byte) (Point, error) {
	if len(b) != 32 {
		return Point{}, ErrInvalidEncoding
	}
	var buf [32]byte
	copy(buf[:], b)
	sign := buf[31]&0x80 != 0
	buf[31] &= 0x7f

	var beY [32]byte
	for i := 0; i < 32; i++ {
		beY[i] = buf[31-i]
	}
	var y bls12381fr.Element
	y.SetBytes(beY[:])

	x, err := recoverU(y, sign)
	if err != nil {
		return Point{}, err
	}
	p := native.PointAffine{X: x, Y: y}
	if !p.IsOnCurve() {
		return Point{}, ErrInvalidEncoding
	}
	return Point{inner: p}, nil
}

// Extended is the 160-byte redundant projective encoding (U, V, Z, T1, T2),
// each a 32-byte little-endian Fq element, used by callers that want to skip
// the curve-equation square-root work SetCompressed performs. Z is fixed at
// 1 and T1*T2 = U*V/Z for an affine-derived extended point.
type Extended [160]byte

// ToExtended produces the redundant encoding for fast re-hydration.
func (p Point) ToExtended() Extended {
	var z, t1, t2 bls12381fr.Element
	z.SetOne()
	t1.Set(&p.inner.X)
	t2.Set(&p.inner.Y)

	var out Extended
	putFq(out[0:32], &p.inner.X)
	putFq(out[32:64], &p.inner.Y)
	putFq(out[64:96], &z)
	putFq(out[96:128], &t1)
	putFq(out[128:160], &t2)
	return out
}

// SetExtended decodes the 160-byte redundant form without re-deriving it
// from a compressed point or checking T1*T2 against U*V/Z; it trusts the
// caller to have produced the bytes via ToExtended (storage round-trip, not
// adversarial-input validation — see ephemeral.FromBytesLE).
func SetExtended(b []byte) (Point, error) {
	if len(b) < 160 {
		return Point{}, ErrInvalidEncoding
	}
	var x, y, z bls12381fr.Element
	getFq(&x, b[0:32])
	getFq(&y, b[32:64])
	getFq(&z, b[64:96])

	if z.IsZero() {
		return Point{}, ErrInvalidEncoding
	}
	var zInv bls12381fr.Element
	zInv.Inverse(&z)
	x.Mul(&x, &zInv)
	y.Mul(&y, &zInv)

	return Point{inner: native.PointAffine{X: x, Y: y}}, nil
}

func isOdd(e *bls12381fr.Element) bool {
	b := e.Bytes()
	return b[31]&1 == 1
}

func putFq(dst []byte, e *bls12381fr.Element) {
	be := e.Bytes()
	for i := 0; i < 32; i++ {
		dst[i] = be[31-i]
	}
}

func getFq(e *bls12381fr.Element, src []byte) {
	var be [32]byte
	for i := 0; i < 32; i++ {
		be[i] = src[31-i]
	}
	e.SetBytes(be[:])
}

func fqToBigInt(e *bls12381fr.Element) *big.Int {
	return e.BigInt(new(big.Int))
}

// recoverU solves the twisted Edwards curve equation a*u^2 + v^2 = 1 + d*u^2*v^2
// for u given v and the desired sign, using the curve's fixed (a, d).
func recoverU(v bls12381fr.Element, signBit bool) (bls12381fr.Element, error) {
	var v2, num, den, u2, u bls12381fr.Element
	v2.Square(&v)

	num.Sub(&one, &v2) // 1 - v^2
	den.Mul(&curveParams.D, &v2)
	den.Sub(&curveParams.A, &den) // a - d*v^2
	if den.IsZero() {
		return bls12381fr.Element{}, ErrInvalidEncoding
	}
	den.Inverse(&den)
	u2.Mul(&num, &den)

	if u2.Legendre() < 0 {
		return bls12381fr.Element{}, ErrInvalidEncoding
	}
	u.Sqrt(&u2)
	if isOdd(&u) != signBit {
		u.Neg(&u)
	}
	return u, nil
}

var one bls12381fr.Element

func init() {
	one.SetOne()
}
