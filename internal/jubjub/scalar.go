package jubjub

import (
	"errors"
	"io"
	"math/big"

	tedwards "github.com/consensys/gnark-crypto/ecc/twistededwards"
	native "github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
)

// ID selects the BLS12-381 companion twisted-Edwards curve ("Jubjub") when
// instantiating the in-circuit gadget via twistededwards.NewEdCurve.
const ID = tedwards.BLS12_381

var curveParams = native.GetEdwardsCurve()

// Order is the order of the prime-order Jubjub subgroup (the modulus of Fr).
func Order() *big.Int {
	order := new(big.Int).Set(&curveParams.Order)
	return order
}

// CapacityBits is the number of bits strictly below the bit length of Order,
// the largest n such that every n-bit integer is guaranteed smaller than the
// modulus. It determines how many Blake2s output bits may be safely folded
// into an Fr element without an explicit range check.
func CapacityBits() int {
	return Order().BitLen() - 1
}

// NumBits is the full bit length of Order, the width a scalar must be
// decomposed into to represent every element of Fr, not just the
// range-check-free capacity CapacityBits guarantees. Scalars drawn uniformly
// from [1, Order) — as RandomScalar does — routinely set this top bit, so any
// bit decomposition of a general scalar (as opposed to a truncated hash
// output known to be smaller than Order) must use NumBits.
func NumBits() int {
	return Order().BitLen()
}

// ErrNonCanonicalScalar is returned when decoded bytes represent an integer
// that is not the canonical least residue of an Fr element.
var ErrNonCanonicalScalar = errors.New("jubjub: scalar bytes are not canonical")

// Scalar is an element of Fr, the scalar field of the Jubjub subgroup.
type Scalar struct {
	v big.Int
}

// RandomScalar draws a uniformly random nonzero element of Fr from rnd.
func RandomScalar(rnd io.Reader) (Scalar, error) {
	v, err := randFieldElement(rnd, Order())
	if err != nil {
		return Scalar{}, err
	}
	return Scalar{v: *v}, nil
}

// ScalarFromBitsLE folds a little-endian bit string into Fr by plain binary
// reconstruction followed by reduction modulo Order. The bit string is not
// range-checked: any congruent representative, however wide, yields the same
// canonical scalar.
func ScalarFromBitsLE(bits []bool) Scalar {
	v := new(big.Int)
	for i := len(bits) - 1; i >= 0; i-- {
		v.Lsh(v, 1)
		if bits[i] {
			v.SetBit(v, 0, 1)
		}
	}
	v.Mod(v, Order())
	return Scalar{v: *v}
}

// SetBytesLE decodes 32 canonical little-endian bytes into s. It fails if the
// encoded integer is not strictly smaller than Order.
func (s *Scalar) SetBytesLE(b []byte) error {
	if len(b) != 32 {
		return errors.New("jubjub: scalar must be 32 bytes")
	}
	v := new(big.Int)
	setBytesLE(v, b)
	if v.Cmp(Order()) >= 0 {
		return ErrNonCanonicalScalar
	}
	s.v = *v
	return nil
}

// BytesLE returns the canonical 32-byte little-endian encoding of s.
func (s Scalar) BytesLE() [32]byte {
	var out [32]byte
	bytesLE(&s.v, out[:])
	return out
}

// BigInt returns the scalar's value as a big.Int, reduced modulo Order.
func (s Scalar) BigInt() *big.Int {
	return new(big.Int).Set(&s.v)
}

// Equal reports whether s and other represent the same field element.
func (s Scalar) Equal(other Scalar) bool {
	return s.v.Cmp(&other.v) == 0
}

// BitsLE returns the little-endian bit decomposition of s, padded to n bits.
func (s Scalar) BitsLE(n int) []bool {
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = s.v.Bit(i) == 1
	}
	return out
}

func setBytesLE(v *big.Int, b []byte) {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	v.SetBytes(be)
}

func bytesLE(v *big.Int, out []byte) {
	be := v.Bytes()
	for i, c := range be {
		out[len(out)-1-i] = c
	}
}

func randFieldElement(rnd io.Reader, modulus *big.Int) (*big.Int, error) {
	bitLen := modulus.BitLen()
	byteLen := (bitLen + 7) / 8
	for {
		buf := make([]byte, byteLen)
		if _, err := io.ReadFull(rnd, buf); err != nil {
			return nil, err
		}
		// Mask off the excess high bits so most candidates already fall below
		// the modulus and few draws are rejected.
		excess := byteLen*8 - bitLen
		buf[0] &= 0xff >> excess
		v := new(big.Int).SetBytes(buf)
		if v.Sign() != 0 && v.Cmp(modulus) < 0 {
			return v, nil
		}
	}
}
