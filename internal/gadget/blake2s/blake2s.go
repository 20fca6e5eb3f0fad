package blake2s

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
)

// BlockBits is the width of the single block this gadget compresses: the
// Mint-Asset ivk preimage is exactly 512 bits (two 256-bit point
// representations), which is also exactly one BLAKE2s block, so no padding
// or chaining across blocks is needed.
const BlockBits = 512

// DigestBits is the width of a BLAKE2s-256 digest.
const DigestBits = 256

// word is a 32-bit value as 32 boolean wires, bit 0 the least significant.
type word [32]frontend.Variable

var iv = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

var sigma = [10][16]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

func constWord(v uint32) word {
	var w word
	for i := 0; i < 32; i++ {
		w[i] = int((v >> uint(i)) & 1)
	}
	return w
}

// rotr rotates w right by n bits; bit i of the result is bit (i+n)%32 of w,
// since bit 0 holds the least significant bit.
func rotr(w word, n int) word {
	var out word
	for i := 0; i < 32; i++ {
		out[i] = w[(i+n)%32]
	}
	return out
}

func xorWord(api frontend.API, a, b word) word {
	var out word
	for i := 0; i < 32; i++ {
		out[i] = api.Xor(a[i], b[i])
	}
	return out
}

// addMod32 computes (a+b) mod 2^32 over boolean wires with a ripple-carry
// adder, discarding the final carry out.
func addMod32(api frontend.API, a, b word) word {
	var out word
	carry := frontend.Variable(0)
	for i := 0; i < 32; i++ {
		axb := api.Xor(a[i], b[i])
		out[i] = api.Xor(axb, carry)
		ab := api.And(a[i], b[i])
		cAxb := api.And(carry, axb)
		carry = api.Or(ab, cAxb)
	}
	return out
}

func add3Mod32(api frontend.API, a, b, c word) word {
	return addMod32(api, addMod32(api, a, b), c)
}

func g(api frontend.API, a, b, c, d, mx, my word) (word, word, word, word) {
	a = add3Mod32(api, a, b, mx)
	d = rotr(xorWord(api, d, a), 16)
	c = addMod32(api, c, d)
	b = rotr(xorWord(api, b, c), 12)
	a = add3Mod32(api, a, b, my)
	d = rotr(xorWord(api, d, a), 8)
	c = addMod32(api, c, d)
	b = rotr(xorWord(api, b, c), 7)
	return a, b, c, d
}

// compress runs the 10-round BLAKE2s mixing schedule over chaining value h
// and message words m, with t0 fixed to 64 (one block counted) and the
// finalization flag set, since the gadget only ever sees a single block.
func compress(api frontend.API, h [8]word, m [16]word) [8]word {
	var v [16]word
	copy(v[0:8], h[:])
	for i := 0; i < 8; i++ {
		v[8+i] = constWord(iv[i])
	}
	v[12] = xorWord(api, v[12], constWord(uint32(BlockBits/8)))
	v[14] = xorWord(api, v[14], constWord(0xFFFFFFFF))

	for round := 0; round < 10; round++ {
		s := sigma[round]
		v[0], v[4], v[8], v[12] = g(api, v[0], v[4], v[8], v[12], m[s[0]], m[s[1]])
		v[1], v[5], v[9], v[13] = g(api, v[1], v[5], v[9], v[13], m[s[2]], m[s[3]])
		v[2], v[6], v[10], v[14] = g(api, v[2], v[6], v[10], v[14], m[s[4]], m[s[5]])
		v[3], v[7], v[11], v[15] = g(api, v[3], v[7], v[11], v[15], m[s[6]], m[s[7]])

		v[0], v[5], v[10], v[15] = g(api, v[0], v[5], v[10], v[15], m[s[8]], m[s[9]])
		v[1], v[6], v[11], v[12] = g(api, v[1], v[6], v[11], v[12], m[s[10]], m[s[11]])
		v[2], v[7], v[8], v[13] = g(api, v[2], v[7], v[8], v[13], m[s[12]], m[s[13]])
		v[3], v[4], v[9], v[14] = g(api, v[3], v[4], v[9], v[14], m[s[14]], m[s[15]])
	}

	var out [8]word
	for i := 0; i < 8; i++ {
		out[i] = xorWord(api, xorWord(api, h[i], v[i]), v[8+i])
	}
	return out
}

// initialChain builds the BLAKE2s parameter-block-adjusted chaining value
// for an unkeyed, 32-byte digest with the given 8-byte personalization tag,
// per RFC 7693 section 2.5. It folds the fixed parameter words into the IV
// at compile time, in plain Go, since neither depends on a witness value.
func initialChain(personalization [8]byte) [8]word {
	var h [8]word
	h[0] = constWord(iv[0] ^ 0x01010020)
	for i := 1; i <= 5; i++ {
		h[i] = constWord(iv[i])
	}
	h[6] = constWord(iv[6] ^ le32(personalization[0:4]))
	h[7] = constWord(iv[7] ^ le32(personalization[4:8]))
	return h
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// Hash compresses a single 512-bit little-endian block, folding in an 8-byte
// personalization tag, and returns the 256-bit digest as boolean wires, bit 0
// the least significant bit of the first output byte. preimageBits must
// already be constrained boolean by the caller (point-representation bit
// decompositions are); Hash re-asserts it defensively.
func Hash(api frontend.API, preimageBits []frontend.Variable, personalization [8]byte) ([]frontend.Variable, error) {
	if len(preimageBits) != BlockBits {
		return nil, fmt.Errorf("blake2s: preimage must be %d bits, got %d", BlockBits, len(preimageBits))
	}
	for _, b := range preimageBits {
		api.AssertIsBoolean(b)
	}

	var m [16]word
	for i := 0; i < 16; i++ {
		copy(m[i][:], preimageBits[32*i:32*i+32])
	}

	h := initialChain(personalization)
	out := compress(api, h, m)

	digest := make([]frontend.Variable, 0, DigestBits)
	for i := 0; i < 8; i++ {
		digest = append(digest, out[i][:]...)
	}
	return digest, nil
}
