// Package jubjub implements the out-of-circuit arithmetic for the Jubjub
// twisted Edwards curve, the prime-order subgroup embedded in the BLS12-381
// scalar field that the Mint-Asset circuit operates over.
//
// Fq, the curve's base field, is the native field of the outer SNARK (the
// scalar field of BLS12-381). Fr, the curve's own scalar field, is roughly
// 252 bits and is represented here as a big.Int reduced modulo the subgroup
// order, since gnark-crypto does not ship a dedicated element type for it.
package jubjub
