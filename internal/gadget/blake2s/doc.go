// Package blake2s implements BLAKE2s-256 compression as an R1CS gadget: a
// single fixed-size block, no padding or multi-block chaining, with an
// 8-byte personalization tag folded into the initial chaining value per
// RFC 7693 section 2.5. The circuit that drives this package always feeds it
// exactly one 512-bit block, so the general BLAKE2 block-counter and
// finalization-flag machinery collapses to constants.
package blake2s
