// Package ephemeral implements the Ephemeral Key Pair primitive: a scalar
// and the curve point it generates over the protocol's shared public-key
// generator, used as the per-message randomness of a Diffie-Hellman
// exchange rather than as a long-lived identity key.
package ephemeral
