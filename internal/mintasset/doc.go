// Package mintasset implements the Mint-Asset statement: given a spend
// authorizing key ak, a nullifier deriving key nsk and a randomizer ar, it
// derives the randomized authorizing key rk and the incoming viewing key's
// diversified public point pk_d, and proves the derivation in zero knowledge
// without revealing ak, nsk or ar.
//
// The circuit mirrors the key-derivation chain Sapling uses for proof
// generation keys: rk re-randomizes ak for unlinkable spend authorization,
// nk binds nsk to a fixed generator for nullifier computation, and ivk folds
// ak and nk through a single BLAKE2s hash to produce the incoming viewing
// key that ultimately derives pk_d.
package mintasset
