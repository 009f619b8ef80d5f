// Package ristretto implements [group.Group] over the ristretto255 prime-order
// group using github.com/gtank/ristretto255.
//
// ristretto255 removes the cofactor of Curve25519, so every decoded element
// is in the prime-order group and every element has exactly one encoding.
// It has no pairing and is therefore only usable with the elgamal and
// threshold packages.
package ristretto
