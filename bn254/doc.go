// Package bn254 provides a BN254 (alt_bn128) implementation of
// [group.Pairing], backed by gnark-crypto.
//
// BN254 is the curve exposed by the Ethereum pairing precompiles. It is
// faster than BLS12-381 but offers roughly 100 bits of security, so it is
// offered as an alternative backend rather than the default.
//
// Encoding sizes: scalars 32 bytes, G1 points 32 bytes compressed, G2
// points 64 bytes compressed.
package bn254
