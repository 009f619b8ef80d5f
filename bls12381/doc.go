// Package bls12381 provides a BLS12-381 implementation of [group.Pairing]
// for use with the elgamal and nizk packages.
//
// BLS12-381 is a pairing-friendly Barreto–Lynn–Scott curve with embedding
// degree 12 and a 255-bit prime-order subgroup, targeting roughly 126 bits
// of security. It is the default backend of this module.
//
// This package wraps the implementation from gnark-crypto. Points are kept
// in Jacobian coordinates for arithmetic and converted to affine form for
// encoding and pairing evaluation.
//
// # Encoding Sizes
//
//	Scalar (Fr)   32 bytes, big-endian, canonical
//	G1 point      48 bytes, compressed
//	G2 point      96 bytes, compressed
//
// # Usage
//
//	e := bls12381.New()
//	crs, err := nizk.NewCRS(e, rand.Reader)
//
//	g := e.G1() // ElGamal runs over G1
//	dk, err := elgamal.GenerateKey(g, rand.Reader)
//
// # Security
//
// Decoding enforces canonical scalars and subgroup membership for points.
// gnark-crypto makes no constant-time guarantees.
package bls12381
