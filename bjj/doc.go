// Package bjj provides a Baby Jubjub elliptic curve implementation of the
// [group.Group] interface.
//
// Baby Jubjub is a twisted Edwards curve defined over the scalar field of
// BN254 (also known as alt_bn128). It is commonly used in zero-knowledge
// proof systems, and ElGamal over Baby Jubjub is cheap to verify inside
// BN254 circuits.
//
// Baby Jubjub is not pairing-friendly, so it can back the elgamal and
// threshold packages but not the nizk package.
//
// # Curve Parameters
//
// Baby Jubjub is defined by the equation:
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2
//
// where a = 168700 and d = 168696 over the BN254 scalar field.
//
// The curve has a prime-order subgroup of size:
//
//	2736030358979909402780800718157159386076813972158567259200215660948447373041
//
// # Usage
//
//	g := &bjj.BJJ{}
//	dk, err := elgamal.GenerateKey(g, rand.Reader)
//
// # Security
//
// This implementation relies on gnark-crypto for the underlying curve
// arithmetic. Scalar decoding is strict (canonical, below the subgroup
// order); point decoding checks that the point is on the curve.
package bjj
