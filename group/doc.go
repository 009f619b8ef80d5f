// Package group defines abstract interfaces for the prime-order groups and
// bilinear pairings used by the ElGamal and Groth–Sahai packages.
//
// This package provides the capability surface that every curve backend
// implements:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of a source group (points on an elliptic curve)
//   - [Group]: Factory and utility methods for creating scalars and points
//   - [Target]: Elements of the pairing target group GT
//   - [Pairing]: A bilinear map e: G1 x G2 -> GT together with both source groups
//
// ElGamal only needs a [Group]; the NIZK needs a full [Pairing].
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency. Operations
// like Add, Mul, and ScalarMult set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute a + b*c
//	result := g.NewScalar().Mul(b, c)
//	result = g.NewScalar().Add(a, result)
//
// Code in this module never mutates a value it did not allocate itself, so
// keys, ciphertexts, CRSs and proofs behave as immutable values.
//
// Operations that can fail on untrusted input (decoding, randomness) return
// errors rather than panicking. Mixing elements of different backends is a
// programming error and panics on the type assertion.
//
// # Implementing a Backend
//
// To implement these interfaces for a new elliptic curve:
//
//  1. Create a Scalar type that wraps your field element and implements [Scalar]
//  2. Create Point types that wrap your curve points and implement [Point]
//  3. Create a Group type per source group that implements [Group]
//  4. For pairing-friendly curves, implement [Target] and [Pairing]
//
// See the bls12381 and bn254 packages for pairing backends and the bjj and
// ristretto packages for plain prime-order groups.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Random scalars are generated from the caller-supplied reader only
//   - Non-canonical scalars and invalid or out-of-subgroup points are
//     rejected in SetBytes
package group
