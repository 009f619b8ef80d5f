// Package nizk implements a Groth–Sahai non-interactive zero-knowledge
// argument over a type-3 pairing ([group.Pairing]).
//
// For public A ∈ G1^n, b ∈ F^m and target ∈ G1 a prover holding
// Y ∈ F^n and X ∈ G1^m shows that
//
//	Σ Y[j]*A[j] + Σ b[i]*X[i] = target
//
// without revealing Y or X. The witnesses are committed to with the keys U
// and V of a common reference string ([CRS]); a [Proof] consists of the
// commitments C (m×2 over G1) and D (n×2 over G2) and the terms Pi (2×2
// over G2) and Theta (1×2 over G1). The verifier checks one matrix equation
// of pairings.
//
// A proof can be rerandomized by anyone who knows the public inputs. The
// result verifies for the same statement and shares no component with the
// original.
//
// # CRS handling
//
// The scalars used to build U and V are sampled inside [NewCRS] and
// discarded before it returns; whoever learns them can extract witnesses
// from commitments. Whether one CRS may serve many unrelated statements is
// left to the caller and made explicit with [CRSPolicy] and [CRSSource].
//
// # Usage
//
//	e := bls12381.New()
//	crs, err := nizk.NewCRS(e, rand.Reader)
//	proof, err := nizk.Prove(rand.Reader, crs, A, Y, X, b)
//	ok := nizk.Verify(crs, A, b, target, proof)
package nizk
