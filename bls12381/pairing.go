package bls12381

import (
	"errors"

	bls "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/f3rmion/gsel/group"
)

// Target is an element of the BLS12-381 pairing target group GT,
// written additively (see [group.Target]).
type Target struct {
	inner bls.GT
}

func newTargetIdentity() *Target {
	var t Target
	t.inner.SetOne()
	return &t
}

// Add sets t to a + b (multiplication in Fp12) and returns t.
func (t *Target) Add(a, b group.Target) group.Target {
	t.inner.Mul(&a.(*Target).inner, &b.(*Target).inner)
	return t
}

// Set copies the value of a into t and returns t.
func (t *Target) Set(a group.Target) group.Target {
	t.inner.Set(&a.(*Target).inner)
	return t
}

// Equal reports whether t and b are the same GT element.
func (t *Target) Equal(b group.Target) bool {
	return t.inner.Equal(&b.(*Target).inner)
}

// IsIdentity reports whether t is the GT identity.
func (t *Target) IsIdentity() bool {
	return t.Equal(newTargetIdentity())
}

// BLS12381 implements [group.Pairing] for the BLS12-381 curve.
//
// BLS12381 is a zero-sized type; create an instance with [New].
type BLS12381 struct{}

// New returns the BLS12-381 pairing backend.
func New() *BLS12381 {
	return &BLS12381{}
}

// G1 returns the G1 source group.
func (e *BLS12381) G1() group.Group { return g1Group{} }

// G2 returns the G2 source group.
func (e *BLS12381) G2() group.Group { return g2Group{} }

// NewTarget returns the GT identity.
func (e *BLS12381) NewTarget() group.Target { return newTargetIdentity() }

// Pair computes the sum of e(p[i], q[i]) with a single multi-Miller loop
// and one final exponentiation. Pairs containing an identity point are
// skipped since they contribute the GT identity.
func (e *BLS12381) Pair(p, q []group.Point) (group.Target, error) {
	if len(p) != len(q) {
		return nil, errors.New("bls12381: pairing inputs differ in length")
	}
	ps := make([]bls.G1Affine, 0, len(p))
	qs := make([]bls.G2Affine, 0, len(q))
	for i := range p {
		if p[i].IsIdentity() || q[i].IsIdentity() {
			continue
		}
		ps = append(ps, p[i].(*G1Point).Affine())
		qs = append(qs, q[i].(*G2Point).Affine())
	}
	if len(ps) == 0 {
		return newTargetIdentity(), nil
	}
	gt, err := bls.Pair(ps, qs)
	if err != nil {
		return nil, err
	}
	return &Target{inner: gt}, nil
}
