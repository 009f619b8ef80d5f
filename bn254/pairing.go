package bn254

import (
	"errors"

	bn "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/f3rmion/gsel/group"
)

// Target is an element of the BN254 pairing target group GT,
// written additively (see [group.Target]).
type Target struct {
	inner bn.GT
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
	return t.inner.IsOne()
}

// BN254 implements [group.Pairing] for the BN254 (alt_bn128) curve.
type BN254 struct{}

// New returns the BN254 pairing backend.
func New() *BN254 {
	return &BN254{}
}

// G1 returns the G1 source group.
func (e *BN254) G1() group.Group { return g1Group{} }

// G2 returns the G2 source group.
func (e *BN254) G2() group.Group { return g2Group{} }

// NewTarget returns the GT identity.
func (e *BN254) NewTarget() group.Target { return newTargetIdentity() }

// Pair computes the sum of e(p[i], q[i]). Pairs with an identity point
// are dropped before the Miller loop.
func (e *BN254) Pair(p, q []group.Point) (group.Target, error) {
	if len(p) != len(q) {
		return nil, errors.New("bn254: pairing inputs differ in length")
	}
	ps := make([]bn.G1Affine, 0, len(p))
	qs := make([]bn.G2Affine, 0, len(q))
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
	gt, err := bn.Pair(ps, qs)
	if err != nil {
		return nil, err
	}
	return &Target{inner: gt}, nil
}
