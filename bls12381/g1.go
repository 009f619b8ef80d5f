package bls12381

import (
	"fmt"
	"io"

	bls "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/f3rmion/gsel/group"
)

// G1Point is an element of the BLS12-381 G1 subgroup.
//
// Arithmetic is carried out in Jacobian coordinates; the affine form is
// only produced when the point is encoded or fed to the pairing.
type G1Point struct {
	inner bls.G1Jac
}

func newG1Identity() *G1Point {
	var p G1Point
	p.inner.X.SetOne()
	p.inner.Y.SetOne()
	return &p
}

// Affine returns the canonical affine representation of p.
func (p *G1Point) Affine() bls.G1Affine {
	var a bls.G1Affine
	a.FromJacobian(&p.inner)
	return a
}

// Add sets p to a + b and returns p.
func (p *G1Point) Add(a, b group.Point) group.Point {
	sum := a.(*G1Point).inner
	sum.AddAssign(&b.(*G1Point).inner)
	p.inner = sum
	return p
}

// Sub sets p to a - b and returns p.
func (p *G1Point) Sub(a, b group.Point) group.Point {
	diff := a.(*G1Point).inner
	diff.SubAssign(&b.(*G1Point).inner)
	p.inner = diff
	return p
}

// Negate sets p to -a and returns p.
func (p *G1Point) Negate(a group.Point) group.Point {
	p.inner.Neg(&a.(*G1Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G1Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	p.inner.ScalarMultiplication(&q.(*G1Point).inner, s.(*Scalar).bigInt())
	return p
}

// Set copies the value of a into p and returns p.
func (p *G1Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*G1Point).inner)
	return p
}

// Bytes returns the 48-byte compressed encoding of p.
func (p *G1Point) Bytes() []byte {
	a := p.Affine()
	b := a.Bytes()
	return b[:]
}

// SetBytes decodes a 48-byte compressed encoding into p.
// Points off the curve or outside the prime-order subgroup are rejected.
func (p *G1Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != bls.SizeOfG1AffineCompressed {
		return nil, fmt.Errorf("bls12381: G1 point must be %d bytes, got %d", bls.SizeOfG1AffineCompressed, len(data))
	}
	var a bls.G1Affine
	if _, err := a.SetBytes(data); err != nil {
		return nil, fmt.Errorf("bls12381: %w", err)
	}
	p.inner.FromAffine(&a)
	return p, nil
}

// Equal reports whether p and b represent the same group element.
func (p *G1Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*G1Point).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G1Point) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

type g1Group struct{}

func (g1Group) NewScalar() group.Scalar { return new(Scalar) }

func (g1Group) NewPoint() group.Point { return newG1Identity() }

func (g1Group) Generator() group.Point {
	gen, _, _, _ := bls.Generators()
	return &G1Point{inner: gen}
}

func (g1Group) RandomScalar(r io.Reader) (group.Scalar, error) {
	return randomScalar(r)
}

func (g g1Group) RandomPoint(r io.Reader) (group.Point, error) {
	s, err := randomScalar(r)
	if err != nil {
		return nil, err
	}
	return g.NewPoint().ScalarMult(s, g.Generator()), nil
}

func (g1Group) HashToScalar(data ...[]byte) (group.Scalar, error) {
	return hashToScalar(data...)
}

func (g1Group) ScalarLen() int { return fr.Bytes }

func (g1Group) PointLen() int { return bls.SizeOfG1AffineCompressed }
