package bls12381

import (
	"fmt"
	"io"

	bls "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/f3rmion/gsel/group"
)

// G2Point is an element of the BLS12-381 G2 subgroup, held in Jacobian
// coordinates like [G1Point].
type G2Point struct {
	inner bls.G2Jac
}

func newG2Identity() *G2Point {
	var p G2Point
	p.inner.X.SetOne()
	p.inner.Y.SetOne()
	return &p
}

// Affine returns the canonical affine representation of p.
func (p *G2Point) Affine() bls.G2Affine {
	var a bls.G2Affine
	a.FromJacobian(&p.inner)
	return a
}

// Add sets p to a + b and returns p.
func (p *G2Point) Add(a, b group.Point) group.Point {
	sum := a.(*G2Point).inner
	sum.AddAssign(&b.(*G2Point).inner)
	p.inner = sum
	return p
}

// Sub sets p to a - b and returns p.
func (p *G2Point) Sub(a, b group.Point) group.Point {
	diff := a.(*G2Point).inner
	diff.SubAssign(&b.(*G2Point).inner)
	p.inner = diff
	return p
}

// Negate sets p to -a and returns p.
func (p *G2Point) Negate(a group.Point) group.Point {
	p.inner.Neg(&a.(*G2Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G2Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	p.inner.ScalarMultiplication(&q.(*G2Point).inner, s.(*Scalar).bigInt())
	return p
}

// Set copies the value of a into p and returns p.
func (p *G2Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*G2Point).inner)
	return p
}

// Bytes returns the 96-byte compressed encoding of p.
func (p *G2Point) Bytes() []byte {
	a := p.Affine()
	b := a.Bytes()
	return b[:]
}

// SetBytes decodes a 96-byte compressed encoding into p.
func (p *G2Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != bls.SizeOfG2AffineCompressed {
		return nil, fmt.Errorf("bls12381: G2 point must be %d bytes, got %d", bls.SizeOfG2AffineCompressed, len(data))
	}
	var a bls.G2Affine
	if _, err := a.SetBytes(data); err != nil {
		return nil, fmt.Errorf("bls12381: %w", err)
	}
	p.inner.FromAffine(&a)
	return p, nil
}

// Equal reports whether p and b represent the same group element.
func (p *G2Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*G2Point).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G2Point) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

type g2Group struct{}

func (g2Group) NewScalar() group.Scalar { return new(Scalar) }

func (g2Group) NewPoint() group.Point { return newG2Identity() }

func (g2Group) Generator() group.Point {
	_, gen, _, _ := bls.Generators()
	return &G2Point{inner: gen}
}

func (g2Group) RandomScalar(r io.Reader) (group.Scalar, error) {
	return randomScalar(r)
}

func (g g2Group) RandomPoint(r io.Reader) (group.Point, error) {
	s, err := randomScalar(r)
	if err != nil {
		return nil, err
	}
	return g.NewPoint().ScalarMult(s, g.Generator()), nil
}

func (g2Group) HashToScalar(data ...[]byte) (group.Scalar, error) {
	return hashToScalar(data...)
}

func (g2Group) ScalarLen() int { return fr.Bytes }

func (g2Group) PointLen() int { return bls.SizeOfG2AffineCompressed }
