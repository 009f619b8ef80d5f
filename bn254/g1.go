package bn254

import (
	"fmt"
	"io"

	bn "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/f3rmion/gsel/group"
)

// G1Point is a point on the BN254 G1 curve (cofactor 1, so every curve
// point is in the prime-order group). Held in Jacobian coordinates.
type G1Point struct {
	inner bn.G1Jac
}

func newG1Identity() *G1Point {
	var p G1Point
	p.inner.X.SetOne()
	p.inner.Y.SetOne()
	return &p
}

// Affine returns the canonical affine representation of p.
func (p *G1Point) Affine() bn.G1Affine {
	var a bn.G1Affine
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

// Bytes returns the 32-byte compressed encoding of p.
func (p *G1Point) Bytes() []byte {
	a := p.Affine()
	b := a.Bytes()
	return b[:]
}

// SetBytes decodes a 32-byte compressed encoding into p.
func (p *G1Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != bn.SizeOfG1AffineCompressed {
		return nil, fmt.Errorf("bn254: G1 point must be %d bytes, got %d", bn.SizeOfG1AffineCompressed, len(data))
	}
	var a bn.G1Affine
	if _, err := a.SetBytes(data); err != nil {
		return nil, fmt.Errorf("bn254: %w", err)
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
	gen, _, _, _ := bn.Generators()
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

func (g1Group) PointLen() int { return bn.SizeOfG1AffineCompressed }
