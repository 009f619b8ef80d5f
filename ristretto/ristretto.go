package ristretto

import (
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/gsel/group"
	"github.com/gtank/ristretto255"
)

const (
	scalarLen  = 32
	pointLen   = 32
	uniformLen = 64
)

var hashPrefix = []byte("gsel/ristretto255/hash_to_scalar")

// Scalar is a ristretto255 scalar with a canonical 32-byte little-endian
// encoding.
type Scalar struct {
	v ristretto255.Scalar
}

// Add sets s to a + b and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.v.Add(&a.(*Scalar).v, &b.(*Scalar).v)
	return s
}

// Sub sets s to a - b and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.v.Subtract(&a.(*Scalar).v, &b.(*Scalar).v)
	return s
}

// Mul sets s to a * b and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.v.Multiply(&a.(*Scalar).v, &b.(*Scalar).v)
	return s
}

// Negate sets s to -a and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.v.Negate(&a.(*Scalar).v)
	return s
}

// Invert sets s to a^(-1) and returns s.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.v.Invert(&aScalar.v)
	return s, nil
}

// Set copies a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.v = a.(*Scalar).v
	return s
}

// Bytes returns the canonical little-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	return s.v.Bytes()
}

// SetBytes decodes a canonical 32-byte scalar into s.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != scalarLen {
		return nil, fmt.Errorf("ristretto: scalar must be %d bytes, got %d", scalarLen, len(data))
	}
	if _, err := s.v.SetCanonicalBytes(data); err != nil {
		return nil, fmt.Errorf("ristretto: non-canonical scalar: %w", err)
	}
	return s, nil
}

// SetUint64 sets s to v and returns s.
func (s *Scalar) SetUint64(v uint64) group.Scalar {
	var buf [scalarLen]byte
	binary.LittleEndian.PutUint64(buf[:8], v)
	if _, err := s.v.SetCanonicalBytes(buf[:]); err != nil {
		panic("ristretto: small scalar rejected: " + err.Error())
	}
	return s
}

// Equal reports whether s equals b.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.v.Equal(&b.(*Scalar).v) == 1
}

// IsZero reports whether s is zero.
func (s *Scalar) IsZero() bool {
	var zero ristretto255.Scalar
	return s.v.Equal(&zero) == 1
}

// Point is a ristretto255 group element.
type Point struct {
	v ristretto255.Element
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	p.v.Add(&a.(*Point).v, &b.(*Point).v)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	p.v.Subtract(&a.(*Point).v, &b.(*Point).v)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	p.v.Negate(&a.(*Point).v)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	p.v.ScalarMult(&s.(*Scalar).v, &q.(*Point).v)
	return p
}

// Set copies a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	p.v = a.(*Point).v
	return p
}

// Bytes returns the canonical 32-byte encoding of p.
func (p *Point) Bytes() []byte {
	return p.v.Bytes()
}

// SetBytes decodes a canonical 32-byte encoding into p.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != pointLen {
		return nil, fmt.Errorf("ristretto: point must be %d bytes, got %d", pointLen, len(data))
	}
	if _, err := p.v.SetCanonicalBytes(data); err != nil {
		return nil, fmt.Errorf("ristretto: non-canonical point: %w", err)
	}
	return p, nil
}

// Equal reports whether p equals b.
func (p *Point) Equal(b group.Point) bool {
	return p.v.Equal(&b.(*Point).v) == 1
}

// IsIdentity reports whether p is the identity element.
func (p *Point) IsIdentity() bool {
	var id ristretto255.Element
	id.Zero()
	return p.v.Equal(&id) == 1
}

// Ristretto implements [group.Group] over ristretto255.
type Ristretto struct{}

// New returns the ristretto255 group.
func New() *Ristretto {
	return &Ristretto{}
}

// NewScalar returns a new zero scalar.
func (g *Ristretto) NewScalar() group.Scalar {
	return new(Scalar)
}

// NewPoint returns a new identity element.
func (g *Ristretto) NewPoint() group.Point {
	var p Point
	p.v.Zero()
	return &p
}

// Generator returns the ristretto255 base point.
func (g *Ristretto) Generator() group.Point {
	var p Point
	p.v.Base()
	return &p
}

// RandomScalar reads 64 bytes from r and reduces them to a scalar.
func (g *Ristretto) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [uniformLen]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := new(Scalar)
	s.v.FromUniformBytes(buf[:])
	return s, nil
}

// RandomPoint returns k*B for a random scalar k.
func (g *Ristretto) RandomPoint(r io.Reader) (group.Point, error) {
	k, err := g.RandomScalar(r)
	if err != nil {
		return nil, err
	}
	var p Point
	p.v.ScalarBaseMult(&k.(*Scalar).v)
	return &p, nil
}

// HashToScalar hashes the concatenated data with SHA-512 and reduces the
// digest to a scalar.
func (g *Ristretto) HashToScalar(data ...[]byte) (group.Scalar, error) {
	h := sha512.New()
	h.Write(hashPrefix)
	for _, d := range data {
		h.Write(d)
	}
	s := new(Scalar)
	s.v.FromUniformBytes(h.Sum(nil))
	return s, nil
}

// ScalarLen returns 32.
func (g *Ristretto) ScalarLen() int { return scalarLen }

// PointLen returns 32.
func (g *Ristretto) PointLen() int { return pointLen }
