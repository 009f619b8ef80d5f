package bls12381

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/f3rmion/gsel/group"
)

// hashDST separates HashToScalar from other uses of hash_to_field on Fr.
var hashDST = []byte("GSEL-BLS12381-HASH-TO-SCALAR-V1")

// Scalar represents an element of the BLS12-381 scalar field Fr.
// It implements [group.Scalar] by wrapping gnark-crypto's fr.Element and is
// shared by G1 and G2.
type Scalar struct {
	inner fr.Element
}

func (s *Scalar) bigInt() *big.Int {
	return s.inner.BigInt(new(big.Int))
}

// Add sets s to a + b and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Sub(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Mul sets s to a * b and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Mul(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Negate sets s to -a and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Neg(&a.(*Scalar).inner)
	return s
}

// Invert sets s to a^(-1) and returns s.
// Returns an error if a is zero.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.inner.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.inner.Inverse(&aScalar.inner)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	return s
}

// Bytes returns the 32-byte big-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

// SetBytes decodes a 32-byte big-endian encoding into s.
// Values greater than or equal to the field modulus are rejected.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != fr.Bytes {
		return nil, fmt.Errorf("bls12381: scalar must be %d bytes, got %d", fr.Bytes, len(data))
	}
	if err := s.inner.SetBytesCanonical(data); err != nil {
		return nil, fmt.Errorf("bls12381: %w", err)
	}
	return s, nil
}

// SetUint64 sets s to v and returns s.
func (s *Scalar) SetUint64(v uint64) group.Scalar {
	s.inner.SetUint64(v)
	return s
}

// Equal reports whether s and b represent the same field element.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equal(&b.(*Scalar).inner)
}

// IsZero reports whether s is zero.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// randomScalar reads 16 bytes more than the field size so that the
// reduction modulo r is statistically uniform.
func randomScalar(r io.Reader) (*Scalar, error) {
	var buf [fr.Bytes + 16]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := new(Scalar)
	s.inner.SetBytes(buf[:])
	return s, nil
}

func hashToScalar(data ...[]byte) (*Scalar, error) {
	var msg []byte
	for _, d := range data {
		msg = append(msg, d...)
	}
	elems, err := fr.Hash(msg, hashDST, 1)
	if err != nil {
		return nil, err
	}
	return &Scalar{inner: elems[0]}, nil
}
