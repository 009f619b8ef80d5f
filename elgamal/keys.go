package elgamal

import (
	"fmt"
	"io"

	"github.com/f3rmion/gsel/group"
)

// EncryptKey is an ElGamal public key: a generator G and Y = x*G.
type EncryptKey struct {
	group     group.Group
	generator group.Point
	y         group.Point
}

// DecryptKey is an ElGamal secret key together with its public key.
type DecryptKey struct {
	secret group.Scalar
	ek     *EncryptKey
}

// NewDecryptKey derives the key pair for secret x under generator.
func NewDecryptKey(g group.Group, generator group.Point, x group.Scalar) *DecryptKey {
	gen := g.NewPoint().Set(generator)
	return &DecryptKey{
		secret: g.NewScalar().Set(x),
		ek: &EncryptKey{
			group:     g,
			generator: gen,
			y:         g.NewPoint().ScalarMult(x, gen),
		},
	}
}

// GenerateKey samples a random generator and a random secret from rng.
func GenerateKey(g group.Group, rng io.Reader) (*DecryptKey, error) {
	gen, err := g.RandomPoint(rng)
	if err != nil {
		return nil, fmt.Errorf("elgamal: sampling generator: %w", err)
	}
	x, err := g.RandomScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("elgamal: sampling secret: %w", err)
	}
	return NewDecryptKey(g, gen, x), nil
}

// NewEncryptKey builds a public key from a generator and Y directly. It is
// meant for keys whose secret is never held in one place, such as the group
// key produced by threshold key generation. Nothing checks that Y is a
// multiple of generator by a known scalar.
func NewEncryptKey(g group.Group, generator, y group.Point) *EncryptKey {
	return &EncryptKey{
		group:     g,
		generator: g.NewPoint().Set(generator),
		y:         g.NewPoint().Set(y),
	}
}

// EncryptKey returns the public half of dk.
func (dk *DecryptKey) EncryptKey() *EncryptKey { return dk.ek }

// Secret returns a copy of the secret scalar.
func (dk *DecryptKey) Secret() group.Scalar {
	return dk.ek.group.NewScalar().Set(dk.secret)
}

// Group returns the group the key is defined over.
func (ek *EncryptKey) Group() group.Group { return ek.group }

// Generator returns a copy of the generator G.
func (ek *EncryptKey) Generator() group.Point {
	return ek.group.NewPoint().Set(ek.generator)
}

// Y returns a copy of the public point Y.
func (ek *EncryptKey) Y() group.Point {
	return ek.group.NewPoint().Set(ek.y)
}

// Equal reports whether ek and other are the same public key.
func (ek *EncryptKey) Equal(other *EncryptKey) bool {
	return ek.generator.Equal(other.generator) && ek.y.Equal(other.y)
}

// Encrypt encrypts m with the caller-supplied scalar r, returning
// (r*G, r*Y + m). r must be uniform and never reused; see the package
// documentation.
func (ek *EncryptKey) Encrypt(m group.Point, r group.Scalar) *Ciphertext {
	g := ek.group
	a := g.NewPoint().ScalarMult(r, ek.generator)
	ry := g.NewPoint().ScalarMult(r, ek.y)
	return &Ciphertext{A: a, B: g.NewPoint().Add(ry, m)}
}

// EncryptRandom encrypts m under a fresh scalar read from rng.
func (ek *EncryptKey) EncryptRandom(rng io.Reader, m group.Point) (*Ciphertext, error) {
	r, err := ek.group.RandomScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("elgamal: sampling randomness: %w", err)
	}
	return ek.Encrypt(m, r), nil
}

// Rerandomize returns (A + r*G, B + r*Y), an encryption of the same
// plaintext that is unlinkable to ct when r is uniform.
func (ek *EncryptKey) Rerandomize(ct *Ciphertext, r group.Scalar) *Ciphertext {
	g := ek.group
	a := g.NewPoint().Add(ct.A, g.NewPoint().ScalarMult(r, ek.generator))
	b := g.NewPoint().Add(ct.B, g.NewPoint().ScalarMult(r, ek.y))
	return &Ciphertext{A: a, B: b}
}

// RerandomizeRandom rerandomizes ct with a fresh scalar read from rng.
func (ek *EncryptKey) RerandomizeRandom(rng io.Reader, ct *Ciphertext) (*Ciphertext, error) {
	r, err := ek.group.RandomScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("elgamal: sampling randomness: %w", err)
	}
	return ek.Rerandomize(ct, r), nil
}

// Decrypt returns B - x*A.
//
// Decrypt cannot tell whether ct was encrypted under dk. A foreign
// ciphertext silently decrypts to an unrelated point.
func (dk *DecryptKey) Decrypt(ct *Ciphertext) group.Point {
	g := dk.ek.group
	return g.NewPoint().Sub(ct.B, g.NewPoint().ScalarMult(dk.secret, ct.A))
}
