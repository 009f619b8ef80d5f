package elgamal

import "github.com/f3rmion/gsel/group"

// Ciphertext is an ElGamal ciphertext (A, B) = (r*G, r*Y + M).
type Ciphertext struct {
	A group.Point
	B group.Point
}

// Add returns (ct.A + other.A, ct.B + other.B), an encryption of the sum of
// the two plaintexts when both are under the same key.
func (ct *Ciphertext) Add(g group.Group, other *Ciphertext) *Ciphertext {
	return &Ciphertext{
		A: g.NewPoint().Add(ct.A, other.A),
		B: g.NewPoint().Add(ct.B, other.B),
	}
}

// Sum adds all ciphertexts. The sum of no ciphertexts is (0, 0), which
// decrypts to the identity under every key.
func Sum(g group.Group, cts ...*Ciphertext) *Ciphertext {
	acc := &Ciphertext{A: g.NewPoint(), B: g.NewPoint()}
	for _, ct := range cts {
		acc = acc.Add(g, ct)
	}
	return acc
}

// Equal reports whether both components match.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	return ct.A.Equal(other.A) && ct.B.Equal(other.B)
}
