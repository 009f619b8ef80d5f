package elgamal

import (
	"crypto/rand"
	"testing"

	"github.com/f3rmion/gsel/bjj"
	"github.com/f3rmion/gsel/bls12381"
	"github.com/f3rmion/gsel/bn254"
	"github.com/f3rmion/gsel/group"
	"github.com/f3rmion/gsel/ristretto"
	"github.com/stretchr/testify/require"
)

var groups = []struct {
	name string
	g    group.Group
}{
	{"bls12381", bls12381.New().G1()},
	{"bn254", bn254.New().G1()},
	{"bjj", &bjj.BJJ{}},
	{"ristretto255", ristretto.New()},
}

func randScalar(t testing.TB, g group.Group) group.Scalar {
	s, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	return s
}

func randPoint(t testing.TB, g group.Group) group.Point {
	p, err := g.RandomPoint(rand.Reader)
	require.NoError(t, err)
	return p
}

func newKey(t testing.TB, g group.Group) *DecryptKey {
	dk, err := GenerateKey(g, rand.Reader)
	require.NoError(t, err)
	return dk
}

func TestElGamal(t *testing.T) {
	for _, tc := range groups {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.g
			dk := newKey(t, g)
			ek := dk.EncryptKey()

			t.Run("RoundTrip", func(t *testing.T) {
				for i := 0; i < 4; i++ {
					m := randPoint(t, g)
					ct := ek.Encrypt(m, randScalar(t, g))
					require.True(t, dk.Decrypt(ct).Equal(m))
				}
				// identity message
				ct := ek.Encrypt(g.NewPoint(), randScalar(t, g))
				require.True(t, dk.Decrypt(ct).IsIdentity())
			})

			t.Run("Homomorphism", func(t *testing.T) {
				m1, m2 := randPoint(t, g), randPoint(t, g)
				ct1 := ek.Encrypt(m1, randScalar(t, g))
				ct2 := ek.Encrypt(m2, randScalar(t, g))
				sum := ct1.Add(g, ct2)
				want := g.NewPoint().Add(m1, m2)
				require.True(t, dk.Decrypt(sum).Equal(want))
				require.True(t, sum.Equal(ct2.Add(g, ct1)))

				m3 := randPoint(t, g)
				ct3 := ek.Encrypt(m3, randScalar(t, g))
				total := Sum(g, ct1, ct2, ct3)
				require.True(t, total.Equal(ct1.Add(g, ct2.Add(g, ct3))))
				require.True(t, dk.Decrypt(total).Equal(g.NewPoint().Add(want, m3)))
				require.True(t, dk.Decrypt(Sum(g)).IsIdentity())
			})

			t.Run("Rerandomize", func(t *testing.T) {
				m := randPoint(t, g)
				ct := ek.Encrypt(m, randScalar(t, g))
				ct2 := ek.Rerandomize(ct, randScalar(t, g))
				require.False(t, ct2.Equal(ct))
				require.False(t, ct2.A.Equal(ct.A))
				require.False(t, ct2.B.Equal(ct.B))
				require.True(t, dk.Decrypt(ct2).Equal(m))

				ct3, err := ek.RerandomizeRandom(rand.Reader, ct2)
				require.NoError(t, err)
				require.True(t, dk.Decrypt(ct3).Equal(m))

				// rerandomizing by zero is the identity map
				require.True(t, ek.Rerandomize(ct, g.NewScalar()).Equal(ct))
			})

			t.Run("KeyMismatch", func(t *testing.T) {
				other := NewDecryptKey(g, ek.Generator(), randScalar(t, g))
				m := randPoint(t, g)
				ct := ek.Encrypt(m, randScalar(t, g))
				require.False(t, other.Decrypt(ct).Equal(m))
			})

			t.Run("ReusedRandomness", func(t *testing.T) {
				r := randScalar(t, g)
				m1, m2 := randPoint(t, g), randPoint(t, g)
				ct1, ct2 := ek.Encrypt(m1, r), ek.Encrypt(m2, r)
				require.True(t, ct1.A.Equal(ct2.A))
				require.True(t, g.NewPoint().Sub(ct1.B, ct2.B).Equal(g.NewPoint().Sub(m1, m2)))
			})

			t.Run("InputsNotMutated", func(t *testing.T) {
				m := randPoint(t, g)
				mCopy := g.NewPoint().Set(m)
				ct := ek.Encrypt(m, randScalar(t, g))
				a, b := g.NewPoint().Set(ct.A), g.NewPoint().Set(ct.B)
				_ = ek.Rerandomize(ct, randScalar(t, g))
				_ = ct.Add(g, ct)
				_ = dk.Decrypt(ct)
				require.True(t, m.Equal(mCopy))
				require.True(t, ct.A.Equal(a))
				require.True(t, ct.B.Equal(b))
			})
		})
	}
}

func TestConcreteScenario(t *testing.T) {
	for _, tc := range groups {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.g
			gen := g.Generator()
			x := randScalar(t, g)
			dk := NewDecryptKey(g, gen, x)
			ek := dk.EncryptKey()

			y := g.NewPoint().ScalarMult(x, gen)
			require.True(t, ek.Y().Equal(y))
			require.True(t, ek.Generator().Equal(gen))
			require.True(t, dk.Secret().Equal(x))

			p := g.NewPoint().Add(gen, gen)
			require.False(t, p.IsIdentity())

			r := randScalar(t, g)
			ct := ek.Encrypt(p, r)
			require.True(t, ct.A.Equal(g.NewPoint().ScalarMult(r, gen)))
			require.True(t, ct.B.Equal(g.NewPoint().Add(g.NewPoint().ScalarMult(r, y), p)))
			require.True(t, dk.Decrypt(ct).Equal(p))

			r2 := randScalar(t, g)
			ct2 := ek.Encrypt(p, r2)
			require.False(t, ct2.Equal(ct))
			require.True(t, dk.Decrypt(ct2).Equal(p))
		})
	}
}

func TestEncoding(t *testing.T) {
	for _, tc := range groups {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.g
			dk := newKey(t, g)
			ek := dk.EncryptKey()
			ct, err := ek.EncryptRandom(rand.Reader, randPoint(t, g))
			require.NoError(t, err)

			t.Run("EncryptKey", func(t *testing.T) {
				data, err := ek.MarshalBinary()
				require.NoError(t, err)
				require.Len(t, data, EncryptKeyLen(g))
				got, err := DecodeEncryptKey(g, data)
				require.NoError(t, err)
				require.True(t, got.Equal(ek))
			})

			t.Run("DecryptKey", func(t *testing.T) {
				data, err := dk.MarshalBinary()
				require.NoError(t, err)
				require.Len(t, data, DecryptKeyLen(g))
				got, err := DecodeDecryptKey(g, data)
				require.NoError(t, err)
				require.True(t, got.Secret().Equal(dk.Secret()))
				require.True(t, got.EncryptKey().Equal(ek))
				require.True(t, got.Decrypt(ct).Equal(dk.Decrypt(ct)))
			})

			t.Run("Ciphertext", func(t *testing.T) {
				data, err := ct.MarshalBinary()
				require.NoError(t, err)
				require.Len(t, data, CiphertextLen(g))
				got, err := DecodeCiphertext(g, data)
				require.NoError(t, err)
				require.True(t, got.Equal(ct))
			})

			t.Run("RejectLength", func(t *testing.T) {
				data, err := ct.MarshalBinary()
				require.NoError(t, err)
				_, err = DecodeCiphertext(g, data[:len(data)-1])
				require.ErrorIs(t, err, ErrDecode)
				_, err = DecodeCiphertext(g, append(data, 0))
				require.ErrorIs(t, err, ErrDecode)
				_, err = DecodeEncryptKey(g, nil)
				require.ErrorIs(t, err, ErrDecode)
				_, err = DecodeDecryptKey(g, data)
				require.ErrorIs(t, err, ErrDecode)
			})

			t.Run("RejectInconsistentKey", func(t *testing.T) {
				other := NewDecryptKey(g, ek.Generator(), randScalar(t, g))
				data := append([]byte{}, other.Secret().Bytes()...)
				ekData, err := ek.MarshalBinary()
				require.NoError(t, err)
				data = append(data, ekData...)
				_, err = DecodeDecryptKey(g, data)
				require.ErrorIs(t, err, ErrDecode)
			})

			t.Run("RejectNonCanonicalScalar", func(t *testing.T) {
				data, err := dk.MarshalBinary()
				require.NoError(t, err)
				for i := 0; i < g.ScalarLen(); i++ {
					data[i] = 0xff
				}
				_, err = DecodeDecryptKey(g, data)
				require.ErrorIs(t, err, ErrDecode)
			})
		})
	}
}

func BenchmarkEncrypt(b *testing.B) {
	g := bls12381.New().G1()
	ek := newKey(b, g).EncryptKey()
	m := randPoint(b, g)
	r := randScalar(b, g)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ek.Encrypt(m, r)
	}
}

func BenchmarkDecrypt(b *testing.B) {
	g := bls12381.New().G1()
	dk := newKey(b, g)
	ct := dk.EncryptKey().Encrypt(randPoint(b, g), randScalar(b, g))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dk.Decrypt(ct)
	}
}

func BenchmarkRerandomize(b *testing.B) {
	g := bls12381.New().G1()
	ek := newKey(b, g).EncryptKey()
	ct := ek.Encrypt(randPoint(b, g), randScalar(b, g))
	r := randScalar(b, g)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ek.Rerandomize(ct, r)
	}
}
