package nizk

import (
	"context"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/f3rmion/gsel/bls12381"
	"github.com/f3rmion/gsel/bn254"
	"github.com/f3rmion/gsel/group"
	"github.com/f3rmion/gsel/internal/matrix"
	"github.com/stretchr/testify/require"
)

var pairings = []struct {
	name string
	e    group.Pairing
}{
	{"bls12381", bls12381.New()},
	{"bn254", bn254.New()},
}

// instance is a satisfied statement together with its witnesses.
type instance struct {
	st Statement
	y  []group.Scalar
	x  []group.Point
}

// newInstance samples A (n points), Y, X (m points) and b, and sets the
// target to Σ y_j*A_j + Σ b_i*x_i.
func newInstance(t testing.TB, e group.Pairing, m, n int) *instance {
	g := e.G1()
	inst := &instance{
		st: Statement{A: make([]group.Point, n), B: make([]group.Scalar, m)},
		y:  make([]group.Scalar, n),
		x:  make([]group.Point, m),
	}
	target := g.NewPoint()
	for j := 0; j < n; j++ {
		a, err := g.RandomPoint(rand.Reader)
		require.NoError(t, err)
		y, err := g.RandomScalar(rand.Reader)
		require.NoError(t, err)
		inst.st.A[j], inst.y[j] = a, y
		target = g.NewPoint().Add(target, g.NewPoint().ScalarMult(y, a))
	}
	for i := 0; i < m; i++ {
		x, err := g.RandomPoint(rand.Reader)
		require.NoError(t, err)
		b, err := g.RandomScalar(rand.Reader)
		require.NoError(t, err)
		inst.x[i], inst.st.B[i] = x, b
		target = g.NewPoint().Add(target, g.NewPoint().ScalarMult(b, x))
	}
	inst.st.Target = target
	return inst
}

func (inst *instance) prove(t testing.TB, crs *CRS) *Proof {
	proof, err := ProveStatement(rand.Reader, crs, inst.st, inst.y, inst.x)
	require.NoError(t, err)
	return proof
}

func newCRS(t testing.TB, e group.Pairing) *CRS {
	crs, err := NewCRS(e, rand.Reader)
	require.NoError(t, err)
	return crs
}

func TestCRS(t *testing.T) {
	for _, tc := range pairings {
		t.Run(tc.name, func(t *testing.T) {
			e := tc.e
			crs := newCRS(t, e)
			require.True(t, crs.u.At(0, 0).Equal(crs.P1()))
			require.True(t, crs.v.At(0, 0).Equal(crs.P2()))
			require.False(t, crs.P1().IsIdentity())
			require.False(t, crs.P2().IsIdentity())

			// every key entry is a non-trivial multiple of the base point
			for _, k := range []matrix.Matrix[group.Point]{crs.u, crs.v} {
				for _, p := range k.Entries() {
					require.False(t, p.IsIdentity())
				}
			}
			require.False(t, crs.u.At(0, 1).Equal(crs.u.At(1, 0)))

			require.True(t, crs.u1()[0].Equal(crs.P1()))
			require.True(t, crs.u2()[1].Equal(crs.u.At(1, 1)))
			require.True(t, crs.v1().At(0, 0).Equal(crs.P2()))
			basis := crs.lzBasis()
			require.True(t, basis[0].Equal(crs.v2()[0]))
			require.True(t, e.G2().NewPoint().Sub(basis[1], crs.P2()).Equal(crs.v2()[1]))
			base, err := e.Pair([]group.Point{crs.P1()}, []group.Point{crs.P2()})
			require.NoError(t, err)
			require.False(t, base.IsIdentity())

			other := newCRS(t, e)
			require.False(t, crs.Equal(other))
			require.True(t, crs.Equal(crs))
		})
	}
}

func TestCompleteness(t *testing.T) {
	shapes := []struct{ m, n int }{
		{1, 1}, {2, 2}, {3, 1}, {1, 3}, {0, 2}, {2, 0}, {0, 0},
	}
	for _, tc := range pairings {
		t.Run(tc.name, func(t *testing.T) {
			crs := newCRS(t, tc.e)
			for _, sh := range shapes {
				inst := newInstance(t, tc.e, sh.m, sh.n)
				proof := inst.prove(t, crs)
				m, n := proof.Dims()
				require.Equal(t, sh.m, m)
				require.Equal(t, sh.n, n)
				require.True(t, VerifyStatement(crs, inst.st, proof), "m=%d n=%d", sh.m, sh.n)
			}
		})
	}
}

func TestProveFixedScenario(t *testing.T) {
	e := bls12381.New()
	g := e.G1()
	crs := newCRS(t, e)

	// y*G + b*X = target with X = 2G
	gen := g.Generator()
	y, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	b, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	x := g.NewPoint().Add(gen, gen)
	target := g.NewPoint().Add(g.NewPoint().ScalarMult(y, gen), g.NewPoint().ScalarMult(b, x))

	a := []group.Point{gen}
	bs := []group.Scalar{b}
	proof, err := Prove(rand.Reader, crs, a, []group.Scalar{y}, []group.Point{x}, bs)
	require.NoError(t, err)
	require.True(t, Verify(crs, a, bs, target, proof))

	// a false witness produces a proof that fails
	bad, err := Prove(rand.Reader, crs, a, []group.Scalar{g.NewScalar().Add(y, y)}, []group.Point{x}, bs)
	require.NoError(t, err)
	require.False(t, Verify(crs, a, bs, target, bad))
}

func TestRandomize(t *testing.T) {
	for _, tc := range pairings {
		t.Run(tc.name, func(t *testing.T) {
			crs := newCRS(t, tc.e)
			inst := newInstance(t, tc.e, 2, 3)
			proof := inst.prove(t, crs)

			rp, err := proof.Randomize(rand.Reader, crs, inst.st.A, inst.st.B)
			require.NoError(t, err)
			require.True(t, VerifyStatement(crs, inst.st, rp))

			require.False(t, matrix.Equal(rp.c, proof.c))
			require.False(t, matrix.Equal(rp.d, proof.d))
			require.False(t, matrix.Equal(rp.pi, proof.pi))
			require.False(t, matrix.Equal(rp.theta, proof.theta))
			require.False(t, rp.Equal(proof))

			twice, err := rp.Randomize(rand.Reader, crs, inst.st.A, inst.st.B)
			require.NoError(t, err)
			require.True(t, VerifyStatement(crs, inst.st, twice))

			// the original is untouched
			require.True(t, VerifyStatement(crs, inst.st, proof))

			require.Panics(t, func() {
				_, _ = proof.Randomize(rand.Reader, crs, inst.st.A[:1], inst.st.B)
			})
		})
	}
}

func TestTamperRejected(t *testing.T) {
	for _, tc := range pairings {
		t.Run(tc.name, func(t *testing.T) {
			e := tc.e
			g := e.G1()
			crs := newCRS(t, e)
			inst := newInstance(t, e, 2, 2)
			proof := inst.prove(t, crs)
			require.True(t, VerifyStatement(crs, inst.st, proof))

			t.Run("Target", func(t *testing.T) {
				st := inst.st
				st.Target = g.NewPoint().Add(st.Target, g.Generator())
				require.False(t, VerifyStatement(crs, st, proof))
			})

			t.Run("A", func(t *testing.T) {
				st := inst.st
				st.A = append([]group.Point{}, st.A...)
				p, err := g.RandomPoint(rand.Reader)
				require.NoError(t, err)
				st.A[0] = p
				require.False(t, VerifyStatement(crs, st, proof))
			})

			t.Run("B", func(t *testing.T) {
				st := inst.st
				st.B = append([]group.Scalar{}, st.B...)
				st.B[1] = g.NewScalar().Add(st.B[1], st.B[0])
				require.False(t, VerifyStatement(crs, st, proof))
			})

			t.Run("OtherCRS", func(t *testing.T) {
				require.False(t, VerifyStatement(newCRS(t, e), inst.st, proof))
			})

			t.Run("Shape", func(t *testing.T) {
				st := inst.st
				st.A = st.A[:1]
				require.False(t, VerifyStatement(crs, st, proof))
				require.False(t, VerifyStatement(crs, inst.st, nil))

				bad := *proof
				bad.pi = matrix.FromRows(proof.pi.Row(0))
				require.False(t, VerifyStatement(crs, inst.st, &bad))
			})
		})
	}
}

func TestProveShapePanics(t *testing.T) {
	e := bls12381.New()
	crs := newCRS(t, e)
	inst := newInstance(t, e, 2, 1)
	require.Panics(t, func() {
		_, _ = Prove(rand.Reader, crs, inst.st.A, inst.y, inst.x[:1], inst.st.B)
	})
	require.Panics(t, func() {
		_, _ = Prove(rand.Reader, crs, inst.st.A, nil, inst.x, inst.st.B)
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestRandomnessFailure(t *testing.T) {
	e := bls12381.New()
	_, err := NewCRS(e, failingReader{})
	require.Error(t, err)

	crs := newCRS(t, e)
	inst := newInstance(t, e, 1, 1)
	_, err = ProveStatement(failingReader{}, crs, inst.st, inst.y, inst.x)
	require.Error(t, err)
	_, err = inst.prove(t, crs).Randomize(failingReader{}, crs, inst.st.A, inst.st.B)
	require.Error(t, err)
}

func TestEncoding(t *testing.T) {
	for _, tc := range pairings {
		t.Run(tc.name, func(t *testing.T) {
			e := tc.e
			crs := newCRS(t, e)
			inst := newInstance(t, e, 3, 2)
			proof := inst.prove(t, crs)

			t.Run("CRS", func(t *testing.T) {
				data, err := crs.MarshalBinary()
				require.NoError(t, err)
				require.Len(t, data, CRSLen(e))
				got, err := DecodeCRS(e, data)
				require.NoError(t, err)
				require.True(t, got.Equal(crs))
				require.True(t, VerifyStatement(got, inst.st, proof))

				_, err = DecodeCRS(e, data[1:])
				require.ErrorIs(t, err, ErrDecode)
			})

			t.Run("Proof", func(t *testing.T) {
				data, err := proof.MarshalBinary()
				require.NoError(t, err)
				got, err := DecodeProof(e, data)
				require.NoError(t, err)
				require.True(t, got.Equal(proof))
				require.True(t, VerifyStatement(crs, inst.st, got))
			})

			t.Run("ProofRejects", func(t *testing.T) {
				data, err := proof.MarshalBinary()
				require.NoError(t, err)

				_, err = DecodeProof(e, data[:5])
				require.ErrorIs(t, err, ErrDecode)
				_, err = DecodeProof(e, data[:len(data)-1])
				require.ErrorIs(t, err, ErrDecode)
				_, err = DecodeProof(e, append(append([]byte{}, data...), 0))
				require.ErrorIs(t, err, ErrDecode)

				huge := append([]byte{}, data...)
				huge[0], huge[1], huge[2], huge[3] = 0xff, 0xff, 0xff, 0xff
				_, err = DecodeProof(e, huge)
				require.ErrorIs(t, err, ErrDecode)

				swapped := append([]byte{}, data...)
				swapped[3], swapped[7] = swapped[7], swapped[3]
				_, err = DecodeProof(e, swapped)
				require.ErrorIs(t, err, ErrDecode)

				// clearing the compression flag makes the first point of C
				// unparseable at compressed length
				corrupt := append([]byte{}, data...)
				corrupt[8] &= 0x1f
				_, err = DecodeProof(e, corrupt)
				require.ErrorIs(t, err, ErrDecode)
			})
		})
	}
}

func TestVerifyBatch(t *testing.T) {
	e := bls12381.New()
	src, err := NewCRSSource(e, FreshCRS, rand.Reader)
	require.NoError(t, err)

	const count = 6
	claims := make([]Claim, count)
	for i := range claims {
		crs, err := src.Next()
		require.NoError(t, err)
		inst := newInstance(t, e, 1+i%2, 1+i%3)
		claims[i] = Claim{CRS: crs, Statement: inst.st, Proof: inst.prove(t, crs)}
	}
	claims[2].Statement.Target = e.G1().Generator()
	claims[4].CRS = claims[3].CRS

	got, err := VerifyBatch(context.Background(), claims, 3)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, false, true, false, true}, got)

	t.Run("DefaultWorkers", func(t *testing.T) {
		got, err := VerifyBatch(context.Background(), claims, 0)
		require.NoError(t, err)
		require.Len(t, got, count)
	})

	t.Run("Empty", func(t *testing.T) {
		got, err := VerifyBatch(context.Background(), nil, 2)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("MissingCRS", func(t *testing.T) {
		got, err := VerifyBatch(context.Background(), []Claim{{Statement: claims[0].Statement, Proof: claims[0].Proof}}, 1)
		require.NoError(t, err)
		require.Equal(t, []bool{false}, got)
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := VerifyBatch(ctx, claims, 2)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestCRSSource(t *testing.T) {
	e := bn254.New()

	_, err := NewCRSSource(e, 0, rand.Reader)
	require.Error(t, err)

	t.Run("Shared", func(t *testing.T) {
		src, err := NewCRSSource(e, SharedCRS, rand.Reader)
		require.NoError(t, err)
		a, err := src.Next()
		require.NoError(t, err)
		b, err := src.Next()
		require.NoError(t, err)
		require.Same(t, a, b)
	})

	t.Run("Fresh", func(t *testing.T) {
		src, err := NewCRSSource(e, FreshCRS, rand.Reader)
		require.NoError(t, err)
		a, err := src.Next()
		require.NoError(t, err)
		b, err := src.Next()
		require.NoError(t, err)
		require.False(t, a.Equal(b))
	})

	t.Run("Parse", func(t *testing.T) {
		p, err := ParseCRSPolicy("shared")
		require.NoError(t, err)
		require.Equal(t, SharedCRS, p)
		p, err = ParseCRSPolicy("fresh")
		require.NoError(t, err)
		require.Equal(t, "fresh", p.String())
		_, err = ParseCRSPolicy("")
		require.Error(t, err)
		_, err = ParseCRSPolicy("sometimes")
		require.Error(t, err)
	})
}

func BenchmarkProve(b *testing.B) {
	e := bls12381.New()
	crs := newCRS(b, e)
	inst := newInstance(b, e, 2, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inst.prove(b, crs)
	}
}

func BenchmarkVerify(b *testing.B) {
	e := bls12381.New()
	crs := newCRS(b, e)
	inst := newInstance(b, e, 2, 2)
	proof := inst.prove(b, crs)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		VerifyStatement(crs, inst.st, proof)
	}
}

func BenchmarkRandomize(b *testing.B) {
	e := bls12381.New()
	crs := newCRS(b, e)
	inst := newInstance(b, e, 2, 2)
	proof := inst.prove(b, crs)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := proof.Randomize(rand.Reader, crs, inst.st.A, inst.st.B); err != nil {
			b.Fatal(err)
		}
	}
}
