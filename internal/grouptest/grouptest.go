// Package grouptest checks that a [group.Group] or [group.Pairing]
// implementation satisfies the algebraic and encoding contract the rest of
// the module relies on.
package grouptest

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/f3rmion/gsel/group"
	"github.com/stretchr/testify/require"
)

func randomScalar(t *testing.T, g group.Group) group.Scalar {
	t.Helper()
	for {
		s, err := g.RandomScalar(rand.Reader)
		require.NoError(t, err)
		if !s.IsZero() {
			return s
		}
	}
}

func randomPoint(t *testing.T, g group.Group) group.Point {
	t.Helper()
	return g.NewPoint().ScalarMult(randomScalar(t, g), g.Generator())
}

// Group runs the scalar and point conformance checks against g.
func Group(t *testing.T, g group.Group) {
	t.Run("Scalar", func(t *testing.T) { scalars(t, g) })
	t.Run("Point", func(t *testing.T) { points(t, g) })
}

func scalars(t *testing.T, g group.Group) {
	t.Run("AddSub", func(t *testing.T) {
		a, b := randomScalar(t, g), randomScalar(t, g)
		sum := g.NewScalar().Add(a, b)
		require.True(t, g.NewScalar().Sub(sum, b).Equal(a))
	})

	t.Run("MulInvert", func(t *testing.T) {
		a, b := randomScalar(t, g), randomScalar(t, g)
		inv, err := g.NewScalar().Invert(a)
		require.NoError(t, err)
		one := g.NewScalar().Mul(a, inv)
		require.True(t, one.Equal(g.NewScalar().SetUint64(1)))
		require.True(t, g.NewScalar().Mul(one, b).Equal(b))
	})

	t.Run("InvertZeroFails", func(t *testing.T) {
		_, err := g.NewScalar().Invert(g.NewScalar())
		require.Error(t, err)
	})

	t.Run("Negate", func(t *testing.T) {
		a := randomScalar(t, g)
		neg := g.NewScalar().Negate(a)
		require.False(t, neg.Equal(a))
		require.True(t, g.NewScalar().Add(a, neg).IsZero())
	})

	t.Run("SetUint64", func(t *testing.T) {
		require.True(t, g.NewScalar().SetUint64(0).IsZero())
		two := g.NewScalar().SetUint64(2)
		three := g.NewScalar().SetUint64(3)
		require.True(t, g.NewScalar().Add(two, three).Equal(g.NewScalar().SetUint64(5)))
		require.True(t, g.NewScalar().Mul(two, three).Equal(g.NewScalar().SetUint64(6)))

		big := g.NewScalar().SetUint64(1 << 40)
		require.True(t, g.NewScalar().Sub(big, g.NewScalar().SetUint64(1<<40-1)).Equal(g.NewScalar().SetUint64(1)))
	})

	t.Run("Bytes", func(t *testing.T) {
		a := randomScalar(t, g)
		enc := a.Bytes()
		require.Len(t, enc, g.ScalarLen())
		back, err := g.NewScalar().SetBytes(enc)
		require.NoError(t, err)
		require.True(t, back.Equal(a))
	})

	t.Run("SetBytesRejects", func(t *testing.T) {
		_, err := g.NewScalar().SetBytes(make([]byte, g.ScalarLen()-1))
		require.Error(t, err, "short")
		_, err = g.NewScalar().SetBytes(make([]byte, g.ScalarLen()+1))
		require.Error(t, err, "long")
		_, err = g.NewScalar().SetBytes(bytes.Repeat([]byte{0xff}, g.ScalarLen()))
		require.Error(t, err, "out of range")
	})

	t.Run("HashToScalar", func(t *testing.T) {
		a, err := g.HashToScalar([]byte("a"), []byte("b"))
		require.NoError(t, err)
		b, err := g.HashToScalar([]byte("a"), []byte("b"))
		require.NoError(t, err)
		c, err := g.HashToScalar([]byte("a"), []byte("c"))
		require.NoError(t, err)
		require.True(t, a.Equal(b))
		require.False(t, a.Equal(c))
	})

	t.Run("Set", func(t *testing.T) {
		a := randomScalar(t, g)
		b := g.NewScalar().Set(a)
		require.True(t, b.Equal(a))
		b.Add(b, a)
		require.False(t, b.Equal(a), "Set must copy")
	})
}

func points(t *testing.T, g group.Group) {
	t.Run("Identity", func(t *testing.T) {
		require.True(t, g.NewPoint().IsIdentity())
		require.False(t, g.Generator().IsIdentity())
		zero := g.NewScalar()
		require.True(t, g.NewPoint().ScalarMult(zero, g.Generator()).IsIdentity())
	})

	t.Run("AddSub", func(t *testing.T) {
		p, q := randomPoint(t, g), randomPoint(t, g)
		sum := g.NewPoint().Add(p, q)
		require.True(t, g.NewPoint().Sub(sum, q).Equal(p))
		require.True(t, g.NewPoint().Add(p, g.NewPoint()).Equal(p))
	})

	t.Run("Negate", func(t *testing.T) {
		p := randomPoint(t, g)
		require.True(t, g.NewPoint().Add(p, g.NewPoint().Negate(p)).IsIdentity())
	})

	t.Run("ScalarMultDistributes", func(t *testing.T) {
		a, b := randomScalar(t, g), randomScalar(t, g)
		p := randomPoint(t, g)
		lhs := g.NewPoint().ScalarMult(g.NewScalar().Add(a, b), p)
		rhs := g.NewPoint().Add(g.NewPoint().ScalarMult(a, p), g.NewPoint().ScalarMult(b, p))
		require.True(t, lhs.Equal(rhs))

		three := g.NewPoint().Add(g.NewPoint().Add(p, p), p)
		require.True(t, g.NewPoint().ScalarMult(g.NewScalar().SetUint64(3), p).Equal(three))
	})

	t.Run("AliasedReceiver", func(t *testing.T) {
		p, q := randomPoint(t, g), randomPoint(t, g)
		want := g.NewPoint().Add(p, q)
		acc := g.NewPoint().Set(p)
		acc.Add(acc, q)
		require.True(t, acc.Equal(want))
		require.False(t, p.Equal(want), "Set must copy")
	})

	t.Run("Bytes", func(t *testing.T) {
		for name, p := range map[string]group.Point{
			"random":    randomPoint(t, g),
			"generator": g.Generator(),
			"identity":  g.NewPoint(),
		} {
			enc := p.Bytes()
			require.Len(t, enc, g.PointLen(), name)
			back, err := g.NewPoint().SetBytes(enc)
			require.NoError(t, err, name)
			require.True(t, back.Equal(p), name)
		}
	})

	t.Run("SetBytesRejects", func(t *testing.T) {
		_, err := g.NewPoint().SetBytes(make([]byte, g.PointLen()-1))
		require.Error(t, err, "short")
		_, err = g.NewPoint().SetBytes(append(g.Generator().Bytes(), 0))
		require.Error(t, err, "long")
	})

	t.Run("RandomPoint", func(t *testing.T) {
		p, err := g.RandomPoint(rand.Reader)
		require.NoError(t, err)
		q, err := g.RandomPoint(rand.Reader)
		require.NoError(t, err)
		require.False(t, p.Equal(q))
	})
}

// Pairing runs the conformance checks of [Group] on both source groups of
// e, then checks bilinearity and the multi-pairing contract.
func Pairing(t *testing.T, e group.Pairing) {
	t.Run("G1", func(t *testing.T) { Group(t, e.G1()) })
	t.Run("G2", func(t *testing.T) { Group(t, e.G2()) })

	g1, g2 := e.G1(), e.G2()
	pair := func(p, q []group.Point) group.Target {
		t.Helper()
		gt, err := e.Pair(p, q)
		require.NoError(t, err)
		return gt
	}

	t.Run("Bilinear", func(t *testing.T) {
		a, b := randomScalar(t, g1), randomScalar(t, g1)
		p, q := g1.Generator(), g2.Generator()
		ab := g1.NewScalar().Mul(a, b)

		lhs := pair([]group.Point{g1.NewPoint().ScalarMult(a, p)}, []group.Point{g2.NewPoint().ScalarMult(b, q)})
		rhs := pair([]group.Point{g1.NewPoint().ScalarMult(ab, p)}, []group.Point{q})
		require.True(t, lhs.Equal(rhs))
		require.False(t, lhs.IsIdentity())
	})

	t.Run("SumOfPairings", func(t *testing.T) {
		p1, p2 := randomPoint(t, g1), randomPoint(t, g1)
		q1, q2 := randomPoint(t, g2), randomPoint(t, g2)
		multi := pair([]group.Point{p1, p2}, []group.Point{q1, q2})
		sum := e.NewTarget().Add(pair([]group.Point{p1}, []group.Point{q1}), pair([]group.Point{p2}, []group.Point{q2}))
		require.True(t, multi.Equal(sum))
	})

	t.Run("Identity", func(t *testing.T) {
		require.True(t, e.NewTarget().IsIdentity())
		require.True(t, pair(nil, nil).IsIdentity())
		require.True(t, pair([]group.Point{g1.NewPoint()}, []group.Point{g2.Generator()}).IsIdentity())
		require.True(t, pair([]group.Point{g1.Generator()}, []group.Point{g2.NewPoint()}).IsIdentity())

		p, q := randomPoint(t, g1), randomPoint(t, g2)
		cancel := pair([]group.Point{p, g1.NewPoint().Negate(p)}, []group.Point{q, q})
		require.True(t, cancel.IsIdentity())
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := e.Pair([]group.Point{g1.Generator()}, nil)
		require.Error(t, err)
	})
}
