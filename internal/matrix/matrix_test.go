package matrix

import (
	"crypto/rand"
	"testing"

	"github.com/f3rmion/gsel/bls12381"
	"github.com/f3rmion/gsel/group"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	m := New(2, 3, func(i, j int) int { return 10*i + j })
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 12, m.At(1, 2))
	require.Equal(t, []int{10, 11, 12}, m.Row(1))
	require.Equal(t, []int{1, 11}, m.Col(1))

	tr := m.T()
	require.True(t, tr.HasShape(3, 2))
	require.Equal(t, 12, tr.At(2, 1))
	require.Equal(t, []int{0, 10, 1, 11, 2, 12}, tr.Entries())

	t.Run("FromRows", func(t *testing.T) {
		r := FromRows([]int{1, 2}, []int{3, 4})
		require.Equal(t, []int{1, 2, 3, 4}, r.Entries())
		require.Panics(t, func() { FromRows([]int{1, 2}, []int{3}) })
	})

	t.Run("Column", func(t *testing.T) {
		c := Column([]int{7, 8, 9})
		require.True(t, c.HasShape(3, 1))
		require.Equal(t, 8, c.At(1, 0))
	})

	t.Run("OutOfRange", func(t *testing.T) {
		require.Panics(t, func() { m.At(2, 0) })
		require.Panics(t, func() { m.At(0, -1) })
	})

	t.Run("Empty", func(t *testing.T) {
		e := New(0, 2, func(int, int) int { return 0 })
		require.True(t, e.T().HasShape(2, 0))
		require.Empty(t, e.T().Row(1))
	})
}

func TestPointAlgebra(t *testing.T) {
	g := bls12381.New().G1()
	gen := g.Generator()

	scalar := func(t *testing.T) group.Scalar {
		s, err := g.RandomScalar(rand.Reader)
		require.NoError(t, err)
		return s
	}
	mul := func(s group.Scalar) group.Point { return g.NewPoint().ScalarMult(s, gen) }

	a, b, c, d := scalar(t), scalar(t), scalar(t), scalar(t)
	p := FromRows([]group.Point{mul(a), mul(b)}, []group.Point{mul(c), mul(d)})

	t.Run("AddSub", func(t *testing.T) {
		sum := Add(g, p, p)
		back := Sub(g, sum, p)
		require.True(t, Equal(back, p))
		require.False(t, Equal(sum, p))
		require.True(t, Equal(Sub(g, p, p), Zero(g, 2, 2)))
	})

	t.Run("Mul", func(t *testing.T) {
		x, y := scalar(t), scalar(t)
		s := FromRows([]group.Scalar{x, y})
		got := Mul(g, s, p)
		require.True(t, got.HasShape(1, 2))

		// x*a + y*c
		want := g.NewScalar().Add(g.NewScalar().Mul(x, a), g.NewScalar().Mul(y, c))
		require.True(t, got.At(0, 0).Equal(mul(want)))
		want = g.NewScalar().Add(g.NewScalar().Mul(x, b), g.NewScalar().Mul(y, d))
		require.True(t, got.At(0, 1).Equal(mul(want)))
	})

	t.Run("ScaleRows", func(t *testing.T) {
		x, y := scalar(t), scalar(t)
		got := ScaleRows(g, []group.Scalar{x, y}, p)
		require.True(t, got.At(1, 0).Equal(mul(g.NewScalar().Mul(y, c))))
		require.True(t, got.At(0, 1).Equal(mul(g.NewScalar().Mul(x, b))))
		require.Panics(t, func() { ScaleRows(g, []group.Scalar{x}, p) })
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		require.Panics(t, func() { Mul(g, FromRows([]group.Scalar{a, b, c}), p) })
		require.Panics(t, func() { Add(g, p, Zero(g, 2, 1)) })
		require.False(t, Equal(p, Zero(g, 1, 2)))
	})

	t.Run("EmptyProduct", func(t *testing.T) {
		s := New(2, 0, func(int, int) group.Scalar { return nil })
		got := Mul(g, s, Zero(g, 0, 2))
		require.True(t, Equal(got, Zero(g, 2, 2)))
	})
}

func TestPairing(t *testing.T) {
	e := bls12381.New()
	g1, g2 := e.G1(), e.G2()

	x, err := g1.RandomScalar(rand.Reader)
	require.NoError(t, err)
	y, err := g1.RandomScalar(rand.Reader)
	require.NoError(t, err)

	p := g1.NewPoint().ScalarMult(x, g1.Generator())
	q := g2.NewPoint().ScalarMult(y, g2.Generator())

	t.Run("Outer", func(t *testing.T) {
		f, err := Outer(e, []group.Point{p, g1.NewPoint()}, []group.Point{q, g2.Generator()})
		require.NoError(t, err)
		require.True(t, f.HasShape(2, 2))
		require.True(t, f.At(1, 0).IsIdentity())
		require.True(t, f.At(1, 1).IsIdentity())
		require.False(t, f.At(0, 0).IsIdentity())

		// e(x*G1, y*G2) == e(xy*G1, G2)
		xy := g1.NewPoint().ScalarMult(g1.NewScalar().Mul(x, y), g1.Generator())
		want, err := e.Pair([]group.Point{xy}, []group.Point{g2.Generator()})
		require.NoError(t, err)
		require.True(t, f.At(0, 0).Equal(want))
	})

	t.Run("PairMul", func(t *testing.T) {
		a := FromRows([]group.Point{p, p})
		b := FromRows([]group.Point{q}, []group.Point{g2.NewPoint().Negate(q)})
		prod, err := PairMul(e, a, b)
		require.NoError(t, err)
		require.True(t, prod.HasShape(1, 1))
		require.True(t, prod.At(0, 0).IsIdentity())
	})

	t.Run("AddTargets", func(t *testing.T) {
		f, err := Outer(e, []group.Point{p}, []group.Point{q})
		require.NoError(t, err)
		neg, err := Outer(e, []group.Point{g1.NewPoint().Negate(p)}, []group.Point{q})
		require.NoError(t, err)
		require.True(t, AddTargets(e, f, neg).At(0, 0).IsIdentity())
		require.True(t, Equal(AddTargets(e, f, New(1, 1, func(int, int) group.Target { return e.NewTarget() })), f))
	})
}
