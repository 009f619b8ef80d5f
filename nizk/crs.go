package nizk

import (
	"fmt"
	"io"

	"github.com/f3rmion/gsel/group"
	"github.com/f3rmion/gsel/internal/matrix"
)

// CRS is a Groth–Sahai common reference string: base points p1 ∈ G1 and
// p2 ∈ G2 and the commitment keys U ∈ G1^{2×2}, V ∈ G2^{2×2}.
//
// The scalars used to derive U and V are discarded by [NewCRS]. A CRS is
// immutable and safe for concurrent use.
type CRS struct {
	e  group.Pairing
	p1 group.Point
	p2 group.Point
	u  matrix.Matrix[group.Point]
	v  matrix.Matrix[group.Point]
}

// NewCRS samples p1, p2 and a fresh trapdoor from rng and returns the
// resulting reference string.
func NewCRS(e group.Pairing, rng io.Reader) (*CRS, error) {
	p1, err := e.G1().RandomPoint(rng)
	if err != nil {
		return nil, fmt.Errorf("nizk: sampling p1: %w", err)
	}
	p2, err := e.G2().RandomPoint(rng)
	if err != nil {
		return nil, fmt.Errorf("nizk: sampling p2: %w", err)
	}
	u, v, err := commitmentKeys(e, rng, p1, p2)
	if err != nil {
		return nil, err
	}
	return &CRS{e: e, p1: p1, p2: p2, u: u, v: v}, nil
}

// commitmentKeys samples a1, t1, a2, t2 and returns
//
//	U = [[p1, t1*p1], [a1*p1, a1*t1*p1]]
//	V = [[p2, t2*p2], [a2*p2, a2*t2*p2]]
//
// The four scalars stay local to this function.
func commitmentKeys(e group.Pairing, rng io.Reader, p1, p2 group.Point) (u, v matrix.Matrix[group.Point], err error) {
	key := func(g group.Group, p group.Point) (matrix.Matrix[group.Point], error) {
		a, err := g.RandomScalar(rng)
		if err != nil {
			return matrix.Matrix[group.Point]{}, fmt.Errorf("nizk: sampling trapdoor: %w", err)
		}
		t, err := g.RandomScalar(rng)
		if err != nil {
			return matrix.Matrix[group.Point]{}, fmt.Errorf("nizk: sampling trapdoor: %w", err)
		}
		ap := g.NewPoint().ScalarMult(a, p)
		return matrix.FromRows(
			[]group.Point{g.NewPoint().Set(p), g.NewPoint().ScalarMult(t, p)},
			[]group.Point{ap, g.NewPoint().ScalarMult(t, ap)},
		), nil
	}
	if u, err = key(e.G1(), p1); err != nil {
		return u, v, err
	}
	v, err = key(e.G2(), p2)
	return u, v, err
}

// Pairing returns the bilinear group the CRS is defined over.
func (crs *CRS) Pairing() group.Pairing { return crs.e }

// P1 returns the G1 base point.
func (crs *CRS) P1() group.Point { return crs.e.G1().NewPoint().Set(crs.p1) }

// P2 returns the G2 base point.
func (crs *CRS) P2() group.Point { return crs.e.G2().NewPoint().Set(crs.p2) }

// Equal reports whether crs and other hold the same elements.
func (crs *CRS) Equal(other *CRS) bool {
	return crs.p1.Equal(other.p1) && crs.p2.Equal(other.p2) &&
		matrix.Equal(crs.u, other.u) && matrix.Equal(crs.v, other.v)
}

// u1, u2, v1 and v2 are the columns of U and V. v1 is returned as a 1×2
// row since it only ever multiplies S and T.
func (crs *CRS) u1() []group.Point { return crs.u.Col(0) }
func (crs *CRS) u2() []group.Point { return crs.u.Col(1) }
func (crs *CRS) v2() []group.Point { return crs.v.Col(1) }

func (crs *CRS) v1() matrix.Matrix[group.Point] {
	return matrix.FromRows(crs.v.Col(0))
}

// lzBasis is v2 + (0, p2) = (V01, V11 + p2), the G2 basis that scalar
// witnesses and the public coefficients b are lifted onto.
func (crs *CRS) lzBasis() []group.Point {
	v2 := crs.v2()
	return []group.Point{
		v2[0],
		crs.e.G2().NewPoint().Add(v2[1], crs.p2),
	}
}

// lz2 lifts each scalar z_i to the row z_i*(V01, V11 + p2).
func (crs *CRS) lz2(z []group.Scalar) matrix.Matrix[group.Point] {
	basis := crs.lzBasis()
	rows := matrix.New(len(z), 2, func(_, j int) group.Point { return basis[j] })
	return matrix.ScaleRows(crs.e.G2(), z, rows)
}

// iota lifts each G1 point x_i to the row (0, x_i).
func (crs *CRS) iota(x []group.Point) matrix.Matrix[group.Point] {
	g1 := crs.e.G1()
	return matrix.New(len(x), 2, func(i, j int) group.Point {
		if j == 0 {
			return g1.NewPoint()
		}
		return x[i]
	})
}

// commitX returns the G1 commitment ι(X) + R*U.
func (crs *CRS) commitX(r matrix.Matrix[group.Scalar], x []group.Point) matrix.Matrix[group.Point] {
	g1 := crs.e.G1()
	return matrix.Add(g1, crs.iota(x), matrix.Mul(g1, r, crs.u))
}

// commitY returns the G2 commitment lz2(Y) + S*v1.
func (crs *CRS) commitY(s matrix.Matrix[group.Scalar], y []group.Scalar) matrix.Matrix[group.Point] {
	g2 := crs.e.G2()
	return matrix.Add(g2, crs.lz2(y), matrix.Mul(g2, s, crs.v1()))
}
