package matrix

import (
	"fmt"
	"io"

	"github.com/f3rmion/gsel/group"
)

// Random returns a rows×cols matrix of independent random scalars from g.
// Entries are sampled in row-major order.
func Random(g group.Group, r io.Reader, rows, cols int) (Matrix[group.Scalar], error) {
	data := make([]group.Scalar, rows*cols)
	for k := range data {
		s, err := g.RandomScalar(r)
		if err != nil {
			return Matrix[group.Scalar]{}, fmt.Errorf("matrix: sampling scalar: %w", err)
		}
		data[k] = s
	}
	return Matrix[group.Scalar]{rows: rows, cols: cols, data: data}, nil
}

// Zero returns a rows×cols matrix of identity points of g.
func Zero(g group.Group, rows, cols int) Matrix[group.Point] {
	return New(rows, cols, func(int, int) group.Point { return g.NewPoint() })
}

// Add returns a + b entrywise.
func Add(g group.Group, a, b Matrix[group.Point]) Matrix[group.Point] {
	mustSameShape("add", a, b)
	return New(a.rows, a.cols, func(i, j int) group.Point {
		return g.NewPoint().Add(a.At(i, j), b.At(i, j))
	})
}

// Sub returns a - b entrywise.
func Sub(g group.Group, a, b Matrix[group.Point]) Matrix[group.Point] {
	mustSameShape("sub", a, b)
	return New(a.rows, a.cols, func(i, j int) group.Point {
		return g.NewPoint().Sub(a.At(i, j), b.At(i, j))
	})
}

// Mul returns the product of a scalar matrix s (m×k) and a point matrix
// p (k×n), an m×n point matrix.
func Mul(g group.Group, s Matrix[group.Scalar], p Matrix[group.Point]) Matrix[group.Point] {
	mustChain("mul", s, p)
	return New(s.rows, p.cols, func(i, j int) group.Point {
		acc := g.NewPoint()
		for k := 0; k < s.cols; k++ {
			term := g.NewPoint().ScalarMult(s.At(i, k), p.At(k, j))
			acc = g.NewPoint().Add(acc, term)
		}
		return acc
	})
}

// ScaleRows multiplies every entry of row i of p by z[i].
func ScaleRows(g group.Group, z []group.Scalar, p Matrix[group.Point]) Matrix[group.Point] {
	if len(z) != p.rows {
		panic(fmt.Sprintf("matrix: scale %d rows by %d scalars", p.rows, len(z)))
	}
	return New(p.rows, p.cols, func(i, j int) group.Point {
		return g.NewPoint().ScalarMult(z[i], p.At(i, j))
	})
}

// PairMul returns the pairing product of a (m×k over G1) and b (k×n over
// G2): entry (i, j) is the sum over l of e(a[i][l], b[l][j]), computed as
// one multi-pairing.
func PairMul(e group.Pairing, a, b Matrix[group.Point]) (Matrix[group.Target], error) {
	mustChain("pairing product", a, b)
	data := make([]group.Target, a.rows*b.cols)
	for i := 0; i < a.rows; i++ {
		row := a.Row(i)
		for j := 0; j < b.cols; j++ {
			t, err := e.Pair(row, b.Col(j))
			if err != nil {
				return Matrix[group.Target]{}, err
			}
			data[i*b.cols+j] = t
		}
	}
	return Matrix[group.Target]{rows: a.rows, cols: b.cols, data: data}, nil
}

// Outer returns the matrix with entries e(x[i], y[j]).
func Outer(e group.Pairing, x, y []group.Point) (Matrix[group.Target], error) {
	data := make([]group.Target, len(x)*len(y))
	for i := range x {
		for j := range y {
			t, err := e.Pair(x[i:i+1], y[j:j+1])
			if err != nil {
				return Matrix[group.Target]{}, err
			}
			data[i*len(y)+j] = t
		}
	}
	return Matrix[group.Target]{rows: len(x), cols: len(y), data: data}, nil
}

// AddTargets returns a + b entrywise in GT.
func AddTargets(e group.Pairing, a, b Matrix[group.Target]) Matrix[group.Target] {
	mustSameShape("add", a, b)
	return New(a.rows, a.cols, func(i, j int) group.Target {
		return e.NewTarget().Add(a.At(i, j), b.At(i, j))
	})
}
