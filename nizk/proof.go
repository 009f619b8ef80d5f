package nizk

import (
	"fmt"
	"io"

	"github.com/f3rmion/gsel/group"
	"github.com/f3rmion/gsel/internal/matrix"
)

// Proof is a Groth–Sahai proof for Σ y_j*A_j + Σ b_i*x_i = target with
// m = len(b) hidden points and n = len(A) hidden scalars.
type Proof struct {
	c     matrix.Matrix[group.Point] // m×2 over G1, commits to X
	d     matrix.Matrix[group.Point] // n×2 over G2, commits to Y
	pi    matrix.Matrix[group.Point] // 2×2 over G2
	theta matrix.Matrix[group.Point] // 1×2 over G1
}

// Dims returns m (committed points) and n (committed scalars).
func (p *Proof) Dims() (m, n int) { return p.c.Rows(), p.d.Rows() }

// Equal reports whether p and other are identical proofs.
func (p *Proof) Equal(other *Proof) bool {
	return matrix.Equal(p.c, other.c) && matrix.Equal(p.d, other.d) &&
		matrix.Equal(p.pi, other.pi) && matrix.Equal(p.theta, other.theta)
}

func (p *Proof) wellFormed(m, n int) bool {
	return p.c.HasShape(m, 2) && p.d.HasShape(n, 2) &&
		p.pi.HasShape(2, 2) && p.theta.HasShape(1, 2)
}

type blinding struct {
	r matrix.Matrix[group.Scalar] // m×2
	s matrix.Matrix[group.Scalar] // n×1
	t matrix.Matrix[group.Scalar] // 1×2
}

func sampleBlinding(g group.Group, rng io.Reader, m, n int) (*blinding, error) {
	r, err := matrix.Random(g, rng, m, 2)
	if err != nil {
		return nil, err
	}
	s, err := matrix.Random(g, rng, n, 1)
	if err != nil {
		return nil, err
	}
	t, err := matrix.Random(g, rng, 1, 2)
	if err != nil {
		return nil, err
	}
	return &blinding{r: r, s: s, t: t}, nil
}

// proofTerms returns Pi = Rᵀ*lz2(b) - Tᵀ*v1 and Theta = Sᵀ*ι(A) + T*U.
func (crs *CRS) proofTerms(bl *blinding, a []group.Point, b []group.Scalar) (pi, theta matrix.Matrix[group.Point]) {
	g1, g2 := crs.e.G1(), crs.e.G2()
	pi = matrix.Sub(g2,
		matrix.Mul(g2, bl.r.T(), crs.lz2(b)),
		matrix.Mul(g2, bl.t.T(), crs.v1()))
	theta = matrix.Add(g1,
		matrix.Mul(g1, bl.s.T(), crs.iota(a)),
		matrix.Mul(g1, bl.t, crs.u))
	return pi, theta
}

func checkStatement(a []group.Point, y []group.Scalar, x []group.Point, b []group.Scalar) {
	if len(a) != len(y) {
		panic(fmt.Sprintf("nizk: %d public points A but %d scalar witnesses Y", len(a), len(y)))
	}
	if len(b) != len(x) {
		panic(fmt.Sprintf("nizk: %d public scalars b but %d point witnesses X", len(b), len(x)))
	}
}

// Prove proves knowledge of y and x with
//
//	Σ y[j]*a[j] + Σ b[i]*x[i] = target
//
// where target is implied by the witnesses and is not an input. It panics
// unless len(a) == len(y) and len(b) == len(x). Prove does not check that
// the witnesses satisfy the equation; a proof for a false statement simply
// fails to verify. The only error is a failing rng.
func Prove(rng io.Reader, crs *CRS, a []group.Point, y []group.Scalar, x []group.Point, b []group.Scalar) (*Proof, error) {
	checkStatement(a, y, x, b)
	bl, err := sampleBlinding(crs.e.G1(), rng, len(x), len(y))
	if err != nil {
		return nil, fmt.Errorf("nizk: prove: %w", err)
	}
	pi, theta := crs.proofTerms(bl, a, b)
	return &Proof{
		c:     crs.commitX(bl.r, x),
		d:     crs.commitY(bl.s, y),
		pi:    pi,
		theta: theta,
	}, nil
}

// Verify checks proof against the public inputs a, b and target:
//
//	ι(A)ᵀ*D + Cᵀ*lz2(b) == L(target) + Uᵀ*Pi + F(Theta, v1)
//
// entrywise in GT. It returns false for a proof whose shape does not match
// len(b) and len(a).
func Verify(crs *CRS, a []group.Point, b []group.Scalar, target group.Point, proof *Proof) bool {
	if proof == nil || !proof.wellFormed(len(b), len(a)) {
		return false
	}
	e := crs.e

	lhsA, err := matrix.PairMul(e, crs.iota(a).T(), proof.d)
	if err != nil {
		return false
	}
	lhsB, err := matrix.PairMul(e, proof.c.T(), crs.lz2(b))
	if err != nil {
		return false
	}

	lt, err := crs.liftTarget(target)
	if err != nil {
		return false
	}
	rhsPi, err := matrix.PairMul(e, crs.u.T(), proof.pi)
	if err != nil {
		return false
	}
	rhsTheta, err := matrix.Outer(e, proof.theta.Row(0), crs.v1().Row(0))
	if err != nil {
		return false
	}

	lhs := matrix.AddTargets(e, lhsA, lhsB)
	rhs := matrix.AddTargets(e, matrix.AddTargets(e, lt, rhsPi), rhsTheta)
	return matrix.Equal(lhs, rhs)
}

// liftTarget returns F((0, target), lz2(1)).
func (crs *CRS) liftTarget(target group.Point) (matrix.Matrix[group.Target], error) {
	return matrix.Outer(crs.e, []group.Point{crs.e.G1().NewPoint(), target}, crs.lzBasis())
}

// Randomize returns a fresh proof for the same statement that is
// unlinkable to p. a and b must be the public inputs p was made for; it
// panics if their lengths do not match the proof's shape.
func (p *Proof) Randomize(rng io.Reader, crs *CRS, a []group.Point, b []group.Scalar) (*Proof, error) {
	m, n := p.Dims()
	if len(b) != m || len(a) != n {
		panic(fmt.Sprintf("nizk: randomizing a %dx%d proof with %d points A and %d scalars b", m, n, len(a), len(b)))
	}
	bl, err := sampleBlinding(crs.e.G1(), rng, m, n)
	if err != nil {
		return nil, fmt.Errorf("nizk: randomize: %w", err)
	}
	g1, g2 := crs.e.G1(), crs.e.G2()
	dPi, dTheta := crs.proofTerms(bl, a, b)
	return &Proof{
		c:     matrix.Add(g1, p.c, matrix.Mul(g1, bl.r, crs.u)),
		d:     matrix.Add(g2, p.d, matrix.Mul(g2, bl.s, crs.v1())),
		pi:    matrix.Add(g2, p.pi, dPi),
		theta: matrix.Add(g1, p.theta, dTheta),
	}, nil
}
