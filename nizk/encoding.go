package nizk

import (
	"errors"
	"fmt"
	"math"

	"github.com/f3rmion/gsel/group"
	"github.com/f3rmion/gsel/internal/matrix"
	"github.com/f3rmion/gsel/internal/wire"
)

// ErrDecode is returned, wrapped, for every malformed CRS or proof
// encoding.
var ErrDecode = errors.New("nizk: decode error")

// CRSLen returns the encoded size of a CRS over e.
func CRSLen(e group.Pairing) int {
	return 5*e.G1().PointLen() + 5*e.G2().PointLen()
}

// MarshalBinary encodes crs as p1 || p2 || U || V with U and V in
// row-major order.
func (crs *CRS) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, CRSLen(crs.e))
	out = wire.AppendPoints(out, crs.p1, crs.p2)
	out = wire.AppendPoints(out, crs.u.Entries()...)
	out = wire.AppendPoints(out, crs.v.Entries()...)
	return out, nil
}

// DecodeCRS decodes a CRS produced by MarshalBinary.
func DecodeCRS(e group.Pairing, data []byte) (*CRS, error) {
	if len(data) != CRSLen(e) {
		return nil, fmt.Errorf("%w: crs must be %d bytes, got %d", ErrDecode, CRSLen(e), len(data))
	}
	g1, g2 := e.G1(), e.G2()
	r := wire.NewReader(data)
	p1, err := r.Point(g1)
	if err != nil {
		return nil, fmt.Errorf("%w: crs p1: %w", ErrDecode, err)
	}
	p2, err := r.Point(g2)
	if err != nil {
		return nil, fmt.Errorf("%w: crs p2: %w", ErrDecode, err)
	}
	u, err := readMatrix(r, g1, 2, 2)
	if err != nil {
		return nil, fmt.Errorf("%w: crs U: %w", ErrDecode, err)
	}
	v, err := readMatrix(r, g2, 2, 2)
	if err != nil {
		return nil, fmt.Errorf("%w: crs V: %w", ErrDecode, err)
	}
	return &CRS{e: e, p1: p1, p2: p2, u: u, v: v}, nil
}

// proofLen returns the encoded size of an m×n proof, or -1 if it does not
// fit in an int.
func proofLen(e group.Pairing, m, n uint32) int {
	l1, l2 := int64(e.G1().PointLen()), int64(e.G2().PointLen())
	total := 8 + 2*int64(m)*l1 + 2*int64(n)*l2 + 4*l2 + 2*l1
	if total > math.MaxInt32 {
		return -1
	}
	return int(total)
}

// MarshalBinary encodes p as uint32(m) || uint32(n) || C || D || Pi || Theta,
// every matrix in row-major order and dimensions big-endian.
func (p *Proof) MarshalBinary() ([]byte, error) {
	m, n := p.Dims()
	if uint64(m) > math.MaxUint32 || uint64(n) > math.MaxUint32 {
		return nil, fmt.Errorf("nizk: proof dimensions %dx%d too large to encode", m, n)
	}
	out := wire.AppendUint32(nil, uint32(m))
	out = wire.AppendUint32(out, uint32(n))
	for _, mat := range []matrix.Matrix[group.Point]{p.c, p.d, p.pi, p.theta} {
		out = wire.AppendPoints(out, mat.Entries()...)
	}
	return out, nil
}

// DecodeProof decodes a proof produced by MarshalBinary. The declared
// dimensions must match the input length exactly.
func DecodeProof(e group.Pairing, data []byte) (*Proof, error) {
	r := wire.NewReader(data)
	m, err := r.Uint32()
	if err != nil {
		return nil, fmt.Errorf("%w: proof header: %w", ErrDecode, err)
	}
	n, err := r.Uint32()
	if err != nil {
		return nil, fmt.Errorf("%w: proof header: %w", ErrDecode, err)
	}
	if want := proofLen(e, m, n); want != len(data) {
		return nil, fmt.Errorf("%w: %dx%d proof must be %d bytes, got %d", ErrDecode, m, n, want, len(data))
	}

	g1, g2 := e.G1(), e.G2()
	p := new(Proof)
	if p.c, err = readMatrix(r, g1, int(m), 2); err != nil {
		return nil, fmt.Errorf("%w: proof C: %w", ErrDecode, err)
	}
	if p.d, err = readMatrix(r, g2, int(n), 2); err != nil {
		return nil, fmt.Errorf("%w: proof D: %w", ErrDecode, err)
	}
	if p.pi, err = readMatrix(r, g2, 2, 2); err != nil {
		return nil, fmt.Errorf("%w: proof Pi: %w", ErrDecode, err)
	}
	if p.theta, err = readMatrix(r, g1, 1, 2); err != nil {
		return nil, fmt.Errorf("%w: proof Theta: %w", ErrDecode, err)
	}
	if err := r.Done(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return p, nil
}

func readMatrix(r *wire.Reader, g group.Group, rows, cols int) (matrix.Matrix[group.Point], error) {
	pts, err := r.Points(g, rows*cols)
	if err != nil {
		return matrix.Matrix[group.Point]{}, err
	}
	return matrix.New(rows, cols, func(i, j int) group.Point { return pts[i*cols+j] }), nil
}
