// Package wire reads the fixed-layout byte encodings used by elgamal and
// nizk: concatenations of fixed-size scalars and points, optionally
// prefixed by big-endian uint32 dimensions.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/f3rmion/gsel/group"
)

var (
	// ErrShort is returned when the input ends before a field is complete.
	ErrShort = errors.New("wire: input truncated")
	// ErrTrailing is returned by Done when unread bytes remain.
	ErrTrailing = errors.New("wire: trailing bytes")
)

// Reader consumes an encoding front to back.
type Reader struct {
	data []byte
	off  int
}

// NewReader returns a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

func (r *Reader) next(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, ErrShort
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

// Uint32 reads a big-endian uint32.
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Scalar reads one canonical scalar of g.
func (r *Reader) Scalar(g group.Group) (group.Scalar, error) {
	b, err := r.next(g.ScalarLen())
	if err != nil {
		return nil, err
	}
	s, err := g.NewScalar().SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("wire: scalar at offset %d: %w", r.off-len(b), err)
	}
	return s, nil
}

// Point reads one compressed point of g.
func (r *Reader) Point(g group.Group) (group.Point, error) {
	b, err := r.next(g.PointLen())
	if err != nil {
		return nil, err
	}
	p, err := g.NewPoint().SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("wire: point at offset %d: %w", r.off-len(b), err)
	}
	return p, nil
}

// Points reads n consecutive points of g.
func (r *Reader) Points(g group.Group, n int) ([]group.Point, error) {
	out := make([]group.Point, n)
	for i := range out {
		p, err := r.Point(g)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// Done returns ErrTrailing if any input is left unread.
func (r *Reader) Done() error {
	if r.Remaining() != 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailing, r.Remaining())
	}
	return nil
}

// AppendUint32 appends v to b in big-endian order.
func AppendUint32(b []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(b, v)
}

// AppendPoints appends the encoding of every point in ps to b.
func AppendPoints(b []byte, ps ...group.Point) []byte {
	for _, p := range ps {
		b = append(b, p.Bytes()...)
	}
	return b
}
