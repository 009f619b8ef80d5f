package elgamal

import (
	"errors"
	"fmt"

	"github.com/f3rmion/gsel/group"
	"github.com/f3rmion/gsel/internal/wire"
)

// ErrDecode is returned, wrapped, for every malformed encoding.
var ErrDecode = errors.New("elgamal: decode error")

// MarshalBinary encodes ek as generator || Y.
func (ek *EncryptKey) MarshalBinary() ([]byte, error) {
	return wire.AppendPoints(nil, ek.generator, ek.y), nil
}

// MarshalBinary encodes dk as secret || generator || Y.
func (dk *DecryptKey) MarshalBinary() ([]byte, error) {
	out := append([]byte{}, dk.secret.Bytes()...)
	return wire.AppendPoints(out, dk.ek.generator, dk.ek.y), nil
}

// MarshalBinary encodes ct as A || B.
func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	return wire.AppendPoints(nil, ct.A, ct.B), nil
}

// EncryptKeyLen returns the encoded size of an EncryptKey over g.
func EncryptKeyLen(g group.Group) int { return 2 * g.PointLen() }

// DecryptKeyLen returns the encoded size of a DecryptKey over g.
func DecryptKeyLen(g group.Group) int { return g.ScalarLen() + 2*g.PointLen() }

// CiphertextLen returns the encoded size of a Ciphertext over g.
func CiphertextLen(g group.Group) int { return 2 * g.PointLen() }

func decodeError(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDecode, what, err)
}

func checkLen(what string, data []byte, want int) error {
	if len(data) != want {
		return fmt.Errorf("%w: %s must be %d bytes, got %d", ErrDecode, what, want, len(data))
	}
	return nil
}

// DecodeEncryptKey decodes an EncryptKey produced by MarshalBinary.
func DecodeEncryptKey(g group.Group, data []byte) (*EncryptKey, error) {
	if err := checkLen("encrypt key", data, EncryptKeyLen(g)); err != nil {
		return nil, err
	}
	pts, err := wire.NewReader(data).Points(g, 2)
	if err != nil {
		return nil, decodeError("encrypt key", err)
	}
	return &EncryptKey{group: g, generator: pts[0], y: pts[1]}, nil
}

// DecodeDecryptKey decodes a DecryptKey produced by MarshalBinary. The
// embedded public point must equal secret*generator.
func DecodeDecryptKey(g group.Group, data []byte) (*DecryptKey, error) {
	if err := checkLen("decrypt key", data, DecryptKeyLen(g)); err != nil {
		return nil, err
	}
	r := wire.NewReader(data)
	x, err := r.Scalar(g)
	if err != nil {
		return nil, decodeError("decrypt key", err)
	}
	pts, err := r.Points(g, 2)
	if err != nil {
		return nil, decodeError("decrypt key", err)
	}
	if !g.NewPoint().ScalarMult(x, pts[0]).Equal(pts[1]) {
		return nil, fmt.Errorf("%w: decrypt key: public point does not match secret", ErrDecode)
	}
	return &DecryptKey{
		secret: x,
		ek:     &EncryptKey{group: g, generator: pts[0], y: pts[1]},
	}, nil
}

// DecodeCiphertext decodes a Ciphertext produced by MarshalBinary.
func DecodeCiphertext(g group.Group, data []byte) (*Ciphertext, error) {
	if err := checkLen("ciphertext", data, CiphertextLen(g)); err != nil {
		return nil, err
	}
	pts, err := wire.NewReader(data).Points(g, 2)
	if err != nil {
		return nil, decodeError("ciphertext", err)
	}
	return &Ciphertext{A: pts[0], B: pts[1]}, nil
}
