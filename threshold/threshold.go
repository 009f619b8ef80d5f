package threshold

import (
	"errors"
	"fmt"

	"github.com/f3rmion/gsel/elgamal"
	"github.com/f3rmion/gsel/group"
)

// Threshold holds the group and the t-of-n parameters.
type Threshold struct {
	group     group.Group
	threshold int // t - minimum shares needed to decrypt
	total     int // n - total participants
}

// KeyShare is one participant's share of a distributed ElGamal key.
type KeyShare struct {
	ID          int                 // participant identifier, 1..n
	Secret      group.Scalar        // secret key share s_i
	PublicShare group.Point         // s_i * G
	EncryptKey  *elgamal.EncryptKey // joint public key under the group generator
}

// New creates a Threshold instance for the given group and parameters.
// threshold is the minimum number of shares needed to decrypt (t).
// total is the total number of participants (n).
func New(g group.Group, threshold, total int) (*Threshold, error) {
	if threshold < 2 {
		return nil, errors.New("threshold must be at least 2")
	}
	if total < threshold {
		return nil, errors.New("total must be >= threshold")
	}

	return &Threshold{
		group:     g,
		threshold: threshold,
		total:     total,
	}, nil
}

// Group returns the underlying group.
func (th *Threshold) Group() group.Group { return th.group }

// Threshold returns t.
func (th *Threshold) Threshold() int { return th.threshold }

// Total returns n.
func (th *Threshold) Total() int { return th.total }

func (th *Threshold) checkID(id int) error {
	if id < 1 || id > th.total {
		return fmt.Errorf("participant ID %d out of range [1, %d]", id, th.total)
	}
	return nil
}

func (th *Threshold) scalarFromInt(n int) group.Scalar {
	return th.group.NewScalar().SetUint64(uint64(n))
}

func (th *Threshold) evalPolynomial(coeffs []group.Scalar, x group.Scalar) group.Scalar {
	result := th.group.NewScalar().Set(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = th.group.NewScalar().Mul(result, x)
		result = th.group.NewScalar().Add(result, coeffs[i])
	}
	return result
}

// lagrangeCoefficient returns λ_id = Π_{j≠id} j / (j - id), the weight of
// share id when interpolating at zero over ids.
func (th *Threshold) lagrangeCoefficient(id int, ids []int) (group.Scalar, error) {
	g := th.group
	xi := th.scalarFromInt(id)
	num := th.scalarFromInt(1)
	den := th.scalarFromInt(1)
	for _, j := range ids {
		if j == id {
			continue
		}
		xj := th.scalarFromInt(j)
		num = g.NewScalar().Mul(num, xj)
		den = g.NewScalar().Mul(den, g.NewScalar().Sub(xj, xi))
	}
	inv, err := g.NewScalar().Invert(den)
	if err != nil {
		return nil, fmt.Errorf("lagrange coefficient for %d: %w", id, err)
	}
	return g.NewScalar().Mul(num, inv), nil
}
