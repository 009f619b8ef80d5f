package threshold

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/gsel/elgamal"
	"github.com/f3rmion/gsel/group"
)

const dleqTag = "dleq"

// DLEQProof is a Chaum–Pedersen proof that log_G(PK) == log_A(D).
type DLEQProof struct {
	T1 group.Point  // w * G
	T2 group.Point  // w * A
	S  group.Scalar // w + c * s_i
}

// DecryptionShare is one participant's contribution D = s_i * A to the
// decryption of a ciphertext (A, B), with a proof that it used the secret
// behind its public share.
type DecryptionShare struct {
	ID    int
	D     group.Point
	Proof *DLEQProof
}

func (th *Threshold) dleqChallenge(id int, publicShare group.Point, ct *elgamal.Ciphertext, d, t1, t2 group.Point) (group.Scalar, error) {
	tr := newTranscript(dleqTag)
	tr.append("id", th.scalarFromInt(id).Bytes())
	tr.appendPoint("g", th.group.Generator())
	tr.appendPoint("pk", publicShare)
	tr.appendPoint("a", ct.A)
	tr.appendPoint("b", ct.B)
	tr.appendPoint("d", d)
	tr.appendPoint("t1", t1)
	tr.appendPoint("t2", t2)
	return tr.challenge(th.group)
}

// PartialDecrypt computes share's decryption share of ct.
func (th *Threshold) PartialDecrypt(r io.Reader, share *KeyShare, ct *elgamal.Ciphertext) (*DecryptionShare, error) {
	g := th.group
	w, err := g.RandomScalar(r)
	if err != nil {
		return nil, err
	}
	if w.IsZero() {
		return nil, errors.New("zero proof nonce")
	}

	d := g.NewPoint().ScalarMult(share.Secret, ct.A)
	t1 := g.NewPoint().ScalarMult(w, g.Generator())
	t2 := g.NewPoint().ScalarMult(w, ct.A)
	c, err := th.dleqChallenge(share.ID, share.PublicShare, ct, d, t1, t2)
	if err != nil {
		return nil, err
	}

	return &DecryptionShare{
		ID: share.ID,
		D:  d,
		Proof: &DLEQProof{
			T1: t1,
			T2: t2,
			S:  g.NewScalar().Add(w, g.NewScalar().Mul(c, share.Secret)),
		},
	}, nil
}

// VerifyShare checks ds against ct and the sender's public share.
func (th *Threshold) VerifyShare(ct *elgamal.Ciphertext, ds *DecryptionShare, publicShare group.Point) bool {
	if ds == nil || ds.Proof == nil || th.checkID(ds.ID) != nil {
		return false
	}
	g := th.group
	p := ds.Proof
	c, err := th.dleqChallenge(ds.ID, publicShare, ct, ds.D, p.T1, p.T2)
	if err != nil {
		return false
	}

	// s*G == T1 + c*PK
	lhs := g.NewPoint().ScalarMult(p.S, g.Generator())
	rhs := g.NewPoint().Add(p.T1, g.NewPoint().ScalarMult(c, publicShare))
	if !lhs.Equal(rhs) {
		return false
	}

	// s*A == T2 + c*D
	lhs = g.NewPoint().ScalarMult(p.S, ct.A)
	rhs = g.NewPoint().Add(p.T2, g.NewPoint().ScalarMult(c, ds.D))
	return lhs.Equal(rhs)
}

// Combine recovers the plaintext B - Σ λ_i * D_i from at least t shares.
// Shares are not verified here; see [Threshold.VerifyShare].
func (th *Threshold) Combine(ct *elgamal.Ciphertext, shares []*DecryptionShare) (group.Point, error) {
	if len(shares) < th.threshold {
		return nil, fmt.Errorf("need at least %d shares, got %d", th.threshold, len(shares))
	}
	ids := make([]int, len(shares))
	seen := make(map[int]bool, len(shares))
	for i, s := range shares {
		if err := th.checkID(s.ID); err != nil {
			return nil, err
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("duplicate share from participant %d", s.ID)
		}
		seen[s.ID] = true
		ids[i] = s.ID
	}

	g := th.group
	sum := g.NewPoint()
	for _, s := range shares {
		lambda, err := th.lagrangeCoefficient(s.ID, ids)
		if err != nil {
			return nil, err
		}
		sum = g.NewPoint().Add(sum, g.NewPoint().ScalarMult(lambda, s.D))
	}
	return g.NewPoint().Sub(ct.B, sum), nil
}
