package session

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/f3rmion/gsel/elgamal"
	"github.com/f3rmion/gsel/group"
	"github.com/f3rmion/gsel/threshold"
)

// DecryptionSession collects decryption shares for one ciphertext on the
// coordinator side. Every share is verified on arrival; the plaintext is
// available once enough valid shares have been added.
//
// A DecryptionSession is safe for concurrent use.
type DecryptionSession struct {
	mu           sync.Mutex
	th           *threshold.Threshold
	ct           *elgamal.Ciphertext
	publicShares map[int]group.Point
	shares       map[int]*threshold.DecryptionShare
	order        []int
}

// NewDecryptionSession starts collecting shares for ct. publicShares must
// hold the public key share of every participant that may contribute.
func NewDecryptionSession(th *threshold.Threshold, ct *elgamal.Ciphertext, publicShares map[int]group.Point) *DecryptionSession {
	return &DecryptionSession{
		th:           th,
		ct:           ct,
		publicShares: publicShares,
		shares:       make(map[int]*threshold.DecryptionShare),
	}
}

// Add verifies share and records it. A second share from the same
// participant is rejected.
func (s *DecryptionSession) Add(share *threshold.DecryptionShare) error {
	if share == nil {
		return errors.New("nil decryption share")
	}
	pk, ok := s.publicShares[share.ID]
	if !ok {
		return fmt.Errorf("no public share for participant %d", share.ID)
	}
	if !s.th.VerifyShare(s.ct, share, pk) {
		return fmt.Errorf("invalid decryption share from participant %d", share.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.shares[share.ID]; dup {
		return fmt.Errorf("duplicate decryption share from participant %d", share.ID)
	}
	s.shares[share.ID] = share
	s.order = append(s.order, share.ID)
	return nil
}

// Ready reports whether enough shares have been collected.
func (s *DecryptionSession) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shares) >= s.th.Threshold()
}

// Plaintext combines the collected shares.
func (s *DecryptionSession) Plaintext() (group.Point, error) {
	s.mu.Lock()
	shares := make([]*threshold.DecryptionShare, 0, len(s.order))
	for _, id := range s.order {
		shares = append(shares, s.shares[id])
	}
	s.mu.Unlock()
	return s.th.Combine(s.ct, shares)
}

// Combine verifies every share against publicShares and recovers the
// plaintext of ct.
//
// This is typically called by a coordinator after collecting shares from
// the participating decryptors.
func Combine(
	th *threshold.Threshold,
	ct *elgamal.Ciphertext,
	shares []*threshold.DecryptionShare,
	publicShares map[int]group.Point,
) (group.Point, error) {
	if len(shares) == 0 {
		return nil, errors.New("no decryption shares provided")
	}
	sess := NewDecryptionSession(th, ct, publicShares)
	for _, share := range shares {
		if err := sess.Add(share); err != nil {
			return nil, err
		}
	}
	return sess.Plaintext()
}

// QuickDecrypt performs a complete threshold decryption when all key
// shares are local.
//
// This is useful for testing or single-machine threshold setups where all
// participants are in the same process. For distributed decryption, use
// [Participant.NewDecryptionShare] and [Combine] instead.
//
// keyShares must contain at least threshold key shares.
func QuickDecrypt(
	th *threshold.Threshold,
	rng io.Reader,
	keyShares []*threshold.KeyShare,
	ct *elgamal.Ciphertext,
) (group.Point, error) {
	if len(keyShares) == 0 {
		return nil, errors.New("no key shares provided")
	}

	shares := make([]*threshold.DecryptionShare, len(keyShares))
	publicShares := make(map[int]group.Point, len(keyShares))
	for i, ks := range keyShares {
		share, err := th.PartialDecrypt(rng, ks, ct)
		if err != nil {
			return nil, err
		}
		shares[i] = share
		publicShares[ks.ID] = ks.PublicShare
	}

	return Combine(th, ct, shares, publicShares)
}
