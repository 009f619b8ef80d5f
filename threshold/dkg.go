package threshold

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/gsel/elgamal"
	"github.com/f3rmion/gsel/group"
)

// Round1Data is broadcast by each participant in round 1.
type Round1Data struct {
	ID          int           // participant identifier
	Commitments []group.Point // commitments to polynomial coefficients
}

// Round1PrivateData is sent privately to each participant.
type Round1PrivateData struct {
	FromID int          // sender's ID
	ToID   int          // recipient's ID
	Share  group.Scalar // polynomial evaluation for recipient
}

// Participant holds state during DKG.
type Participant struct {
	id             int
	coefficients   []group.Scalar       // our secret polynomial
	commitments    []group.Point        // public commitments
	receivedShares map[int]group.Scalar // shares from others
}

// ID returns the participant's identifier.
func (p *Participant) ID() int { return p.id }

// NewParticipant creates a participant for DKG.
func (th *Threshold) NewParticipant(r io.Reader, id int) (*Participant, error) {
	if err := th.checkID(id); err != nil {
		return nil, err
	}

	// Random polynomial of degree t-1
	coeffs := make([]group.Scalar, th.threshold)
	for i := 0; i < th.threshold; i++ {
		c, err := th.group.RandomScalar(r)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}

	// C_i = coeffs[i] * G
	commits := make([]group.Point, th.threshold)
	for i, c := range coeffs {
		commits[i] = th.group.NewPoint().ScalarMult(c, th.group.Generator())
	}

	return &Participant{
		id:             id,
		coefficients:   coeffs,
		commitments:    commits,
		receivedShares: make(map[int]group.Scalar),
	}, nil
}

// Round1Broadcast returns data to broadcast to all participants.
func (p *Participant) Round1Broadcast() *Round1Data {
	return &Round1Data{
		ID:          p.id,
		Commitments: p.commitments,
	}
}

// Round1PrivateSend returns the share to send privately to recipient.
func (th *Threshold) Round1PrivateSend(p *Participant, recipientID int) *Round1PrivateData {
	share := th.evalPolynomial(p.coefficients, th.scalarFromInt(recipientID))

	return &Round1PrivateData{
		FromID: p.id,
		ToID:   recipientID,
		Share:  share,
	}
}

// evalCommitments returns Σ commitments[i] * x^i.
func (th *Threshold) evalCommitments(commitments []group.Point, x group.Scalar) group.Point {
	result := th.group.NewPoint()
	xPower := th.scalarFromInt(1)
	for _, commit := range commitments {
		term := th.group.NewPoint().ScalarMult(xPower, commit)
		result = th.group.NewPoint().Add(result, term)
		xPower = th.group.NewScalar().Mul(xPower, x)
	}
	return result
}

// Round2ReceiveShare verifies and stores a received share.
func (th *Threshold) Round2ReceiveShare(p *Participant, data *Round1PrivateData, senderCommitments []group.Point) error {
	if data.ToID != p.id {
		return fmt.Errorf("share addressed to %d delivered to %d", data.ToID, p.id)
	}
	if err := th.checkID(data.FromID); err != nil {
		return err
	}
	if data.FromID == p.id {
		return errors.New("participant cannot receive its own share")
	}
	if len(senderCommitments) != th.threshold {
		return fmt.Errorf("participant %d sent %d commitments, want %d", data.FromID, len(senderCommitments), th.threshold)
	}

	// share * G == Σ commitments[i] * recipientID^i
	lhs := th.group.NewPoint().ScalarMult(data.Share, th.group.Generator())
	rhs := th.evalCommitments(senderCommitments, th.scalarFromInt(data.ToID))
	if !lhs.Equal(rhs) {
		return fmt.Errorf("invalid share from participant %d", data.FromID)
	}

	p.receivedShares[data.FromID] = data.Share
	return nil
}

// PublicShare recomputes participant id's public key share s_id * G from
// the round 1 broadcasts of all participants.
func (th *Threshold) PublicShare(allBroadcasts []*Round1Data, id int) group.Point {
	x := th.scalarFromInt(id)
	result := th.group.NewPoint()
	for _, b := range allBroadcasts {
		result = th.group.NewPoint().Add(result, th.evalCommitments(b.Commitments, x))
	}
	return result
}

// GroupKey returns the joint ElGamal key implied by the broadcasts: the sum
// of every participant's constant-term commitment under the group
// generator.
func (th *Threshold) GroupKey(allBroadcasts []*Round1Data) *elgamal.EncryptKey {
	y := th.group.NewPoint()
	for _, b := range allBroadcasts {
		y = th.group.NewPoint().Add(y, b.Commitments[0])
	}
	return elgamal.NewEncryptKey(th.group, th.group.Generator(), y)
}

// Finalize computes the final key share after receiving all shares.
func (th *Threshold) Finalize(p *Participant, allBroadcasts []*Round1Data) (*KeyShare, error) {
	if len(allBroadcasts) != th.total {
		return nil, fmt.Errorf("expected %d broadcasts, got %d", th.total, len(allBroadcasts))
	}
	seen := make(map[int]bool, len(allBroadcasts))
	for _, b := range allBroadcasts {
		if err := th.checkID(b.ID); err != nil {
			return nil, err
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("duplicate broadcast from participant %d", b.ID)
		}
		if len(b.Commitments) != th.threshold {
			return nil, fmt.Errorf("participant %d broadcast %d commitments, want %d", b.ID, len(b.Commitments), th.threshold)
		}
		seen[b.ID] = true
	}
	if len(p.receivedShares) != th.total-1 {
		return nil, fmt.Errorf("expected %d shares, got %d", th.total-1, len(p.receivedShares))
	}

	// Sum all received shares (including our own)
	secret := th.evalPolynomial(p.coefficients, th.scalarFromInt(p.id))
	for _, share := range p.receivedShares {
		secret = th.group.NewScalar().Add(secret, share)
	}

	publicShare := th.group.NewPoint().ScalarMult(secret, th.group.Generator())
	if !publicShare.Equal(th.PublicShare(allBroadcasts, p.id)) {
		return nil, errors.New("key share does not match broadcast commitments")
	}

	return &KeyShare{
		ID:          p.id,
		Secret:      secret,
		PublicShare: publicShare,
		EncryptKey:  th.GroupKey(allBroadcasts),
	}, nil
}
