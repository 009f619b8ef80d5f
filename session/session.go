package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/gsel/elgamal"
	"github.com/f3rmion/gsel/group"
	"github.com/f3rmion/gsel/threshold"
)

// Participant manages a single participant's state throughout key
// generation and decryption. Create instances using [NewParticipant].
type Participant struct {
	id        int
	th        *threshold.Threshold
	group     group.Group
	keyShare  *threshold.KeyShare
	dkgState  *threshold.Participant
	finalized bool
}

// DKGResult contains the output of a successful DKG ceremony.
type DKGResult struct {
	// KeyShare is this participant's share of the distributed key.
	// Store this securely; it is required for decryption.
	KeyShare *threshold.KeyShare

	// EncryptKey is the joint public key. It is the same for all
	// participants and is what senders encrypt to.
	EncryptKey *elgamal.EncryptKey

	// PublicShares maps participant IDs to their public key shares s_i*G.
	// They are needed to verify decryption shares.
	PublicShares map[int]group.Point
}

// Round1Output contains all messages generated during DKG round 1.
type Round1Output struct {
	// Broadcast is the public commitment that must be sent to all participants.
	Broadcast *threshold.Round1Data

	// PrivateShares maps recipient participant ID to their private share.
	// Each share must be sent to its recipient over a secure, authenticated channel.
	PrivateShares map[int]*threshold.Round1PrivateData
}

// Round1Input contains all messages received during DKG round 1.
type Round1Input struct {
	// Broadcasts contains the public commitments from all participants
	// (including this participant's own broadcast).
	Broadcasts []*threshold.Round1Data

	// PrivateShares contains the private shares sent TO this participant
	// from all other participants.
	PrivateShares []*threshold.Round1PrivateData
}

// NewParticipant creates a new participant for threshold ElGamal
// ceremonies.
//
// Parameters:
//   - g: The group to use (e.g., &bjj.BJJ{} or ristretto.New())
//   - t: Minimum number of decryption shares required
//   - total: Total number of participants (n)
//   - id: This participant's unique identifier (1 to n)
//
// The returned Participant can be used for one DKG ceremony and then for
// any number of decryptions.
func NewParticipant(g group.Group, t, total, id int) (*Participant, error) {
	if id < 1 || id > total {
		return nil, fmt.Errorf("participant ID must be between 1 and %d, got %d", total, id)
	}

	th, err := threshold.New(g, t, total)
	if err != nil {
		return nil, fmt.Errorf("failed to create threshold instance: %w", err)
	}

	return &Participant{
		id:    id,
		th:    th,
		group: g,
	}, nil
}

// ID returns this participant's identifier.
func (p *Participant) ID() int {
	return p.id
}

// KeyShare returns this participant's key share after DKG completion.
// Returns nil if DKG has not been finalized.
func (p *Participant) KeyShare() *threshold.KeyShare {
	return p.keyShare
}

// Threshold returns the underlying threshold instance for advanced use cases.
func (p *Participant) Threshold() *threshold.Threshold {
	return p.th
}

// GenerateRound1 generates all round 1 DKG messages.
//
// This creates:
//   - A public broadcast containing commitments to the secret polynomial
//   - Private shares for each other participant
//
// The broadcast should be sent to all participants. Each private share
// should be sent only to its intended recipient over a secure channel.
func (p *Participant) GenerateRound1(rng io.Reader, allParticipantIDs []int) (*Round1Output, error) {
	if p.dkgState != nil || p.finalized {
		return nil, errors.New("round 1 already generated")
	}

	participant, err := p.th.NewParticipant(rng, p.id)
	if err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}
	p.dkgState = participant

	privateShares := make(map[int]*threshold.Round1PrivateData)
	for _, recipientID := range allParticipantIDs {
		if recipientID == p.id {
			continue
		}
		privateShares[recipientID] = p.th.Round1PrivateSend(participant, recipientID)
	}

	return &Round1Output{
		Broadcast:     participant.Round1Broadcast(),
		PrivateShares: privateShares,
	}, nil
}

// ProcessRound1 processes received round 1 messages and completes the DKG.
//
// This verifies all received shares against their sender's commitments,
// then computes the final key share. After this call, the participant
// is ready to produce decryption shares.
//
// The input must contain:
//   - Broadcasts from ALL participants (including this one)
//   - Private shares from all OTHER participants
func (p *Participant) ProcessRound1(input *Round1Input) (*DKGResult, error) {
	if p.dkgState == nil {
		return nil, errors.New("must call GenerateRound1 before ProcessRound1")
	}
	if p.finalized {
		return nil, errors.New("DKG already finalized")
	}

	broadcastByID := make(map[int]*threshold.Round1Data)
	for _, b := range input.Broadcasts {
		if _, exists := broadcastByID[b.ID]; exists {
			return nil, fmt.Errorf("duplicate broadcast from participant %d", b.ID)
		}
		broadcastByID[b.ID] = b
	}

	for _, share := range input.PrivateShares {
		senderBroadcast, ok := broadcastByID[share.FromID]
		if !ok {
			return nil, fmt.Errorf("missing broadcast from participant %d", share.FromID)
		}
		if err := p.th.Round2ReceiveShare(p.dkgState, share, senderBroadcast.Commitments); err != nil {
			return nil, fmt.Errorf("invalid share from participant %d: %w", share.FromID, err)
		}
	}

	keyShare, err := p.th.Finalize(p.dkgState, input.Broadcasts)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize DKG: %w", err)
	}

	p.keyShare = keyShare
	p.finalized = true
	p.dkgState = nil

	publicShares := make(map[int]group.Point, len(input.Broadcasts))
	for _, b := range input.Broadcasts {
		publicShares[b.ID] = p.th.PublicShare(input.Broadcasts, b.ID)
	}

	return &DKGResult{
		KeyShare:     keyShare,
		EncryptKey:   keyShare.EncryptKey,
		PublicShares: publicShares,
	}, nil
}

// SetKeyShare allows setting a previously-saved key share.
// Use this when restoring a participant from persistent storage.
func (p *Participant) SetKeyShare(ks *threshold.KeyShare) error {
	if ks.ID != p.id {
		return fmt.Errorf("key share belongs to participant %d, not %d", ks.ID, p.id)
	}
	p.keyShare = ks
	p.finalized = true
	p.dkgState = nil
	return nil
}

// NewDecryptionShare produces this participant's decryption share of ct.
// The participant must have completed DKG.
func (p *Participant) NewDecryptionShare(rng io.Reader, ct *elgamal.Ciphertext) (*threshold.DecryptionShare, error) {
	if p.keyShare == nil {
		return nil, errors.New("DKG not complete: no key share available")
	}
	return p.th.PartialDecrypt(rng, p.keyShare, ct)
}
