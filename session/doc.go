// Package session provides a high-level API for threshold ElGamal
// ceremonies. It wraps the low-level primitives in the [threshold] package
// with a simpler interface that handles round management and share
// verification.
//
// The session package is designed for application developers who want to
// run a distributed key without understanding every protocol detail. For
// full control over the protocol, use the [threshold] package directly.
//
// # DKG Ceremony
//
// A distributed key generation (DKG) ceremony creates key shares for all
// participants. Each participant runs the same code independently:
//
//	// Create participant state
//	p, err := session.NewParticipant(group, threshold, total, myID)
//	if err != nil {
//		return err
//	}
//
//	// Generate round 1 messages
//	r1, err := p.GenerateRound1(rand.Reader, allIDs)
//	if err != nil {
//		return err
//	}
//
//	// Broadcast r1.Broadcast to all participants
//	// Send r1.PrivateShares[id] to each participant over secure channel
//
//	// After receiving messages from all other participants:
//	result, err := p.ProcessRound1(&session.Round1Input{
//		Broadcasts:    receivedBroadcasts,
//		PrivateShares: receivedShares,
//	})
//
//	// Store result.KeyShare securely; publish result.EncryptKey
//
// # Decryption
//
// Anyone encrypts to result.EncryptKey with the elgamal package. To
// decrypt, at least threshold participants each produce a share:
//
//	share, err := p.NewDecryptionShare(rand.Reader, ct)
//
// and a coordinator combines them, verifying every share's proof:
//
//	m, err := session.Combine(p.Threshold(), ct, shares, result.PublicShares)
//
// A [DecryptionSession] does the same incrementally as shares arrive.
//
// # Transport Agnostic
//
// This package does not handle network communication. You are responsible
// for distributing messages between participants using your preferred
// transport (TCP, HTTP, libp2p, etc.). The package only manages protocol
// state and message generation.
package session
