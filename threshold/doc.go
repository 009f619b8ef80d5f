// Package threshold implements t-of-n threshold ElGamal decryption.
//
// Key generation is a Pedersen distributed key generation: every
// participant deals a random polynomial of degree t-1, broadcasts Feldman
// commitments to its coefficients, and sends each peer a private
// evaluation. The resulting joint key is an ordinary [elgamal.EncryptKey]
// under the group generator whose secret is never held by anyone.
//
// To decrypt a ciphertext (A, B), any t participants publish decryption
// shares D_i = s_i * A, each with a Chaum–Pedersen proof that it used the
// same secret as the participant's public share. The plaintext is
// B - Σ λ_i * D_i with Lagrange coefficients λ_i at zero.
//
// # Key Generation
//
//	th, _ := threshold.New(g, 2, 3)
//
//	// Each participant creates their state
//	p1, _ := th.NewParticipant(rand.Reader, 1)
//	p2, _ := th.NewParticipant(rand.Reader, 2)
//	p3, _ := th.NewParticipant(rand.Reader, 3)
//
//	// Round 1: broadcast commitments, send private shares
//	// Round 2: verify received shares with Round2ReceiveShare
//	// Finalize: each participant derives its KeyShare
//
// # Decryption
//
//	ds1, _ := th.PartialDecrypt(rand.Reader, share1, ct)
//	ds3, _ := th.PartialDecrypt(rand.Reader, share3, ct)
//	m, _ := th.Combine(ct, []*threshold.DecryptionShare{ds1, ds3})
//
// Challenges are derived from a Blake2b-512 transcript of all public
// values.
package threshold
