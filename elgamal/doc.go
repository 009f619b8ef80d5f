// Package elgamal implements additively homomorphic ElGamal encryption of
// group elements over any [group.Group].
//
// A key pair is a secret scalar x and a public key (G, Y) with Y = x*G. A
// message is a point M, encrypted with a fresh scalar r as
//
//	(A, B) = (r*G, r*Y + M)
//
// Ciphertexts under the same key can be added component-wise, which yields
// an encryption of the sum of the plaintexts, and rerandomized, which yields
// a fresh-looking encryption of the same plaintext.
//
// # Usage
//
//	g := bls12381.New().G1()
//	dk, err := elgamal.GenerateKey(g, rand.Reader)
//	ct, err := dk.EncryptKey().EncryptRandom(rand.Reader, m)
//	m2 := dk.Decrypt(ct)
//
// # Security
//
// Decrypting with the wrong key does not fail. [DecryptKey.Decrypt] always
// returns a point, and a ciphertext produced under a different key decrypts
// to an unrelated point. Callers that need to detect this must carry their
// own integrity check (for example a MAC or a NIZK over the plaintext).
//
// The encryption scalar r must be fresh and uniform for every call to
// [EncryptKey.Encrypt]. Two ciphertexts sharing r under the same key reveal
// the difference of their plaintexts: B1 - B2 = M1 - M2.
//
// Keys and ciphertexts are immutable and safe for concurrent use.
package elgamal
