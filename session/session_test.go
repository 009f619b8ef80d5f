package session

import (
	"crypto/rand"
	"testing"

	"github.com/f3rmion/gsel/bjj"
	"github.com/f3rmion/gsel/elgamal"
	"github.com/f3rmion/gsel/group"
	"github.com/f3rmion/gsel/ristretto"
	"github.com/f3rmion/gsel/threshold"
	"github.com/stretchr/testify/require"
)

// runDKG creates total participants and runs the full ceremony.
func runDKG(t *testing.T, g group.Group, th, total int) ([]*Participant, []*DKGResult) {
	t.Helper()
	allIDs := make([]int, total)
	participants := make([]*Participant, total)
	for i := 0; i < total; i++ {
		allIDs[i] = i + 1
		p, err := NewParticipant(g, th, total, i+1)
		require.NoError(t, err, "failed to create participant %d", i+1)
		participants[i] = p
	}

	r1Outputs := make([]*Round1Output, total)
	for i, p := range participants {
		r1, err := p.GenerateRound1(rand.Reader, allIDs)
		require.NoError(t, err, "participant %d failed to generate round 1", i+1)
		r1Outputs[i] = r1
	}

	broadcasts := make([]*threshold.Round1Data, total)
	for i, r1 := range r1Outputs {
		broadcasts[i] = r1.Broadcast
	}

	results := make([]*DKGResult, total)
	for i, p := range participants {
		var privateShares []*threshold.Round1PrivateData
		for j, r1 := range r1Outputs {
			if i == j {
				continue
			}
			if share, ok := r1.PrivateShares[p.ID()]; ok {
				privateShares = append(privateShares, share)
			}
		}
		result, err := p.ProcessRound1(&Round1Input{
			Broadcasts:    broadcasts,
			PrivateShares: privateShares,
		})
		require.NoError(t, err, "participant %d failed to process round 1", i+1)
		results[i] = result
	}
	return participants, results
}

func encrypt(t *testing.T, ek *elgamal.EncryptKey) (group.Point, *elgamal.Ciphertext) {
	t.Helper()
	m, err := ek.Group().RandomPoint(rand.Reader)
	require.NoError(t, err)
	ct, err := ek.EncryptRandom(rand.Reader, m)
	require.NoError(t, err)
	return m, ct
}

func TestDKGAndDecrypt(t *testing.T) {
	g := &bjj.BJJ{}
	participants, results := runDKG(t, g, 2, 3)

	for i := 1; i < len(results); i++ {
		require.True(t, results[i].EncryptKey.Equal(results[0].EncryptKey), "participants have different group keys")
	}
	for _, p := range participants {
		require.True(t, results[0].PublicShares[p.ID()].Equal(p.KeyShare().PublicShare))
	}

	t.Run("Decrypt", func(t *testing.T) {
		m, ct := encrypt(t, results[0].EncryptKey)

		var shares []*threshold.DecryptionShare
		for _, p := range participants[1:] {
			share, err := p.NewDecryptionShare(rand.Reader, ct)
			require.NoError(t, err)
			shares = append(shares, share)
		}

		got, err := Combine(participants[0].Threshold(), ct, shares, results[0].PublicShares)
		require.NoError(t, err)
		require.True(t, got.Equal(m))
	})

	t.Run("RejectsForgedShare", func(t *testing.T) {
		_, ct := encrypt(t, results[0].EncryptKey)
		good, err := participants[0].NewDecryptionShare(rand.Reader, ct)
		require.NoError(t, err)
		forged, err := participants[1].NewDecryptionShare(rand.Reader, ct)
		require.NoError(t, err)
		forged.D = g.NewPoint().Add(forged.D, g.Generator())

		_, err = Combine(participants[0].Threshold(), ct, []*threshold.DecryptionShare{good, forged}, results[0].PublicShares)
		require.ErrorContains(t, err, "participant 2")
	})
}

func TestDecryptionSession(t *testing.T) {
	g := ristretto.New()
	participants, results := runDKG(t, g, 3, 4)
	m, ct := encrypt(t, results[0].EncryptKey)

	sess := NewDecryptionSession(participants[0].Threshold(), ct, results[0].PublicShares)
	require.False(t, sess.Ready())

	for i, p := range participants[:3] {
		share, err := p.NewDecryptionShare(rand.Reader, ct)
		require.NoError(t, err)
		require.NoError(t, sess.Add(share))
		require.Equal(t, i == 2, sess.Ready())
		require.Error(t, sess.Add(share), "duplicate share accepted")
	}

	got, err := sess.Plaintext()
	require.NoError(t, err)
	require.True(t, got.Equal(m))

	t.Run("UnknownParticipant", func(t *testing.T) {
		share, err := participants[3].NewDecryptionShare(rand.Reader, ct)
		require.NoError(t, err)
		partial := map[int]group.Point{1: results[0].PublicShares[1]}
		s := NewDecryptionSession(participants[0].Threshold(), ct, partial)
		require.Error(t, s.Add(share))
		require.Error(t, s.Add(nil))
	})

	t.Run("NotReady", func(t *testing.T) {
		s := NewDecryptionSession(participants[0].Threshold(), ct, results[0].PublicShares)
		_, err := s.Plaintext()
		require.Error(t, err)
	})
}

func TestDecryptionWithoutDKG(t *testing.T) {
	g := &bjj.BJJ{}
	p, err := NewParticipant(g, 2, 3, 1)
	require.NoError(t, err)

	dk, err := elgamal.GenerateKey(g, rand.Reader)
	require.NoError(t, err)
	_, ct := encrypt(t, dk.EncryptKey())

	_, err = p.NewDecryptionShare(rand.Reader, ct)
	require.Error(t, err, "should fail to decrypt without DKG")
}

func TestDuplicateRound1Generation(t *testing.T) {
	g := &bjj.BJJ{}
	allIDs := []int{1, 2, 3}

	p, err := NewParticipant(g, 2, 3, 1)
	require.NoError(t, err)

	_, err = p.GenerateRound1(rand.Reader, allIDs)
	require.NoError(t, err)

	_, err = p.GenerateRound1(rand.Reader, allIDs)
	require.Error(t, err, "should not allow generating round 1 twice")
}

func TestProcessRound1Validation(t *testing.T) {
	g := &bjj.BJJ{}
	allIDs := []int{1, 2, 3}

	t.Run("BeforeRound1", func(t *testing.T) {
		p, err := NewParticipant(g, 2, 3, 1)
		require.NoError(t, err)
		_, err = p.ProcessRound1(&Round1Input{})
		require.Error(t, err)
	})

	ps := make([]*Participant, 3)
	outs := make([]*Round1Output, 3)
	for i := range ps {
		p, err := NewParticipant(g, 2, 3, i+1)
		require.NoError(t, err)
		out, err := p.GenerateRound1(rand.Reader, allIDs)
		require.NoError(t, err)
		ps[i], outs[i] = p, out
	}

	t.Run("DuplicateBroadcast", func(t *testing.T) {
		_, err := ps[0].ProcessRound1(&Round1Input{
			Broadcasts: []*threshold.Round1Data{outs[0].Broadcast, outs[1].Broadcast, outs[1].Broadcast},
		})
		require.Error(t, err)
	})

	t.Run("MissingBroadcast", func(t *testing.T) {
		_, err := ps[0].ProcessRound1(&Round1Input{
			Broadcasts:    []*threshold.Round1Data{outs[0].Broadcast, outs[1].Broadcast},
			PrivateShares: []*threshold.Round1PrivateData{outs[2].PrivateShares[1]},
		})
		require.Error(t, err)
	})
}

func TestParticipantIDValidation(t *testing.T) {
	g := &bjj.BJJ{}

	_, err := NewParticipant(g, 2, 3, 0)
	require.Error(t, err, "should reject ID of 0")

	_, err = NewParticipant(g, 2, 3, 4)
	require.Error(t, err, "should reject ID greater than total")

	for id := 1; id <= 3; id++ {
		_, err := NewParticipant(g, 2, 3, id)
		require.NoError(t, err, "should accept ID %d", id)
	}
}

func TestQuickDecrypt(t *testing.T) {
	g := &bjj.BJJ{}
	participants, results := runDKG(t, g, 2, 3)

	keyShares := make([]*threshold.KeyShare, len(participants))
	for i, r := range results {
		keyShares[i] = r.KeyShare
	}

	m, ct := encrypt(t, results[0].EncryptKey)
	got, err := QuickDecrypt(participants[0].Threshold(), rand.Reader, keyShares[1:], ct)
	require.NoError(t, err)
	require.True(t, got.Equal(m))

	_, err = QuickDecrypt(participants[0].Threshold(), rand.Reader, nil, ct)
	require.Error(t, err)
	_, err = QuickDecrypt(participants[0].Threshold(), rand.Reader, keyShares[:1], ct)
	require.Error(t, err)
}

func TestSetKeyShare(t *testing.T) {
	g := &bjj.BJJ{}
	participants, results := runDKG(t, g, 2, 3)

	// Simulate restoring participant 1 from storage
	restored, err := NewParticipant(g, 2, 3, 1)
	require.NoError(t, err)
	require.Error(t, restored.SetKeyShare(results[1].KeyShare))
	require.NoError(t, restored.SetKeyShare(results[0].KeyShare))

	_, err = restored.GenerateRound1(rand.Reader, []int{1, 2, 3})
	require.Error(t, err, "restored participant must not rerun DKG")

	m, ct := encrypt(t, results[0].EncryptKey)
	s1, err := restored.NewDecryptionShare(rand.Reader, ct)
	require.NoError(t, err)
	s3, err := participants[2].NewDecryptionShare(rand.Reader, ct)
	require.NoError(t, err)

	got, err := Combine(restored.Threshold(), ct, []*threshold.DecryptionShare{s1, s3}, results[2].PublicShares)
	require.NoError(t, err)
	require.True(t, got.Equal(m))
}

func TestDecryptWithDifferentSubsets(t *testing.T) {
	g := &bjj.BJJ{}
	participants, results := runDKG(t, g, 2, 4)
	m, ct := encrypt(t, results[0].EncryptKey)

	subsets := [][]int{
		{0, 1},       // participants 1 and 2
		{0, 2},       // participants 1 and 3
		{1, 3},       // participants 2 and 4
		{0, 1, 2},    // participants 1, 2, and 3
		{0, 1, 2, 3}, // all participants
	}

	for _, subset := range subsets {
		shares := make([]*threshold.DecryptionShare, len(subset))
		for i, idx := range subset {
			share, err := participants[idx].NewDecryptionShare(rand.Reader, ct)
			require.NoError(t, err)
			shares[i] = share
		}

		got, err := Combine(participants[0].Threshold(), ct, shares, results[0].PublicShares)
		require.NoError(t, err, "subset %v", subset)
		require.True(t, got.Equal(m), "subset %v: wrong plaintext", subset)
	}
}
