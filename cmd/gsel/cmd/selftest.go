package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/f3rmion/gsel/elgamal"
	"github.com/f3rmion/gsel/group"
	"github.com/f3rmion/gsel/nizk"
	"github.com/spf13/cobra"
)

func (a *app) selftestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Prove and batch-verify well-formedness of random ciphertexts",
		Long: "Encrypt random messages, prove for each ciphertext (A, B) under key (G, Y)\n" +
			"that r*G = A and r*Y + M = B, rerandomize every proof and verify the\n" +
			"batch, including one deliberately false claim.\n\n" +
			"A CRS policy (shared or fresh) must be chosen explicitly.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.selftest(cmd)
		},
	}
	flags := cmd.Flags()
	flags.Int("statements", 8, "number of ciphertexts to prove")
	flags.Int("workers", 0, "verification goroutines (0 = GOMAXPROCS)")
	flags.String("crs-policy", "", "CRS policy: shared or fresh")
	_ = a.v.BindPFlag("selftest.statements", flags.Lookup("statements"))
	_ = a.v.BindPFlag("selftest.workers", flags.Lookup("workers"))
	_ = a.v.BindPFlag("crs.policy", flags.Lookup("crs-policy"))
	return cmd
}

// wellFormed returns the two statements binding ct to ek for witnesses r
// and m: r*G = ct.A and r*Y + 1*m = ct.B.
func wellFormed(g group.Group, ek *elgamal.EncryptKey, ct *elgamal.Ciphertext) (rand, msg nizk.Statement) {
	one := g.NewScalar().SetUint64(1)
	rand = nizk.Statement{A: []group.Point{ek.Generator()}, Target: ct.A}
	msg = nizk.Statement{A: []group.Point{ek.Y()}, B: []group.Scalar{one}, Target: ct.B}
	return rand, msg
}

func (a *app) selftest(cmd *cobra.Command) error {
	b, err := lookupPairing(a.cfg.Curve)
	if err != nil {
		return err
	}
	policy, err := nizk.ParseCRSPolicy(a.cfg.CRS.Policy)
	if err != nil {
		return fmt.Errorf("crs.policy: %w", err)
	}
	n := a.cfg.Selftest.Statements
	if n < 1 {
		return errors.New("selftest.statements must be at least 1")
	}
	log := a.log.With().Str("curve", b.name).Stringer("crs_policy", policy).Logger()

	src, err := nizk.NewCRSSource(b.pairing, policy, a.rng)
	if err != nil {
		return err
	}
	g := b.group
	dk, err := elgamal.GenerateKey(g, a.rng)
	if err != nil {
		return err
	}
	ek := dk.EncryptKey()

	var claims []nizk.Claim
	var want []bool
	start := time.Now()
	for i := 0; i < n; i++ {
		r, err := g.RandomScalar(a.rng)
		if err != nil {
			return err
		}
		m := g.NewPoint().ScalarMult(g.NewScalar().SetUint64(uint64(i)), g.Generator())
		ct := ek.Encrypt(m, r)
		randSt, msgSt := wellFormed(g, ek, ct)

		crs, err := src.Next()
		if err != nil {
			return err
		}
		randProof, err := nizk.ProveStatement(a.rng, crs, randSt, []group.Scalar{r}, nil)
		if err != nil {
			return err
		}
		msgProof, err := nizk.ProveStatement(a.rng, crs, msgSt, []group.Scalar{r}, []group.Point{m})
		if err != nil {
			return err
		}
		msgProof, err = msgProof.Randomize(a.rng, crs, msgSt.A, msgSt.B)
		if err != nil {
			return err
		}
		claims = append(claims,
			nizk.Claim{CRS: crs, Statement: randSt, Proof: randProof},
			nizk.Claim{CRS: crs, Statement: msgSt, Proof: msgProof},
		)
		want = append(want, true, true)
	}
	log.Debug().Int("claims", len(claims)).Dur("elapsed", time.Since(start)).Msg("proved")

	// The last message proof checked against a different ciphertext.
	other, err := ek.EncryptRandom(a.rng, g.Generator())
	if err != nil {
		return err
	}
	forged := claims[len(claims)-1]
	forged.Statement.Target = other.B
	claims = append(claims, forged)
	want = append(want, false)

	start = time.Now()
	got, err := nizk.VerifyBatch(cmd.Context(), claims, a.cfg.Selftest.Workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	var failed int
	for i := range got {
		if got[i] != want[i] {
			failed++
			log.Error().Int("claim", i).Bool("want", want[i]).Bool("got", got[i]).Msg("unexpected verification result")
		}
	}
	log.Info().
		Int("claims", len(claims)).
		Int("workers", a.cfg.Selftest.Workers).
		Dur("elapsed", elapsed).
		Int("failed", failed).
		Msg("batch verified")
	if failed > 0 {
		return fmt.Errorf("selftest: %d of %d claims verified unexpectedly", failed, len(claims))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d claims on %s (%s CRS)\n", len(claims), b.name, policy)
	return nil
}
