package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/f3rmion/gsel/elgamal"
	"github.com/f3rmion/gsel/group"
	"github.com/spf13/cobra"
)

func decodeHex(what, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%s: invalid hex: %w", what, err)
	}
	return b, nil
}

func (a *app) backend() (backend, error) {
	return lookupBackend(a.cfg.Curve)
}

func (a *app) keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate an ElGamal key pair",
		Long: "Generate an ElGamal key pair with a random generator. The decrypt key\n" +
			"is printed on stdout and is secret.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.backend()
			if err != nil {
				return err
			}
			dk, err := elgamal.GenerateKey(b.group, a.rng)
			if err != nil {
				return err
			}
			dkBytes, err := dk.MarshalBinary()
			if err != nil {
				return err
			}
			ekBytes, err := dk.EncryptKey().MarshalBinary()
			if err != nil {
				return err
			}
			a.log.Info().Str("curve", b.name).Msg("generated key pair")
			fmt.Fprintf(cmd.OutOrStdout(), "decrypt-key: %x\nencrypt-key: %x\n", dkBytes, ekBytes)
			return nil
		},
	}
}

// message resolves the plaintext of an encrypt call: an encoded point, or
// value*G for a small integer value and the group generator G.
func message(g group.Group, pointHex string, value uint64, valueSet bool) (group.Point, error) {
	switch {
	case pointHex != "" && valueSet:
		return nil, errors.New("--message and --value are mutually exclusive")
	case pointHex != "":
		b, err := decodeHex("message", pointHex)
		if err != nil {
			return nil, err
		}
		p, err := g.NewPoint().SetBytes(b)
		if err != nil {
			return nil, fmt.Errorf("message: %w", err)
		}
		return p, nil
	case valueSet:
		return g.NewPoint().ScalarMult(g.NewScalar().SetUint64(value), g.Generator()), nil
	default:
		return nil, errors.New("one of --message or --value is required")
	}
}

func (a *app) encryptCmd() *cobra.Command {
	var keyHex, msgHex string
	var value uint64
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a point, or a small integer encoded as value*G",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.backend()
			if err != nil {
				return err
			}
			ek, err := a.encryptKey(b, keyHex)
			if err != nil {
				return err
			}
			m, err := message(b.group, msgHex, value, cmd.Flags().Changed("value"))
			if err != nil {
				return err
			}
			ct, err := ek.EncryptRandom(a.rng, m)
			if err != nil {
				return err
			}
			return a.printCiphertext(cmd, ct)
		},
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "hex-encoded encrypt key")
	cmd.Flags().StringVar(&msgHex, "message", "", "hex-encoded message point")
	cmd.Flags().Uint64Var(&value, "value", 0, "small integer message, encrypted as value*G")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func (a *app) decryptCmd() *cobra.Command {
	var keyHex, ctHex string
	var maxValue uint64
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext",
		Long: "Decrypt a ciphertext and print the plaintext point. With --max-value the\n" +
			"plaintext is also searched for as value*G for value in [0, max-value].\n\n" +
			"Decrypting with the wrong key does not fail; it yields an unrelated point.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.backend()
			if err != nil {
				return err
			}
			raw, err := decodeHex("key", keyHex)
			if err != nil {
				return err
			}
			dk, err := elgamal.DecodeDecryptKey(b.group, raw)
			if err != nil {
				return err
			}
			ct, err := a.ciphertext(b, ctHex)
			if err != nil {
				return err
			}
			m := dk.Decrypt(ct)
			fmt.Fprintf(cmd.OutOrStdout(), "message: %x\n", m.Bytes())
			if maxValue == 0 {
				return nil
			}
			v, ok := smallValue(b.group, m, maxValue)
			if !ok {
				return fmt.Errorf("plaintext is not value*G for any value <= %d", maxValue)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "value: %d\n", v)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "hex-encoded decrypt key")
	cmd.Flags().StringVar(&ctHex, "ciphertext", "", "hex-encoded ciphertext")
	cmd.Flags().Uint64Var(&maxValue, "max-value", 0, "search for a small integer plaintext up to this bound")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("ciphertext")
	return cmd
}

// smallValue finds v <= limit with v*G == m by walking G, 2G, ...
func smallValue(g group.Group, m group.Point, limit uint64) (uint64, bool) {
	acc := g.NewPoint()
	gen := g.Generator()
	for v := uint64(0); ; v++ {
		if acc.Equal(m) {
			return v, true
		}
		if v == limit {
			return 0, false
		}
		acc = g.NewPoint().Add(acc, gen)
	}
}

func (a *app) rerandomizeCmd() *cobra.Command {
	var keyHex, ctHex string
	cmd := &cobra.Command{
		Use:   "rerandomize",
		Short: "Rerandomize a ciphertext under its encrypt key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.backend()
			if err != nil {
				return err
			}
			ek, err := a.encryptKey(b, keyHex)
			if err != nil {
				return err
			}
			ct, err := a.ciphertext(b, ctHex)
			if err != nil {
				return err
			}
			out, err := ek.RerandomizeRandom(a.rng, ct)
			if err != nil {
				return err
			}
			return a.printCiphertext(cmd, out)
		},
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "hex-encoded encrypt key")
	cmd.Flags().StringVar(&ctHex, "ciphertext", "", "hex-encoded ciphertext")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("ciphertext")
	return cmd
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add CIPHERTEXT...",
		Short: "Add ciphertexts under the same key",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.backend()
			if err != nil {
				return err
			}
			cts := make([]*elgamal.Ciphertext, len(args))
			for i, s := range args {
				ct, err := a.ciphertext(b, s)
				if err != nil {
					return fmt.Errorf("ciphertext %d: %w", i+1, err)
				}
				cts[i] = ct
			}
			a.log.Debug().Int("count", len(cts)).Msg("adding ciphertexts")
			return a.printCiphertext(cmd, elgamal.Sum(b.group, cts...))
		},
	}
}

func (a *app) encryptKey(b backend, s string) (*elgamal.EncryptKey, error) {
	raw, err := decodeHex("key", s)
	if err != nil {
		return nil, err
	}
	return elgamal.DecodeEncryptKey(b.group, raw)
}

func (a *app) ciphertext(b backend, s string) (*elgamal.Ciphertext, error) {
	raw, err := decodeHex("ciphertext", s)
	if err != nil {
		return nil, err
	}
	return elgamal.DecodeCiphertext(b.group, raw)
}

func (a *app) printCiphertext(cmd *cobra.Command, ct *elgamal.Ciphertext) error {
	out, err := ct.MarshalBinary()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ciphertext: %x\n", out)
	return nil
}
