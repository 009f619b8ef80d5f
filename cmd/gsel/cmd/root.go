package cmd

import (
	"crypto/rand"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *Config
	log     zerolog.Logger
	rng     io.Reader
}

// NewRootCmd creates the gsel root command. It is called once in main.
func NewRootCmd() *cobra.Command {
	return newRootCmd(rand.Reader)
}

func newRootCmd(rng io.Reader) *cobra.Command {
	a := &app{v: newViper(), rng: rng, log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:           "gsel",
		Short:         "Homomorphic ElGamal and Groth–Sahai proofs over pairing-friendly curves",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, logger
			if used := a.v.ConfigFileUsed(); used != "" {
				a.log.Debug().Str("file", used).Msg("loaded config")
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default ./gsel.yaml if present)")
	flags.String("curve", "bls12-381", "curve backend: "+curveNames())
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("curve", flags.Lookup("curve"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))

	rootCmd.AddCommand(
		a.keygenCmd(),
		a.encryptCmd(),
		a.decryptCmd(),
		a.rerandomizeCmd(),
		a.addCmd(),
		a.selftestCmd(),
	)
	return rootCmd
}
