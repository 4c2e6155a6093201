// cphwallet derives, restores and uses CPH wallet identities from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/Klingon-tech/cphwallet/config"
	klog "github.com/Klingon-tech/cphwallet/internal/log"
	"github.com/Klingon-tech/cphwallet/internal/wallet"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries state shared by every subcommand once the root has loaded
// configuration.
type app struct {
	flags config.Flags
	cfg   *config.Config
	svc   *wallet.Service
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "cphwallet",
		Short: "Create, restore and use CPH wallet keys",
		Long: `cphwallet derives wallet identities (mnemonic, seed, Ed25519 key pair and
address) and signs or verifies messages with them. Nothing is written to
disk except by "config init".

Configuration is read from <datadir>/cphwallet.conf, then CPH_* environment
variables, then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.Config, "config", "", "Config file path (default: <datadir>/cphwallet.conf)")
	pf.StringVar(&a.flags.DataDir, "datadir", "", "Data directory (default: "+config.DefaultDataDir()+")")
	pf.StringVar(&a.flags.Network, "network", "", "Network: mainnet or testnet")
	pf.StringVar(&a.flags.HRP, "hrp", "", "Bech32 human-readable prefix (default: cph, tcph on testnet)")
	pf.StringVar(&a.flags.Scheme, "scheme", "", "Address scheme: bech32 or hash-pipeline")
	pf.StringVar(&a.flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&a.flags.LogFile, "log-file", "", "Also write JSON logs to this file")
	pf.BoolVar(&a.flags.LogJSON, "log-json", false, "Write logs to stderr as JSON")

	root.AddCommand(
		newCreateCmd(a),
		newRestoreCmd(a),
		newImportCmd(a),
		newSignCmd(a),
		newVerifyCmd(a),
		newAddressCmd(a),
		newMnemonicCmd(),
		newPathCmd(),
		newConfigCmd(a),
	)
	return root
}

// setup loads configuration, initializes logging and builds the wallet
// service for the selected scheme.
func (a *app) setup(cmd *cobra.Command) error {
	a.flags.SetLogJSON = cmd.Flags().Changed("log-json")

	cfg, err := config.Load(&a.flags)
	if err != nil {
		return err
	}
	if err := klog.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	scheme, err := wallet.NewScheme(cfg.Address.Scheme, cfg.Address.HRP)
	if err != nil {
		return err
	}
	svc, err := wallet.NewService(scheme, cfg.Address.HRP)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.svc = svc

	klog.CLI.Debug().
		Str("command", cmd.CommandPath()).
		Str("network", string(cfg.Network)).
		Str("scheme", scheme.Name()).
		Str("hrp", cfg.Address.HRP).
		Msg("Wallet service ready")
	return nil
}
