package main

import (
	"fmt"

	klog "github.com/Klingon-tech/cphwallet/internal/log"
	"github.com/Klingon-tech/cphwallet/internal/wallet"
	"github.com/spf13/cobra"
)

func newCreateCmd(a *app) *cobra.Command {
	var showQR bool
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Generate a new mnemonic and derive its wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := a.svc.CreateRandom()
			if err != nil {
				return fmt.Errorf("create wallet: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Write the mnemonic down: it is the only way to restore this wallet.")
			return outputIdentity(cmd, id, showQR)
		},
	}
	cmd.Flags().BoolVar(&showQR, "qr", false, "Print the address as a QR code on stderr")
	return cmd
}

func newRestoreCmd(a *app) *cobra.Command {
	var showQR bool
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore a wallet from its mnemonic",
		Long: `Restore a wallet from its 12 or 24 word BIP-39 mnemonic. The phrase is
read from --mnemonic, or from stdin (without echo on a terminal).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mnemonic, err := secretArg(cmd, "mnemonic", "Mnemonic: ")
			if err != nil {
				return err
			}
			id, err := a.svc.FromMnemonic(mnemonic)
			if err != nil {
				return err
			}
			return outputIdentity(cmd, id, showQR)
		},
	}
	cmd.Flags().String("mnemonic", "", "BIP-39 mnemonic (prompted when omitted)")
	cmd.Flags().BoolVar(&showQR, "qr", false, "Print the address as a QR code on stderr")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var showQR bool
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Restore a wallet from a 128-character hex private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			priv, err := secretArg(cmd, "key", "Private key: ")
			if err != nil {
				return err
			}
			id, err := a.svc.FromPrivateKey(priv)
			if err != nil {
				return err
			}
			return outputIdentity(cmd, id, showQR)
		},
	}
	cmd.Flags().String("key", "", "Hex private key (prompted when omitted)")
	cmd.Flags().BoolVar(&showQR, "qr", false, "Print the address as a QR code on stderr")
	return cmd
}

func outputIdentity(cmd *cobra.Command, id *wallet.Identity, showQR bool) error {
	klog.CLI.Info().Str("address", id.DisplayAddress()).Str("scheme", id.Scheme).Msg("Wallet derived")
	if showQR {
		if err := printQR(cmd, id.DisplayAddress()); err != nil {
			return err
		}
	}
	return printJSON(cmd, id)
}
