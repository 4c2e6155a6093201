package main

import (
	"github.com/Klingon-tech/cphwallet/internal/wallet"
	"github.com/spf13/cobra"
)

type mnemonicResult struct {
	Mnemonic string `json:"mnemonic"`
}

type seedResult struct {
	Seed string `json:"seed"`
}

func newMnemonicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate and check BIP-39 mnemonics",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "new",
			Short: "Generate a 12-word mnemonic",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := wallet.GenerateMnemonic()
				if err != nil {
					return err
				}
				return printJSON(cmd, mnemonicResult{Mnemonic: m})
			},
		},
		newMnemonicValidateCmd(),
		newMnemonicSeedCmd(),
	)
	return cmd
}

func newMnemonicValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check word count, wordlist and checksum of a mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := secretArg(cmd, "mnemonic", "Mnemonic: ")
			if err != nil {
				return err
			}
			return printJSON(cmd, verifyResult{Valid: wallet.ValidateMnemonic(m)})
		},
	}
	cmd.Flags().String("mnemonic", "", "BIP-39 mnemonic (prompted when omitted)")
	return cmd
}

func newMnemonicSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Print the legacy seed of a mnemonic",
		Long: `Print SHA-256 of the exact mnemonic bytes as upper-case hex. This is the
seed every wallet key is derived from; it is not the BIP-39 PBKDF2 seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := secretArg(cmd, "mnemonic", "Mnemonic: ")
			if err != nil {
				return err
			}
			return printJSON(cmd, seedResult{Seed: wallet.GenerateSeed(m)})
		},
	}
	cmd.Flags().String("mnemonic", "", "BIP-39 mnemonic (prompted when omitted)")
	return cmd
}
