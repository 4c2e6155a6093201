package main

import (
	"github.com/spf13/cobra"
)

type addressResult struct {
	Address       string `json:"address"`
	Bech32Address string `json:"bech32address,omitempty"`
}

func newAddressCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Derive, validate and convert addresses",
	}
	cmd.AddCommand(
		newAddressFromPubKeyCmd(a),
		newAddressFromPrivKeyCmd(a),
		newAddressValidateCmd(a),
		newAddressToBech32Cmd(a),
		newAddressFromBech32Cmd(a),
	)
	return cmd
}

func newAddressFromPubKeyCmd(a *app) *cobra.Command {
	var showQR bool
	cmd := &cobra.Command{
		Use:   "from-pubkey <public-key>",
		Short: "Derive the address of a 64-character hex public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, b32, err := a.svc.AddressFromPubKey(args[0])
			if err != nil {
				return err
			}
			return outputAddress(cmd, addressResult{Address: addr, Bech32Address: b32}, showQR)
		},
	}
	cmd.Flags().BoolVar(&showQR, "qr", false, "Print the address as a QR code on stderr")
	return cmd
}

func newAddressFromPrivKeyCmd(a *app) *cobra.Command {
	var showQR bool
	cmd := &cobra.Command{
		Use:   "from-privkey",
		Short: "Derive the address of a 128-character hex private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			priv, err := secretArg(cmd, "key", "Private key: ")
			if err != nil {
				return err
			}
			addr, b32, err := a.svc.AddressFromPrivKey(priv)
			if err != nil {
				return err
			}
			return outputAddress(cmd, addressResult{Address: addr, Bech32Address: b32}, showQR)
		},
	}
	cmd.Flags().String("key", "", "Hex private key (prompted when omitted)")
	cmd.Flags().BoolVar(&showQR, "qr", false, "Print the address as a QR code on stderr")
	return cmd
}

func newAddressValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <public-key> <address>",
		Short: "Check that an address belongs to a public key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, verifyResult{Valid: a.svc.ValidateAddress(args[0], args[1])})
		},
	}
}

func newAddressToBech32Cmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "to-bech32 <hex-address>",
		Short: "Encode a 40-character hex address as bech32",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b32, err := a.svc.ToBech32(args[0])
			if err != nil {
				return err
			}
			addr, err := a.svc.FromBech32(b32)
			if err != nil {
				return err
			}
			return printJSON(cmd, addressResult{Address: addr, Bech32Address: b32})
		},
	}
}

func newAddressFromBech32Cmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "from-bech32 <bech32-address>",
		Short: "Decode a bech32 address to hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := a.svc.FromBech32(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, addressResult{Address: addr, Bech32Address: args[0]})
		},
	}
}

func outputAddress(cmd *cobra.Command, res addressResult, showQR bool) error {
	if showQR {
		display := res.Bech32Address
		if display == "" {
			display = res.Address
		}
		if err := printQR(cmd, display); err != nil {
			return err
		}
	}
	return printJSON(cmd, res)
}
