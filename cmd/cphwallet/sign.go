package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// errInvalidSignature makes "verify" exit non-zero after printing its result.
var errInvalidSignature = errors.New("signature is not valid")

type signResult struct {
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
}

type verifyResult struct {
	Valid bool `json:"valid"`
}

func newSignCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign [message]",
		Short: "Sign a message with a private key",
		Long: `Produce a detached Ed25519 signature over the message bytes. The private
key is read from --key, or from stdin (without echo on a terminal).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := messageArg(cmd, args, 0)
			if err != nil {
				return err
			}
			priv, err := secretArg(cmd, "key", "Private key: ")
			if err != nil {
				return err
			}
			sig, err := a.svc.Sign(priv, msg)
			if err != nil {
				return err
			}
			pub, err := a.svc.PubKeyFromPrivKey(priv)
			if err != nil {
				return err
			}
			return printJSON(cmd, signResult{Signature: sig, PublicKey: pub})
		},
	}
	cmd.Flags().String("key", "", "Hex private key (prompted when omitted)")
	cmd.Flags().String("file", "", "Sign the contents of this file")
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <public-key> <signature> [message]",
		Short: "Verify a detached signature",
		Long: `Verify a detached Ed25519 signature. The key may be a 64-character public
key or a 128-character private key. Exits non-zero when the signature does
not verify.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := messageArg(cmd, args, 2)
			if err != nil {
				return err
			}
			valid := a.svc.Verify(args[0], msg, args[1])
			if err := printJSON(cmd, verifyResult{Valid: valid}); err != nil {
				return err
			}
			if !valid {
				return errInvalidSignature
			}
			return nil
		},
	}
	cmd.Flags().String("file", "", "Verify against the contents of this file")
	return cmd
}
