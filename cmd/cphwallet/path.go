package main

import (
	"github.com/Klingon-tech/cphwallet/internal/wallet"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip32"
)

type pathComponent struct {
	Index    uint32 `json:"index"`
	Hardened bool   `json:"hardened"`
}

type pathResult struct {
	Path       string          `json:"path"`
	Indices    []uint32        `json:"indices"`
	Components []pathComponent `json:"components"`
}

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path [path]",
		Short: "Parse a BIP-44 derivation path into child indices",
		Long: `Parse a derivation path such as m/44'/60'/0'/0/0 into BIP-32 child indices.
Hardened components may be written with ' or h. Without an argument the path
reported on every wallet identity is parsed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := wallet.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}
			indices, err := wallet.ParsePath(path)
			if err != nil {
				return err
			}

			res := pathResult{
				Path:       path,
				Indices:    indices,
				Components: make([]pathComponent, len(indices)),
			}
			for i, idx := range indices {
				if idx >= bip32.FirstHardenedChild {
					res.Components[i] = pathComponent{Index: idx - bip32.FirstHardenedChild, Hardened: true}
				} else {
					res.Components[i] = pathComponent{Index: idx}
				}
			}
			return printJSON(cmd, res)
		},
	}
}
