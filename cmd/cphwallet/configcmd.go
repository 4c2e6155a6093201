package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Klingon-tech/cphwallet/config"
	klog "github.com/Klingon-tech/cphwallet/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Write a default configuration file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path := a.flags.Config
				if path == "" {
					path = a.cfg.ConfigFile()
				}
				if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
					return fmt.Errorf("create config dir: %w", err)
				}
				if err := config.WriteDefaultConfig(path, a.cfg.Network); err != nil {
					return fmt.Errorf("write config: %w", err)
				}
				klog.CLI.Info().Str("path", path).Msg("Config file written")
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return printJSON(cmd, a.cfg)
			},
		},
	)
	return cmd
}
