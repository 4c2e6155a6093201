package config

import (
	"fmt"

	klog "github.com/Klingon-tech/cphwallet/internal/log"
	"github.com/Klingon-tech/cphwallet/internal/wallet"
	"github.com/Klingon-tech/cphwallet/pkg/types"
)

// Validate checks config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.Network != Mainnet && cfg.Network != Testnet {
		return fmt.Errorf("network must be %q or %q", Mainnet, Testnet)
	}
	if err := types.ValidateHRP(cfg.Address.HRP); err != nil {
		return fmt.Errorf("address.hrp: %w", err)
	}
	if _, err := wallet.NewScheme(cfg.Address.Scheme, cfg.Address.HRP); err != nil {
		return fmt.Errorf("address.scheme: %w", err)
	}
	if _, err := klog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
