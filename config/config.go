// Package config handles cphwallet configuration.
//
// Settings are layered: built-in defaults, then the .conf file, then CPH_*
// environment variables, then command-line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// NetworkType identifies mainnet or testnet.
type NetworkType string

const (
	Mainnet NetworkType = "mainnet"
	Testnet NetworkType = "testnet"
)

// Default bech32 human-readable parts per network.
const (
	MainnetHRP = "cph"
	TestnetHRP = "tcph"
)

// Config holds wallet runtime configuration.
type Config struct {
	Network NetworkType `conf:"network" json:"network"`
	DataDir string      `conf:"datadir" json:"datadir"`

	// Address derivation and presentation
	Address AddressConfig `json:"address"`

	// Logging
	Log LogConfig `json:"log"`

	// hrpSet records that the HRP came from SetHRP rather than a network default.
	hrpSet bool
}

// AddressConfig selects the address scheme and bech32 prefix.
type AddressConfig struct {
	HRP    string `conf:"address.hrp" json:"hrp"`
	Scheme string `conf:"address.scheme" json:"scheme"` // bech32 or hash-pipeline
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level" json:"level"`
	File  string `conf:"log.file" json:"file,omitempty"`
	JSON  bool   `conf:"log.json" json:"json"`
}

// DefaultHRP returns the bech32 prefix used on the given network.
func DefaultHRP(network NetworkType) string {
	if network == Testnet {
		return TestnetHRP
	}
	return MainnetHRP
}

// SetNetwork switches the network. The HRP follows the switch unless it was
// chosen with SetHRP, even when the chosen value equals a network default.
func (c *Config) SetNetwork(network NetworkType) {
	if !c.hrpSet {
		c.Address.HRP = DefaultHRP(network)
	}
	c.Network = network
}

// SetHRP sets the bech32 prefix and pins it against later network switches.
func (c *Config) SetHRP(hrp string) {
	c.Address.HRP = hrp
	c.hrpSet = true
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.cphwallet
//	macOS:   ~/Library/Application Support/CPHWallet
//	Windows: %APPDATA%\CPHWallet
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cphwallet"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "CPHWallet")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "CPHWallet")
		}
		return filepath.Join(home, "AppData", "Roaming", "CPHWallet")
	default:
		return filepath.Join(home, ".cphwallet")
	}
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "cphwallet.conf")
}
