package config

import (
	"fmt"
	"os"
	"strings"

	klog "github.com/Klingon-tech/cphwallet/internal/log"
)

// Flags holds command-line overrides. Empty strings mean "not set";
// SetLogJSON records whether --log-json was given explicitly.
type Flags struct {
	Config  string
	Network string
	DataDir string

	HRP    string
	Scheme string

	LogLevel string
	LogFile  string
	LogJSON  bool

	SetLogJSON bool
}

// ApplyFlags overlays explicitly set flags onto cfg.
func ApplyFlags(cfg *Config, f *Flags) {
	if f == nil {
		return
	}
	if f.Network != "" {
		cfg.SetNetwork(NetworkType(strings.ToLower(f.Network)))
	}
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}
	if f.HRP != "" {
		cfg.SetHRP(f.HRP)
	}
	if f.Scheme != "" {
		cfg.Address.Scheme = strings.ToLower(f.Scheme)
	}
	if f.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(f.LogLevel)
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// Load builds the configuration with the following precedence:
// 1. Default values
// 2. Config file (--config, else <datadir>/cphwallet.conf; optional)
// 3. CPH_* environment variables
// 4. Command-line flags
func Load(f *Flags) (*Config, error) {
	if f == nil {
		f = &Flags{}
	}
	cfg := Default(Mainnet)

	// The data directory decides where the default config file lives.
	if dir := os.Getenv(EnvPrefix + "_DATADIR"); dir != "" {
		cfg.DataDir = dir
	}
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}

	configPath := f.Config
	if configPath == "" {
		configPath = cfg.ConfigFile()
	}
	values, err := LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, values); err != nil {
		return nil, fmt.Errorf("applying config file: %w", err)
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}
	ApplyFlags(cfg, f)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	klog.Config.Debug().
		Str("file", configPath).
		Int("file_keys", len(values)).
		Str("network", string(cfg.Network)).
		Str("scheme", cfg.Address.Scheme).
		Str("hrp", cfg.Address.HRP).
		Msg("Configuration loaded")
	return cfg, nil
}
