package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "CPH"

// envOverlay mirrors the settings that may come from the environment.
// Empty strings and nil pointers mean "not set".
type envOverlay struct {
	Network  string `envconfig:"NETWORK"`
	DataDir  string `envconfig:"DATADIR"`
	HRP      string `envconfig:"HRP"`
	Scheme   string `envconfig:"ADDRESS_SCHEME"`
	LogLevel string `envconfig:"LOG_LEVEL"`
	LogFile  string `envconfig:"LOG_FILE"`
	LogJSON  *bool  `envconfig:"LOG_JSON"`
}

// ApplyEnv overlays CPH_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var env envOverlay
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("process environment: %w", err)
	}

	if env.Network != "" {
		cfg.SetNetwork(NetworkType(strings.ToLower(env.Network)))
	}
	if env.DataDir != "" {
		cfg.DataDir = env.DataDir
	}
	if env.HRP != "" {
		cfg.SetHRP(env.HRP)
	}
	if env.Scheme != "" {
		cfg.Address.Scheme = strings.ToLower(env.Scheme)
	}
	if env.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(env.LogLevel)
	}
	if env.LogFile != "" {
		cfg.Log.File = env.LogFile
	}
	if env.LogJSON != nil {
		cfg.Log.JSON = *env.LogJSON
	}
	return nil
}
