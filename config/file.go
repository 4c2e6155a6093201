package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadFile reads a .conf file into a key/value map.
// Format: key = value, one per line, # starts a comment. A missing file
// yields an empty map.
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%s:%d: expected key = value", path, lineNum)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			return nil, fmt.Errorf("%s:%d: empty key", path, lineNum)
		}
		values[key] = unquote(strings.TrimSpace(value))
	}
	return values, scanner.Err()
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// ApplyFileConfig applies file values to cfg.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	case "network":
		cfg.SetNetwork(NetworkType(strings.ToLower(value)))
	case "datadir":
		cfg.DataDir = value

	// Address
	case "address.hrp", "hrp":
		cfg.SetHRP(value)
	case "address.scheme", "scheme":
		cfg.Address.Scheme = strings.ToLower(value)

	// Logging
	case "log.level":
		cfg.Log.Level = strings.ToLower(value)
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		cfg.Log.JSON = b

	default:
		// Unknown keys are ignored
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

// WriteDefaultConfig writes a commented default configuration file. It
// refuses to overwrite an existing file.
func WriteDefaultConfig(path string, network NetworkType) error {
	cfg := Default(network)
	content := `# cphwallet configuration
#
# Environment variables (CPH_NETWORK, CPH_HRP, CPH_ADDRESS_SCHEME,
# CPH_LOG_LEVEL, CPH_LOG_FILE, CPH_LOG_JSON) override this file, and
# command-line flags override both.

# Network: mainnet or testnet
network = ` + string(cfg.Network) + `

# ============================================================================
# Addresses
# ============================================================================

# Address scheme: bech32 (SHA-256 address, bech32 presentation) or
# hash-pipeline (RIPEMD160(SHA3-256(pubkey)), hex only)
address.scheme = ` + cfg.Address.Scheme + `

# Bech32 human-readable prefix (mainnet: ` + MainnetHRP + `, testnet: ` + TestnetHRP + `)
address.hrp = ` + cfg.Address.HRP + `

# ============================================================================
# Logging
# ============================================================================

log.level = ` + cfg.Log.Level + `
# log.file =
log.json = false
`
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
