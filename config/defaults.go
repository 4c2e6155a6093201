package config

// DefaultScheme is the address scheme used when none is configured.
const DefaultScheme = "bech32"

// DefaultMainnet returns the default configuration for mainnet.
func DefaultMainnet() *Config {
	return &Config{
		Network: Mainnet,
		DataDir: DefaultDataDir(),
		Address: AddressConfig{
			HRP:    MainnetHRP,
			Scheme: DefaultScheme,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}

// DefaultTestnet returns the default configuration for testnet.
func DefaultTestnet() *Config {
	cfg := DefaultMainnet()
	cfg.Network = Testnet
	cfg.Address.HRP = TestnetHRP
	return cfg
}

// Default returns the default configuration for the given network.
func Default(network NetworkType) *Config {
	switch network {
	case Testnet:
		return DefaultTestnet()
	default:
		return DefaultMainnet()
	}
}
