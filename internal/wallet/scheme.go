package wallet

import (
	"fmt"
	"strings"

	"github.com/Klingon-tech/cphwallet/pkg/crypto"
	"github.com/Klingon-tech/cphwallet/pkg/types"
)

// Scheme names accepted by NewScheme.
const (
	SchemeBech32       = "bech32"
	SchemeHashPipeline = "hash-pipeline"
)

// AddressScheme turns a public key into an address. The two implementations
// produce incompatible address families; a deployment uses exactly one.
type AddressScheme interface {
	// Name returns the configuration name of the scheme.
	Name() string
	// Derive returns the raw address of a 64-character hex public key and,
	// when the scheme has one, its bech32 form.
	Derive(pubHex string) (types.Address, string, error)
	// Validate reports whether addr is the address of pubHex under this scheme.
	Validate(pubHex, addr string) bool
}

// Bech32Scheme addresses a key by the trailing 20 bytes of SHA-256(pubkey)
// and presents it bech32-encoded under HRP.
type Bech32Scheme struct {
	HRP string
}

// Name implements AddressScheme.
func (s Bech32Scheme) Name() string { return SchemeBech32 }

// Derive implements AddressScheme.
func (s Bech32Scheme) Derive(pubHex string) (types.Address, string, error) {
	pub, err := types.DecodeHex(pubHex, "publicKey", types.PublicKeyHexLen)
	if err != nil {
		return types.Address{}, "", err
	}
	addr := crypto.SHA256AddressFromPubKey(pub)
	b32, err := addr.Bech32(s.HRP)
	if err != nil {
		return types.Address{}, "", fmt.Errorf("encode bech32 address: %w", err)
	}
	return addr, b32, nil
}

// Validate implements AddressScheme. addr may be raw hex or bech32 under HRP.
func (s Bech32Scheme) Validate(pubHex, addr string) bool {
	want, _, err := s.Derive(pubHex)
	if err != nil {
		return false
	}
	if got, err := types.HexToAddress(addr); err == nil {
		return got == want
	}
	got, err := types.ParseBech32Address(s.HRP, addr)
	return err == nil && got == want
}

// HashPipelineScheme addresses a key by RIPEMD160(SHA3-256(pubkey)). It has
// no bech32 form.
type HashPipelineScheme struct{}

// Name implements AddressScheme.
func (HashPipelineScheme) Name() string { return SchemeHashPipeline }

// Derive implements AddressScheme.
func (HashPipelineScheme) Derive(pubHex string) (types.Address, string, error) {
	pub, err := types.DecodeHex(pubHex, "publicKey", types.PublicKeyHexLen)
	if err != nil {
		return types.Address{}, "", err
	}
	return crypto.AddressFromPubKey(pub), "", nil
}

// Validate implements AddressScheme.
func (HashPipelineScheme) Validate(pubHex, addr string) bool {
	return crypto.ValidateAddress(pubHex, addr)
}

// NewScheme selects an address scheme by its configuration name.
// hrp is required by, and only used for, the bech32 scheme.
func NewScheme(name, hrp string) (AddressScheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case SchemeBech32:
		if hrp == "" {
			return nil, fmt.Errorf("scheme %q requires an HRP", SchemeBech32)
		}
		return Bech32Scheme{HRP: hrp}, nil
	case SchemeHashPipeline:
		return HashPipelineScheme{}, nil
	default:
		return nil, fmt.Errorf("unknown address scheme %q (want %q or %q)", name, SchemeBech32, SchemeHashPipeline)
	}
}
