package wallet

import (
	"fmt"
	"strings"

	klog "github.com/Klingon-tech/cphwallet/internal/log"
	"github.com/Klingon-tech/cphwallet/pkg/crypto"
	"github.com/Klingon-tech/cphwallet/pkg/types"
	"github.com/rs/zerolog"
)

// Service builds wallet identities under one address scheme. Its only state
// is the scheme, HRP and verifier fixed at construction, so it is safe for
// concurrent use.
type Service struct {
	scheme   AddressScheme
	hrp      string
	verifier crypto.Verifier
	logger   zerolog.Logger
}

// NewService creates a Service. hrp is the network's bech32 prefix; a nil
// scheme defaults to Bech32Scheme under that prefix. A Bech32Scheme bound to
// a different prefix is rejected.
func NewService(scheme AddressScheme, hrp string) (*Service, error) {
	if err := types.ValidateHRP(hrp); err != nil {
		return nil, err
	}
	switch sc := scheme.(type) {
	case nil:
		scheme = Bech32Scheme{HRP: hrp}
	case Bech32Scheme:
		if !strings.EqualFold(sc.HRP, hrp) {
			return nil, fmt.Errorf("scheme HRP %q does not match service HRP %q", sc.HRP, hrp)
		}
	}
	return &Service{
		scheme:   scheme,
		hrp:      hrp,
		verifier: crypto.Ed25519Verifier{},
		logger:   klog.Wallet,
	}, nil
}

// Scheme returns the address scheme in use.
func (s *Service) Scheme() AddressScheme {
	return s.scheme
}

// HRP returns the configured bech32 prefix.
func (s *Service) HRP() string {
	return s.hrp
}

// CreateRandom generates a fresh mnemonic and derives its identity.
func (s *Service) CreateRandom() (*Identity, error) {
	mnemonic, err := GenerateMnemonic()
	if err != nil {
		return nil, err
	}
	id, err := s.fromSeed(mnemonic)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("scheme", id.Scheme).Str("address", id.DisplayAddress()).Msg("Created random wallet")
	return id, nil
}

// FromMnemonic restores the identity of a BIP-39 mnemonic. Phrases that fail
// validation return *UnsupportedMnemonicError.
func (s *Service) FromMnemonic(mnemonic string) (*Identity, error) {
	if err := checkMnemonic(mnemonic); err != nil {
		return nil, err
	}
	id, err := s.fromSeed(mnemonic)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("scheme", id.Scheme).Str("address", id.DisplayAddress()).Msg("Restored wallet from mnemonic")
	return id, nil
}

// FromPrivateKey restores an identity from a 128-character hex private key.
// The result carries no mnemonic.
func (s *Service) FromPrivateKey(priv string) (*Identity, error) {
	kp, err := crypto.KeyPairFromPrivate(priv)
	if err != nil {
		return nil, err
	}
	id, err := s.assemble(kp, "")
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("scheme", id.Scheme).Str("address", id.DisplayAddress()).Msg("Restored wallet from private key")
	return id, nil
}

// fromSeed runs mnemonic -> seed -> key pair -> identity.
func (s *Service) fromSeed(mnemonic string) (*Identity, error) {
	kp, err := crypto.GenerateKeyPair(GenerateSeed(mnemonic))
	if err != nil {
		return nil, fmt.Errorf("derive key pair: %w", err)
	}
	return s.assemble(kp, mnemonic)
}

func (s *Service) assemble(kp crypto.KeyPair, mnemonic string) (*Identity, error) {
	addr, b32, err := s.scheme.Derive(kp.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("derive address: %w", err)
	}
	return &Identity{
		Address:       addr.Hex(),
		Bech32Address: b32,
		Mnemonic:      mnemonic,
		Path:          DefaultPath,
		PrivateKey:    kp.PrivateKey,
		PublicKey:     kp.PublicKey,
		Scheme:        s.scheme.Name(),
	}, nil
}

// PubKeyFromPrivKey extracts the public half of a 128-character hex private key.
func (s *Service) PubKeyFromPrivKey(priv string) (string, error) {
	return crypto.PubKeyFromPrivKey(priv)
}

// AddressFromPrivKey returns the hex address (and bech32 form, if any) of a
// 128-character hex private key under the service's scheme.
func (s *Service) AddressFromPrivKey(priv string) (string, string, error) {
	pub, err := crypto.PubKeyFromPrivKey(priv)
	if err != nil {
		return "", "", err
	}
	return s.AddressFromPubKey(pub)
}

// AddressFromPubKey returns the hex address (and bech32 form, if any) of a
// 64-character hex public key under the service's scheme.
func (s *Service) AddressFromPubKey(pub string) (string, string, error) {
	addr, b32, err := s.scheme.Derive(pub)
	if err != nil {
		return "", "", err
	}
	return addr.Hex(), b32, nil
}

// ValidateAddress reports whether addr belongs to pub under the service's scheme.
func (s *Service) ValidateAddress(pub, addr string) bool {
	return s.scheme.Validate(pub, addr)
}

// ToBech32 encodes a 40-character hex address under the configured HRP.
func (s *Service) ToBech32(addr string) (string, error) {
	return types.ToBech32Address(s.hrp, addr)
}

// FromBech32 decodes a bech32 address under the configured HRP.
func (s *Service) FromBech32(b32 string) (string, error) {
	return types.FromBech32Address(s.hrp, b32)
}

// Sign returns the hex detached signature of message under priv.
func (s *Service) Sign(priv string, message []byte) (string, error) {
	return crypto.Sign(priv, message)
}

// Verify checks a hex detached signature. key may be a public or private key.
func (s *Service) Verify(key string, message []byte, signature string) bool {
	return crypto.VerifyWith(s.verifier, key, message, signature)
}
