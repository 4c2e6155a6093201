package crypto

import (
	"crypto/ed25519"

	"github.com/Klingon-tech/cphwallet/pkg/types"
)

// KeyPair is an Ed25519 key pair in the wallet's hex representation.
//
// PrivateKey is the 64-byte expanded form seed‖public, so its trailing 64 hex
// characters are always PublicKey.
type KeyPair struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// GenerateKeyPair derives an Ed25519 key pair from a 64-character hex seed.
// The derivation is deterministic: the same seed always yields the same pair.
func GenerateKeyPair(seed string) (KeyPair, error) {
	raw, err := types.DecodeHex(seed, "seed", types.SeedHexLen)
	if err != nil {
		return KeyPair{}, err
	}
	priv := ed25519.NewKeyFromSeed(raw)
	pub := priv.Public().(ed25519.PublicKey)
	return KeyPair{
		PublicKey:  types.EncodeHex(pub),
		PrivateKey: types.EncodeHex(priv),
	}, nil
}

// KeyPairFromPrivate rebuilds a key pair from a 128-character hex private key
// by taking its trailing half as the public key. No curve arithmetic is done.
func KeyPairFromPrivate(priv string) (KeyPair, error) {
	pub, err := PubKeyFromPrivKey(priv)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{
		PublicKey:  pub,
		PrivateKey: priv,
	}, nil
}

// PubKeyFromPrivKey extracts the public half (characters 64..128) of a
// 128-character hex private key.
func PubKeyFromPrivKey(priv string) (string, error) {
	if err := types.ValidateHex(priv, "privateKey", types.PrivateKeyHexLen); err != nil {
		return "", err
	}
	return priv[types.PrivateKeyHexLen/2:], nil
}
