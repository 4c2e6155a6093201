package crypto

import (
	"bytes"
	"crypto/ed25519"

	"github.com/Klingon-tech/cphwallet/pkg/types"
)

// Signer produces detached Ed25519 signatures.
type Signer interface {
	// Sign produces a 64-byte signature over message.
	Sign(message []byte) ([]byte, error)
	// PublicKey returns the 32-byte public key.
	PublicKey() []byte
}

// Verifier verifies detached Ed25519 signatures.
type Verifier interface {
	// Verify checks a signature against a message and 32-byte public key.
	Verify(message, signature, publicKey []byte) bool
}

// PrivateKey wraps an Ed25519 private key for signing.
type PrivateKey struct {
	key ed25519.PrivateKey
}

// PrivateKeyFromHex parses a 128-character hex private key (seed‖public).
// The public half must match the key derived from the seed half.
func PrivateKeyFromHex(priv string) (*PrivateKey, error) {
	raw, err := types.DecodeHex(priv, "privateKey", types.PrivateKeyHexLen)
	if err != nil {
		return nil, err
	}
	key := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	if !bytes.Equal(key[ed25519.SeedSize:], raw[ed25519.SeedSize:]) {
		return nil, &types.ValidationError{
			Name:     "privateKey",
			Expected: types.PrivateKeyHexLen,
			Reason:   "public half does not match seed half",
		}
	}
	return &PrivateKey{key: key}, nil
}

// Sign produces a detached Ed25519 signature over message.
func (pk *PrivateKey) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(pk.key, message), nil
}

// PublicKey returns the 32-byte public key.
func (pk *PrivateKey) PublicKey() []byte {
	pub := make([]byte, ed25519.PublicKeySize)
	copy(pub, pk.key[ed25519.SeedSize:])
	return pub
}

// Zero securely zeroes the private key memory.
func (pk *PrivateKey) Zero() {
	clear(pk.key)
}

// Sign signs message with a 128-character hex private key and returns the
// signature as 128 upper-case hex characters. Ed25519 signing is
// deterministic, so equal inputs give equal signatures.
func Sign(priv string, message []byte) (string, error) {
	key, err := PrivateKeyFromHex(priv)
	if err != nil {
		return "", err
	}
	defer key.Zero()

	sig, err := key.Sign(message)
	if err != nil {
		return "", err
	}
	return types.EncodeHex(sig), nil
}

// Verify checks a hex signature over message with Ed25519Verifier.
func Verify(key string, message []byte, signature string) bool {
	return VerifyWith(Ed25519Verifier{}, key, message, signature)
}

// VerifyWith decodes a hex key and signature and hands them to v. key may be
// a 64-character public key or a 128-character private key, whose public
// half is used. Returns false on any malformed input.
func VerifyWith(v Verifier, key string, message []byte, signature string) bool {
	pubHex := key
	if len(key) == types.PrivateKeyHexLen {
		var err error
		if pubHex, err = PubKeyFromPrivKey(key); err != nil {
			return false
		}
	}
	pub, err := types.DecodeHex(pubHex, "publicKey", types.PublicKeyHexLen)
	if err != nil {
		return false
	}
	sig, err := types.DecodeHex(signature, "signature", types.SignatureHexLen)
	if err != nil {
		return false
	}
	return v.Verify(message, sig, pub)
}

// VerifySignature checks a raw Ed25519 signature against a message and a
// 32-byte public key. Returns false on any error.
func VerifySignature(message, signature, publicKey []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize || len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), message, signature)
}

// Ed25519Verifier implements the Verifier interface.
type Ed25519Verifier struct{}

// Verify checks an Ed25519 signature against a message and public key.
func (v Ed25519Verifier) Verify(message, signature, publicKey []byte) bool {
	return VerifySignature(message, signature, publicKey)
}
