// Package crypto provides the hashing, key-pair and signature primitives of
// the wallet core.
package crypto

import (
	"crypto/sha256"
	"strings"

	"github.com/Klingon-tech/cphwallet/pkg/types"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // address format is fixed
	"golang.org/x/crypto/sha3"
)

// LegacySeed hashes a mnemonic into a 32-byte seed with a single unsalted
// SHA-256 round over its UTF-8 bytes.
//
// This is weaker than the BIP-39 PBKDF2 seed and exists only so that wallets
// created by earlier clients keep their addresses. Do not use it for new
// key material outside that compatibility path.
func LegacySeed(mnemonic string) [32]byte {
	return sha256.Sum256([]byte(mnemonic))
}

// AddressFromPubKey derives an address with the hash pipeline:
// Address = RIPEMD160(SHA3-256(pubkey)).
func AddressFromPubKey(pubKey []byte) types.Address {
	h := sha3.Sum256(pubKey)
	r := ripemd160.New()
	r.Write(h[:])
	var addr types.Address
	copy(addr[:], r.Sum(nil))
	return addr
}

// SHA256AddressFromPubKey derives the raw address wrapped by the bech32
// scheme: the trailing 20 bytes of SHA-256(pubkey).
func SHA256AddressFromPubKey(pubKey []byte) types.Address {
	h := sha256.Sum256(pubKey)
	var addr types.Address
	copy(addr[:], h[len(h)-types.AddressSize:])
	return addr
}

// HexAddressFromPubKey validates a 64-character hex public key and returns its
// hash-pipeline address as 40 upper-case hex characters.
func HexAddressFromPubKey(pubHex string) (string, error) {
	pub, err := types.DecodeHex(pubHex, "publicKey", types.PublicKeyHexLen)
	if err != nil {
		return "", err
	}
	return AddressFromPubKey(pub).Hex(), nil
}

// ValidateAddress recomputes the hash-pipeline address of pubHex and compares
// it to addr, ignoring case. Malformed inputs yield false.
func ValidateAddress(pubHex, addr string) bool {
	want, err := HexAddressFromPubKey(pubHex)
	if err != nil {
		return false
	}
	if types.ValidateHex(addr, "address", types.AddressHexLen) != nil {
		return false
	}
	return strings.EqualFold(want, addr)
}
