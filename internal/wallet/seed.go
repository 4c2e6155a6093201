package wallet

import (
	"github.com/Klingon-tech/cphwallet/pkg/crypto"
	"github.com/Klingon-tech/cphwallet/pkg/types"
)

// GenerateSeed derives the 64-character upper-case hex seed of a mnemonic:
// SHA-256 over the exact UTF-8 bytes of the phrase.
//
// Legacy-compatible and deliberately weak: there is no salt and no key
// stretching, unlike the BIP-39 PBKDF2 seed. It is kept bit-for-bit so that
// existing wallets restore to the same addresses.
func GenerateSeed(mnemonic string) string {
	seed := crypto.LegacySeed(mnemonic)
	return types.EncodeHex(seed[:])
}
