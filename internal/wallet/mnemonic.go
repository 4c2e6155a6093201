// Package wallet assembles wallet identities: mnemonic, seed, key pair and
// address, under a configurable address scheme.
package wallet

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// MnemonicEntropyBits is the entropy size for 12-word mnemonics.
const MnemonicEntropyBits = 128

// UnsupportedMnemonicError reports a phrase that fails BIP-39 validation.
// ValidateMnemonic itself only returns false; this error is what callers that
// need a key pair get back.
type UnsupportedMnemonicError struct {
	Words int
}

func (e *UnsupportedMnemonicError) Error() string {
	return fmt.Sprintf("unsupported mnemonic (%d words): wrong word count, unknown word or bad checksum", e.Words)
}

// GenerateMnemonic creates a new 12-word BIP-39 mnemonic from crypto/rand.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(MnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

func checkMnemonic(mnemonic string) error {
	if !ValidateMnemonic(mnemonic) {
		return &UnsupportedMnemonicError{Words: len(strings.Fields(mnemonic))}
	}
	return nil
}
