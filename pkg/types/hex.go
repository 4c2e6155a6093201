// Package types defines the primitive key and address types shared by the
// wallet core, together with the input validation that guards them.
package types

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Expected hex lengths (in characters) of the values handled by the wallet.
const (
	SeedHexLen       = 64
	PublicKeyHexLen  = 64
	PrivateKeyHexLen = 128
	AddressHexLen    = 40
	SignatureHexLen  = 128
)

// ValidationError reports a hex input with the wrong length or charset.
type ValidationError struct {
	Name     string // name of the offending input, e.g. "seed"
	Expected int    // expected length in hex characters
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: expected %d hex characters: %s", e.Name, e.Expected, e.Reason)
}

// IsValidationError reports whether err (or anything it wraps) is a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidateHex checks that s is exactly expectedLen characters of [0-9A-Fa-f].
// Every cryptographic operation in the wallet runs behind this check.
func ValidateHex(s, name string, expectedLen int) error {
	if len(s) != expectedLen {
		return &ValidationError{
			Name:     name,
			Expected: expectedLen,
			Reason:   fmt.Sprintf("got %d", len(s)),
		}
	}
	for i := 0; i < len(s); i++ {
		if !isHexChar(s[i]) {
			return &ValidationError{
				Name:     name,
				Expected: expectedLen,
				Reason:   fmt.Sprintf("non-hex character %q at offset %d", s[i], i),
			}
		}
	}
	return nil
}

// DecodeHex validates s and returns its raw bytes.
func DecodeHex(s, name string, expectedLen int) ([]byte, error) {
	if err := ValidateHex(s, name, expectedLen); err != nil {
		return nil, err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		// Unreachable after ValidateHex.
		return nil, &ValidationError{Name: name, Expected: expectedLen, Reason: err.Error()}
	}
	return b, nil
}

// EncodeHex renders b as upper-case hex, the wallet's output format.
func EncodeHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func isHexChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
