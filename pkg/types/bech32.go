package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// InvalidEncodingError reports a bech32 string that cannot be decoded under
// the expected HRP: bad checksum, wrong prefix, bad characters or payload.
type InvalidEncodingError struct {
	Input string
	Err   error
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid bech32 address %q: %v", e.Input, e.Err)
}

func (e *InvalidEncodingError) Unwrap() error {
	return e.Err
}

// IsInvalidEncodingError reports whether err (or anything it wraps) is an *InvalidEncodingError.
func IsInvalidEncodingError(err error) bool {
	var ie *InvalidEncodingError
	return errors.As(err, &ie)
}

// ToBech32Address encodes a 40-character hex address as a bech32 string with
// the given human-readable part (BIP-173, lower-case).
func ToBech32Address(hrp, addr string) (string, error) {
	raw, err := DecodeHex(addr, "address", AddressHexLen)
	if err != nil {
		return "", err
	}
	return encodeBech32Address(hrp, raw)
}

// FromBech32Address decodes a bech32 address and returns the raw address as
// 40 upper-case hex characters. The string must carry exactly the given HRP.
func FromBech32Address(hrp, s string) (string, error) {
	addr, err := ParseBech32Address(hrp, s)
	if err != nil {
		return "", err
	}
	return addr.Hex(), nil
}

// ParseBech32Address decodes a bech32 address into an Address.
func ParseBech32Address(hrp, s string) (Address, error) {
	if err := ValidateHRP(hrp); err != nil {
		return Address{}, err
	}

	gotHRP, data5, version, err := bech32.DecodeGeneric(s)
	if err != nil {
		return Address{}, &InvalidEncodingError{Input: s, Err: err}
	}
	// Only the original BIP-173 checksum constant is accepted.
	if version != bech32.Version0 {
		return Address{}, &InvalidEncodingError{Input: s, Err: fmt.Errorf("unexpected bech32m checksum")}
	}
	if gotHRP != strings.ToLower(hrp) {
		return Address{}, &InvalidEncodingError{
			Input: s,
			Err:   fmt.Errorf("hrp mismatch: got %q, want %q", gotHRP, strings.ToLower(hrp)),
		}
	}

	data8, err := bech32.ConvertBits(data5, 5, 8, false)
	if err != nil {
		return Address{}, &InvalidEncodingError{Input: s, Err: fmt.Errorf("convert bits: %w", err)}
	}
	addr, err := BytesToAddress(data8)
	if err != nil {
		return Address{}, &InvalidEncodingError{Input: s, Err: err}
	}
	return addr, nil
}

func encodeBech32Address(hrp string, raw []byte) (string, error) {
	if err := ValidateHRP(hrp); err != nil {
		return "", err
	}
	if len(raw) != AddressSize {
		return "", fmt.Errorf("bech32: address must be %d bytes, got %d", AddressSize, len(raw))
	}

	// Convert 8-bit data to 5-bit groups.
	conv, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("bech32: convert bits: %w", err)
	}
	s, err := bech32.Encode(hrp, conv)
	if err != nil {
		return "", fmt.Errorf("bech32: encode: %w", err)
	}
	return s, nil
}

// Bech32 length limits. A decoder accepts at most maxBech32Len characters,
// and an address spends 1 (separator) + 32 (data) + 6 (checksum) of them.
const (
	maxBech32Len      = 90
	bech32ChecksumLen = 6
	addressDataLen    = (AddressSize*8 + 4) / 5

	// MaxHRPLen is the longest HRP whose addresses still decode.
	MaxHRPLen = maxBech32Len - 1 - addressDataLen - bech32ChecksumLen
)

// ValidateHRP rejects prefixes whose addresses could not round-trip through
// a decoder.
func ValidateHRP(hrp string) error {
	if len(hrp) == 0 {
		return fmt.Errorf("bech32: empty HRP")
	}
	if len(hrp) > MaxHRPLen {
		return fmt.Errorf("bech32: HRP longer than %d characters", MaxHRPLen)
	}
	for _, c := range hrp {
		if c < 33 || c > 126 {
			return fmt.Errorf("bech32: invalid HRP character %q", c)
		}
	}
	return nil
}
