package types

import (
	"encoding/json"
	"fmt"
)

// AddressSize is the length of an address in bytes.
const AddressSize = 20

// Address represents a 160-bit address derived one-way from a public key.
// Which derivation produced it depends on the address scheme in use.
type Address [AddressSize]byte

// IsZero returns true if the address is all zeros.
func (a Address) IsZero() bool {
	return a == Address{}
}

// String returns the upper-case hex address.
func (a Address) String() string {
	return a.Hex()
}

// Hex returns the 40-character upper-case hex encoding of the address.
func (a Address) Hex() string {
	return EncodeHex(a[:])
}

// Bytes returns a copy of the address as a byte slice.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressSize)
	copy(b, a[:])
	return b
}

// Bech32 returns the bech32 form of the address under the given HRP.
func (a Address) Bech32(hrp string) (string, error) {
	return encodeBech32Address(hrp, a[:])
}

// MarshalJSON encodes the address as upper-case hex.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Hex())
}

// UnmarshalJSON decodes a 40-character hex string into an address.
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := HexToAddress(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// HexToAddress converts a raw hex string to an Address.
// Returns a *ValidationError if the string is not exactly 40 hex characters.
func HexToAddress(s string) (Address, error) {
	b, err := DecodeHex(s, "address", AddressHexLen)
	if err != nil {
		return Address{}, err
	}
	return BytesToAddress(b)
}

// BytesToAddress copies a 20-byte slice into an Address.
func BytesToAddress(b []byte) (Address, error) {
	if len(b) != AddressSize {
		return Address{}, fmt.Errorf("address must be %d bytes, got %d", AddressSize, len(b))
	}
	var a Address
	copy(a[:], b)
	return a, nil
}
