package wallet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tyler-smith/go-bip32"
)

// DefaultPath is the BIP-44 path reported on every identity.
// It is metadata only: keys are not derived along it.
const DefaultPath = "m/44'/60'/0'/0/0"

// ParsePath converts a BIP-44 style path ("m/44'/60'/0'/0/0") into child
// indices, with hardened components offset by bip32.FirstHardenedChild.
func ParsePath(path string) ([]uint32, error) {
	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, fmt.Errorf("path %q must start with \"m\"", path)
	}

	indices := make([]uint32, 0, len(parts)-1)
	for i, p := range parts[1:] {
		hardened := strings.HasSuffix(p, "'") || strings.HasSuffix(p, "h")
		if hardened {
			p = p[:len(p)-1]
		}
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("path %q component %d: %w", path, i+1, err)
		}
		if n >= uint64(bip32.FirstHardenedChild) {
			return nil, fmt.Errorf("path %q component %d: index %d out of range", path, i+1, n)
		}
		idx := uint32(n)
		if hardened {
			idx += bip32.FirstHardenedChild
		}
		indices = append(indices, idx)
	}
	return indices, nil
}
