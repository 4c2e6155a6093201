package wallet

// Identity is the wallet record handed back to callers. Each call builds a
// fresh Identity; nothing in it is shared with the Service.
type Identity struct {
	Address       string `json:"address"`                 // 40 upper-case hex chars
	Bech32Address string `json:"bech32address,omitempty"` // empty under the hash-pipeline scheme
	Mnemonic      string `json:"mnemonic,omitempty"`      // empty when restored from a private key
	Path          string `json:"path"`
	PrivateKey    string `json:"privateKey"`
	PublicKey     string `json:"publicKey"`
	Scheme        string `json:"scheme"`
}

// DisplayAddress returns the bech32 form when present, else the hex address.
func (id *Identity) DisplayAddress() string {
	if id.Bech32Address != "" {
		return id.Bech32Address
	}
	return id.Address
}
