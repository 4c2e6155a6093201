package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Klingon-tech/cphwallet/internal/wallet"
	"github.com/Klingon-tech/cphwallet/pkg/types"
)

const (
	testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testSeed     = "C557EEC878DFD852BA3F88087C4F350F09C55537AB5E549C3CD14320EC3CEF38"
	testPub      = "93A5F261984931E0DF5C7434B16D468EFB1953098D3CAD4FA1506B9E052E7FC7"
	testPriv     = testSeed + testPub
	testSHAAddr  = "6A1A68CB8C8B2DEA2B4885FBC8DDC7FFF163F2C9"
	testHashAddr = "2AAABF7891BE922A9EE0268A9D86112DB41F1A89"
	testBech32   = "cph1dgdx3juv3vk7526gshau3hw8llck8ukf05t6sk"
	testSigHello = "489D6BE2266001690438A1D8FEA5B93D40FADBDBBB7E27C6C0EFA33B5D34226A987AAA29F667E4B5EBDE489432F3C27508B27322A2680C22708DE9835FCF4D0F"
)

// run executes the CLI in an empty data directory and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--datadir", t.TempDir()}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func decode[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	return v
}

func TestRestore_Stdin(t *testing.T) {
	out, _, err := run(t, testMnemonic+"\n", "restore")
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	id := decode[wallet.Identity](t, out)
	if id.Address != testSHAAddr || id.Bech32Address != testBech32 {
		t.Errorf("address = %s / %s", id.Address, id.Bech32Address)
	}
	if id.Mnemonic != testMnemonic || id.PrivateKey != testPriv || id.Path != wallet.DefaultPath {
		t.Errorf("identity = %+v", id)
	}
}

func TestRestore_HashPipeline(t *testing.T) {
	out, _, err := run(t, "", "--scheme", "hash-pipeline", "restore", "--mnemonic", testMnemonic)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	id := decode[wallet.Identity](t, out)
	if id.Address != testHashAddr || id.Bech32Address != "" {
		t.Errorf("address = %s / %q", id.Address, id.Bech32Address)
	}
	if id.Scheme != wallet.SchemeHashPipeline {
		t.Errorf("scheme = %s", id.Scheme)
	}
}

func TestRestore_Testnet(t *testing.T) {
	out, _, err := run(t, "", "--network", "testnet", "restore", "--mnemonic", testMnemonic)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	id := decode[wallet.Identity](t, out)
	if !strings.HasPrefix(id.Bech32Address, "tcph1") {
		t.Errorf("testnet address should use tcph prefix, got %s", id.Bech32Address)
	}
	if id.Address != testSHAAddr {
		t.Errorf("raw address should not depend on network, got %s", id.Address)
	}
}

func TestRestore_Invalid(t *testing.T) {
	_, _, err := run(t, "", "restore", "--mnemonic", "abandon abandon abandon")
	var ume *wallet.UnsupportedMnemonicError
	if !errors.As(err, &ume) {
		t.Errorf("expected UnsupportedMnemonicError, got %v", err)
	}
}

func TestRestore_NoInput(t *testing.T) {
	if _, _, err := run(t, "", "restore"); err == nil {
		t.Error("expected error with empty stdin")
	}
}

func TestCreate(t *testing.T) {
	out, errOut, err := run(t, "", "create", "--qr")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := decode[wallet.Identity](t, out)
	if !wallet.ValidateMnemonic(id.Mnemonic) {
		t.Errorf("mnemonic should validate: %q", id.Mnemonic)
	}
	if !strings.Contains(errOut, "Write the mnemonic down") {
		t.Error("create should warn about the mnemonic on stderr")
	}
	if len(errOut) < 100 {
		t.Error("--qr should print a QR code on stderr")
	}
}

func TestImport(t *testing.T) {
	out, _, err := run(t, "", "import", "--key", testPriv)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	id := decode[wallet.Identity](t, out)
	if id.PublicKey != testPub || id.Address != testSHAAddr || id.Mnemonic != "" {
		t.Errorf("identity = %+v", id)
	}

	_, _, err = run(t, testPriv[:127]+"\n", "import")
	if !types.IsValidationError(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestSignVerify(t *testing.T) {
	out, _, err := run(t, testPriv+"\n", "sign", "hello")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	res := decode[signResult](t, out)
	if res.Signature != testSigHello {
		t.Errorf("signature = %s, want %s", res.Signature, testSigHello)
	}
	if res.PublicKey != testPub {
		t.Errorf("publicKey = %s", res.PublicKey)
	}

	out, _, err = run(t, "", "verify", testPub, testSigHello, "hello")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !decode[verifyResult](t, out).Valid {
		t.Error("signature should verify")
	}

	out, _, err = run(t, "", "verify", testPub, testSigHello, "hellO")
	if !errors.Is(err, errInvalidSignature) {
		t.Errorf("expected errInvalidSignature, got %v", err)
	}
	if decode[verifyResult](t, out).Valid {
		t.Error("tampered message should not verify")
	}
}

func TestSign_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg.txt")
	if err := os.WriteFile(path, []byte("hello"), 0600); err != nil {
		t.Fatal(err)
	}
	out, _, err := run(t, "", "sign", "--key", testPriv, "--file", path)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if decode[signResult](t, out).Signature != testSigHello {
		t.Error("file signature should match the inline message signature")
	}

	if _, _, err := run(t, "", "sign", "--key", testPriv, "--file", path, "hello"); err == nil {
		t.Error("message argument and --file together should fail")
	}
	if _, _, err := run(t, "", "sign", "--key", testPriv); err == nil {
		t.Error("missing message should fail")
	}
}

func TestAddressCommands(t *testing.T) {
	out, errOut, err := run(t, "", "address", "from-pubkey", testPub, "--qr")
	if err != nil {
		t.Fatalf("from-pubkey: %v", err)
	}
	res := decode[addressResult](t, out)
	if res.Address != testSHAAddr || res.Bech32Address != testBech32 {
		t.Errorf("from-pubkey = %+v", res)
	}
	if errOut == "" {
		t.Error("--qr should print to stderr")
	}

	out, _, err = run(t, "", "--scheme", "hash-pipeline", "address", "from-privkey", "--key", testPriv)
	if err != nil {
		t.Fatalf("from-privkey: %v", err)
	}
	res = decode[addressResult](t, out)
	if res.Address != testHashAddr || res.Bech32Address != "" {
		t.Errorf("from-privkey = %+v", res)
	}

	out, _, err = run(t, "", "address", "from-privkey", "--key", testPriv)
	if err != nil {
		t.Fatalf("from-privkey: %v", err)
	}
	res = decode[addressResult](t, out)
	if res.Address != testSHAAddr || res.Bech32Address != testBech32 {
		t.Errorf("from-privkey bech32 = %+v", res)
	}

	out, _, err = run(t, "", "address", "validate", testPub, testBech32)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !decode[verifyResult](t, out).Valid {
		t.Error("address should validate")
	}

	out, _, err = run(t, "", "address", "to-bech32", strings.ToLower(testSHAAddr))
	if err != nil {
		t.Fatalf("to-bech32: %v", err)
	}
	res = decode[addressResult](t, out)
	if res.Bech32Address != testBech32 || res.Address != testSHAAddr {
		t.Errorf("to-bech32 = %+v", res)
	}

	out, _, err = run(t, "", "address", "from-bech32", testBech32)
	if err != nil {
		t.Fatalf("from-bech32: %v", err)
	}
	if decode[addressResult](t, out).Address != testSHAAddr {
		t.Errorf("from-bech32 = %s", out)
	}

	_, _, err = run(t, "", "--network", "testnet", "address", "from-bech32", testBech32)
	if !types.IsInvalidEncodingError(err) {
		t.Errorf("mainnet address on testnet should fail decoding, got %v", err)
	}
}

func TestPathCommand(t *testing.T) {
	out, _, err := run(t, "", "path")
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	res := decode[pathResult](t, out)
	if res.Path != wallet.DefaultPath {
		t.Errorf("path = %s, want %s", res.Path, wallet.DefaultPath)
	}
	wantIdx := []uint32{0x8000002C, 0x8000003C, 0x80000000, 0, 0}
	if len(res.Indices) != len(wantIdx) {
		t.Fatalf("indices = %v, want %v", res.Indices, wantIdx)
	}
	for i := range wantIdx {
		if res.Indices[i] != wantIdx[i] {
			t.Errorf("indices[%d] = %#x, want %#x", i, res.Indices[i], wantIdx[i])
		}
	}
	wantComp := []pathComponent{{44, true}, {60, true}, {0, true}, {0, false}, {0, false}}
	for i := range wantComp {
		if res.Components[i] != wantComp[i] {
			t.Errorf("components[%d] = %+v, want %+v", i, res.Components[i], wantComp[i])
		}
	}

	out, _, err = run(t, "", "path", "m/0h/7")
	if err != nil {
		t.Fatalf("path m/0h/7: %v", err)
	}
	res = decode[pathResult](t, out)
	if len(res.Indices) != 2 || res.Indices[0] != 0x80000000 || res.Indices[1] != 7 {
		t.Errorf("indices = %v", res.Indices)
	}

	if _, _, err := run(t, "", "path", "44'/60'"); err == nil {
		t.Error("path without m/ prefix should fail")
	}
}

func TestMnemonicCommands(t *testing.T) {
	out, _, err := run(t, "", "mnemonic", "new")
	if err != nil {
		t.Fatalf("mnemonic new: %v", err)
	}
	if !wallet.ValidateMnemonic(decode[mnemonicResult](t, out).Mnemonic) {
		t.Error("generated mnemonic should validate")
	}

	out, _, err = run(t, testMnemonic+"\r\n", "mnemonic", "seed")
	if err != nil {
		t.Fatalf("mnemonic seed: %v", err)
	}
	if decode[seedResult](t, out).Seed != testSeed {
		t.Errorf("seed = %s", out)
	}

	out, _, err = run(t, "", "mnemonic", "validate", "--mnemonic", "abandon about")
	if err != nil {
		t.Fatalf("mnemonic validate: %v", err)
	}
	if decode[verifyResult](t, out).Valid {
		t.Error("two-word phrase should not validate")
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "cphwallet.conf")

	out, _, err := run(t, "", "--network", "testnet", "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("output = %q, want %q", out, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "network = testnet") {
		t.Errorf("config should be for testnet:\n%s", data)
	}

	if _, _, err := run(t, "", "--config", path, "config", "init"); err == nil {
		t.Error("config init should not overwrite an existing file")
	}

	// The written file is picked up by later commands.
	out, _, err = run(t, "", "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, `"hrp": "tcph"`) {
		t.Errorf("config show = %s", out)
	}
}

func TestInvalidConfigFlag(t *testing.T) {
	if _, _, err := run(t, "", "--scheme", "base58", "mnemonic", "new"); err == nil {
		t.Error("unknown scheme should fail")
	}
	if _, _, err := run(t, "", "--network", "devnet", "mnemonic", "new"); err == nil {
		t.Error("unknown network should fail")
	}
}
