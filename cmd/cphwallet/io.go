package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readSecret returns a secret from stdin. On a terminal it prompts on stderr
// and reads without echo; otherwise it reads one line. Only the line
// terminator is stripped, since seeds hash the exact phrase.
func readSecret(cmd *cobra.Command, prompt string) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr()) // newline after hidden input
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		defer clear(raw)
		return string(raw), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", errors.New("no input on stdin")
		}
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// secretArg returns the flag value when set, else reads from stdin.
func secretArg(cmd *cobra.Command, flag, prompt string) (string, error) {
	if cmd.Flags().Changed(flag) {
		v, err := cmd.Flags().GetString(flag)
		if err != nil {
			return "", err
		}
		return v, nil
	}
	return readSecret(cmd, prompt)
}

// messageArg returns the message to sign or verify: the contents of --file
// when given, else the positional argument at idx.
func messageArg(cmd *cobra.Command, args []string, idx int) ([]byte, error) {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}
	if file != "" {
		if len(args) > idx {
			return nil, errors.New("pass the message either as an argument or with --file, not both")
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read message: %w", err)
		}
		return data, nil
	}
	if len(args) <= idx {
		return nil, errors.New("missing message (argument or --file)")
	}
	return []byte(args[idx]), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printQR renders content as a terminal QR code on stderr, keeping stdout
// machine-readable.
func printQR(cmd *cobra.Command, content string) error {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("create QR code: %w", err)
	}
	fmt.Fprint(cmd.ErrOrStderr(), qr.ToSmallString(false))
	return nil
}
