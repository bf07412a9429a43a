package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/seitlab/recrypt/pkg/pre"
)

type cli struct {
	Setup     setupCmd     `cmd:"" help:"Generate a new set of scheme parameters."`
	Keygen    keygenCmd    `cmd:"" help:"Generate a new key pair."`
	Encrypt   encryptCmd   `cmd:"" help:"Encrypt a message to a public key."`
	Decrypt   decryptCmd   `cmd:"" help:"Decrypt a transformed ciphertext."`
	Rekeygen  rekeygenCmd  `cmd:"" help:"Derive a re-encryption key for a delegation."`
	Reencrypt reencryptCmd `cmd:"" help:"Transform a ciphertext for a delegatee."`
	Info      infoCmd      `cmd:"" help:"Show scheme facts for a set of parameters."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func decodeParams(pathOrParams string) (*pre.Params, error) {
	// Try decoding the parameters directly.
	var params pre.Params
	if err := json.Unmarshal([]byte(pathOrParams), &params); err == nil {
		return &params, nil
	}

	// Otherwise, try reading the contents of it as a file.
	b, err := os.ReadFile(pathOrParams)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(b, &params); err != nil {
		return nil, err
	}

	return &params, nil
}

func decodeCiphertext(pathOrCiphertext string) (*pre.Ciphertext, error) {
	// Try decoding the ciphertext directly.
	var ct pre.Ciphertext
	if err := json.Unmarshal([]byte(pathOrCiphertext), &ct); err == nil {
		return &ct, nil
	}

	// Otherwise, try reading the contents of it as a file.
	b, err := os.ReadFile(pathOrCiphertext)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(b, &ct); err != nil {
		return nil, err
	}

	return &ct, nil
}

func decodePublicKey(pathOrKey string) (*pre.PublicKey, error) {
	// Try decoding the key directly.
	var pk pre.PublicKey
	if err := pk.UnmarshalText([]byte(pathOrKey)); err == nil {
		return &pk, nil
	}

	// Otherwise, try reading the contents of it as a file.
	b, err := os.ReadFile(pathOrKey)
	if err != nil {
		return nil, err
	}

	if err := pk.UnmarshalText(trimTrailingNewline(b)); err != nil {
		return nil, err
	}

	return &pk, nil
}

func decodeSecretKey(pathOrKey string) (*pre.SecretKey, error) {
	// Try decoding the key directly.
	var sk pre.SecretKey
	if err := sk.UnmarshalText([]byte(pathOrKey)); err == nil {
		return &sk, nil
	}

	// Otherwise, try reading the contents of it as a file.
	b, err := os.ReadFile(pathOrKey)
	if err != nil {
		return nil, err
	}

	if err := sk.UnmarshalText(trimTrailingNewline(b)); err != nil {
		return nil, err
	}

	return &sk, nil
}

func decodeReEncryptionKey(pathOrKey string) (*pre.ReEncryptionKey, error) {
	// Try decoding the key directly.
	var rk pre.ReEncryptionKey
	if err := rk.UnmarshalText([]byte(pathOrKey)); err == nil {
		return &rk, nil
	}

	// Otherwise, try reading the contents of it as a file.
	b, err := os.ReadFile(pathOrKey)
	if err != nil {
		return nil, err
	}

	if err := rk.UnmarshalText(trimTrailingNewline(b)); err != nil {
		return nil, err
	}

	return &rk, nil
}

func trimTrailingNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}

	return b
}

func openOutput(path string) (io.WriteCloser, error) {
	dst := os.Stdout

	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}

		dst = f
	}

	return dst, nil
}
