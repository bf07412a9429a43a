package main

import (
	"encoding/json"

	"github.com/alecthomas/kong"

	"github.com/seitlab/recrypt/pkg/pre"
)

type reencryptCmd struct {
	Params     string `short:"P" required:"" help:"The scheme parameters, or the path to a file containing them."`
	Rekey      string `short:"r" required:"" help:"The re-encryption key, or the path to a file containing it."`
	Ciphertext string `short:"c" required:"" help:"The original ciphertext envelope, or the path to a file containing it."`
	Output     string `short:"o" default:"-" type:"path" help:"The output path for the transformed ciphertext."`
}

func (cmd *reencryptCmd) Run(_ *kong.Context) error {
	// Decode the parameters.
	params, err := decodeParams(cmd.Params)
	if err != nil {
		return err
	}

	// Decode the re-encryption key.
	rk, err := decodeReEncryptionKey(cmd.Rekey)
	if err != nil {
		return err
	}

	// Decode the original ciphertext.
	ct, err := decodeCiphertext(cmd.Ciphertext)
	if err != nil {
		return err
	}

	// Transform the ciphertext for the delegatee.
	transformed, err := pre.ReEncrypt(params, rk, ct)
	if err != nil {
		return err
	}

	// Encode the transformed ciphertext as a JSON envelope.
	j, err := json.Marshal(transformed)
	if err != nil {
		return err
	}

	// Open the output.
	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	// Write out the ciphertext.
	_, err = dst.Write(j)

	return err
}
