package main

import (
	"io"

	"github.com/alecthomas/kong"

	"github.com/seitlab/recrypt/pkg/pre"
)

type rekeygenCmd struct {
	SecretKey string `name:"sk" short:"s" required:"" help:"The delegator's secret key, or the path to a file containing it."`
	PublicKey string `name:"pk" short:"p" required:"" help:"The delegatee's public key, or the path to a file containing it."`
	Output    string `short:"o" default:"-" type:"path" help:"The output path for the re-encryption key."`
}

func (cmd *rekeygenCmd) Run(_ *kong.Context) error {
	// Decode the delegator's secret key.
	sec, err := decodeSecretKey(cmd.SecretKey)
	if err != nil {
		return err
	}

	// Decode the delegatee's public key.
	pub, err := decodePublicKey(cmd.PublicKey)
	if err != nil {
		return err
	}

	// Derive the re-encryption key.
	rk := pre.ReKeyGen(sec, pub)

	// Open the output.
	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	// Write out the re-encryption key.
	_, err = io.WriteString(dst, rk.String())

	return err
}
