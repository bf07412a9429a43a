package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/seitlab/recrypt/pkg/pre"
)

type infoCmd struct {
	Params string `short:"P" required:"" help:"The scheme parameters, or the path to a file containing them."`
	Output string `short:"o" default:"-" type:"path" help:"The output path."`
}

func (cmd *infoCmd) Run(_ *kong.Context) error {
	// Decode the parameters to confirm they are usable.
	if _, err := decodeParams(cmd.Params); err != nil {
		return err
	}

	// Open the output.
	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	// Write out the scheme facts.
	_, err = fmt.Fprintf(dst,
		"pairing curve:           BLS12-381\n"+
			"payload group:           2048-bit MODP (RFC 3526)\n"+
			"public key size:         %d bytes\n"+
			"secret key size:         %d bytes\n"+
			"re-encryption key size:  %d bytes\n"+
			"maximum message size:    %d bytes\n",
		pre.PublicKeySize, pre.SecretKeySize, pre.ReEncryptionKeySize, pre.MaxMessageSize)

	return err
}
