package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"github.com/seitlab/recrypt/pkg/pre"
)

type keygenCmd struct {
	Params string `short:"P" required:"" help:"The scheme parameters, or the path to a file containing them."`
	Output string `short:"o" default:"-" type:"path" help:"The output path for the key pair."`
}

func (cmd *keygenCmd) Run(_ *kong.Context) error {
	// Decode the parameters.
	params, err := decodeParams(cmd.Params)
	if err != nil {
		return err
	}

	// Generate a new key pair.
	pub, sec, err := pre.KeyGen(params)
	if err != nil {
		return err
	}

	pt, err := pub.MarshalText()
	if err != nil {
		return err
	}

	st, err := sec.MarshalText()
	if err != nil {
		return err
	}

	// Write out the public key, then the secret key.
	if cmd.Output != "-" {
		return os.WriteFile(cmd.Output, []byte(fmt.Sprintf("%s\n%s", pt, st)), 0600)
	}

	// Warn before printing a secret to an interactive session.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		_, _ = fmt.Fprintln(os.Stderr, "writing a secret key to the terminal")
	}

	_, err = fmt.Fprintf(os.Stdout, "%s\n%s", pt, st)

	return err
}
