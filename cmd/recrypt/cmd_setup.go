package main

import (
	"encoding/json"

	"github.com/alecthomas/kong"

	"github.com/seitlab/recrypt/pkg/pre"
)

type setupCmd struct {
	Output string `short:"o" default:"-" type:"path" help:"The output path for the parameters."`
}

func (cmd *setupCmd) Run(_ *kong.Context) error {
	// Generate a fresh set of parameters.
	params, err := pre.Setup()
	if err != nil {
		return err
	}

	// Encode the parameters as a JSON envelope.
	j, err := json.Marshal(params)
	if err != nil {
		return err
	}

	// Open the output.
	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	// Write out the parameters.
	_, err = dst.Write(j)

	return err
}
