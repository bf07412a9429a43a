package main

import (
	"encoding/json"
	"os"

	"github.com/alecthomas/kong"

	"github.com/seitlab/recrypt/pkg/pre"
)

type encryptCmd struct {
	Params      string `short:"P" required:"" help:"The scheme parameters, or the path to a file containing them."`
	PublicKey   string `name:"pk" short:"p" required:"" help:"The recipient's public key, or the path to a file containing it."`
	Message     string `short:"m" xor:"message" required:"" help:"The message to encrypt."`
	MessageFile string `xor:"message" required:"" type:"existingfile" help:"The path to a file containing the message."`
	Output      string `short:"o" default:"-" type:"path" help:"The output path for the ciphertext."`
}

func (cmd *encryptCmd) Run(_ *kong.Context) error {
	// Decode the parameters.
	params, err := decodeParams(cmd.Params)
	if err != nil {
		return err
	}

	// Decode the recipient's public key.
	pub, err := decodePublicKey(cmd.PublicKey)
	if err != nil {
		return err
	}

	// Read the message.
	payload := []byte(cmd.Message)
	if cmd.MessageFile != "" {
		payload, err = os.ReadFile(cmd.MessageFile)
		if err != nil {
			return err
		}
	}

	// Encrypt the message, producing an original ciphertext.
	ct, err := pre.Encrypt(params, pub, payload)
	if err != nil {
		return err
	}

	// Encode the ciphertext as a JSON envelope.
	j, err := json.Marshal(ct)
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
