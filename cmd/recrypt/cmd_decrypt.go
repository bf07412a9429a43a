package main

import (
	"github.com/alecthomas/kong"

	"github.com/seitlab/recrypt/pkg/pre"
)

type decryptCmd struct {
	Params     string `short:"P" required:"" help:"The scheme parameters, or the path to a file containing them."`
	PublicKey  string `name:"pk" short:"p" required:"" help:"Your public key, or the path to a file containing it."`
	SecretKey  string `name:"sk" short:"s" required:"" help:"Your secret key, or the path to a file containing it."`
	Ciphertext string `short:"c" required:"" help:"The ciphertext envelope, or the path to a file containing it."`
	Owned      bool   `help:"Transform the ciphertext for yourself first (you are the original recipient)."`
	Output     string `short:"o" default:"-" type:"path" help:"The output path for the message."`
}

func (cmd *decryptCmd) Run(_ *kong.Context) error {
	// Decode the parameters.
	params, err := decodeParams(cmd.Params)
	if err != nil {
		return err
	}

	// Decode the key pair halves.
	pub, err := decodePublicKey(cmd.PublicKey)
	if err != nil {
		return err
	}

	sec, err := decodeSecretKey(cmd.SecretKey)
	if err != nil {
		return err
	}

	// Decode the ciphertext envelope.
	ct, err := decodeCiphertext(cmd.Ciphertext)
	if err != nil {
		return err
	}

	// Original recipients self-delegate and transform before decrypting.
	if cmd.Owned {
		ct, err = pre.ReEncrypt(params, pre.ReKeyGen(sec, pub), ct)
		if err != nil {
			return err
		}
	}

	// Decrypt the transformed ciphertext.
	payload, err := pre.Decrypt(params, sec, ct)
	if err != nil {
		return err
	}

	// Open the output.
	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	// Write out the message.
	_, err = dst.Write(payload)

	return err
}
