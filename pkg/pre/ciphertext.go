package pre

import (
	"encoding"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/mr-tron/base58"

	"github.com/seitlab/recrypt/pkg/pre/internal/pairing"
	"github.com/seitlab/recrypt/pkg/pre/internal/residue"
)

// Ciphertext levels.
const (
	// LevelTransformed identifies ciphertexts a proxy has transformed for a
	// delegatee. Only transformed ciphertexts can be decrypted.
	LevelTransformed = 1

	// LevelOriginal identifies ciphertexts as produced by Encrypt. Only
	// original ciphertexts can be re-encrypted.
	LevelOriginal = 2
)

// Ciphertext is an encrypted payload at one of two levels: original, as
// produced by Encrypt, or transformed, as produced by ReEncrypt. The level
// determines which operations accept it.
type Ciphertext struct {
	level int
	c1    pairing.G1
	c2    pairing.GT
	c3    residue.Element
}

// Level returns LevelOriginal or LevelTransformed.
func (c *Ciphertext) Level() int {
	return c.level
}

type ciphertextJSON struct {
	Level int    `json:"level"`
	C1    string `json:"c1,omitempty"`
	C2    string `json:"c2,omitempty"`
	C3    string `json:"c3"`
}

type ciphertextBinary struct {
	Level int    `cbor:"level"`
	C1    []byte `cbor:"c1,omitempty"`
	C2    []byte `cbor:"c2,omitempty"`
	C3    []byte `cbor:"c3"`
}

// MarshalJSON implements json.Marshaler.
func (c *Ciphertext) MarshalJSON() ([]byte, error) {
	env := ciphertextJSON{Level: c.level}

	switch c.level {
	case LevelOriginal:
		env.C1 = base58.Encode(pairing.EncodeG1(c.c1))
	case LevelTransformed:
		env.C2 = base58.Encode(pairing.EncodeGT(c.c2))
	default:
		return nil, fmt.Errorf("invalid ciphertext level %d", c.level)
	}

	env.C3 = base58.Encode(residue.EncodeElement(c.c3))

	return json.Marshal(&env)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Ciphertext) UnmarshalJSON(data []byte) error {
	var env ciphertextJSON
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	c3, err := base58.Decode(env.C3)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	switch env.Level {
	case LevelOriginal:
		c1, err := base58.Decode(env.C1)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
		}

		return c.decodeOriginal(c1, c3)
	case LevelTransformed:
		c2, err := base58.Decode(env.C2)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
		}

		return c.decodeTransformed(c2, c3)
	default:
		return fmt.Errorf("%w: unknown ciphertext level %d", ErrMalformedEnvelope, env.Level)
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c *Ciphertext) MarshalBinary() ([]byte, error) {
	env := ciphertextBinary{Level: c.level}

	switch c.level {
	case LevelOriginal:
		env.C1 = pairing.EncodeG1(c.c1)
	case LevelTransformed:
		env.C2 = pairing.EncodeGT(c.c2)
	default:
		return nil, fmt.Errorf("invalid ciphertext level %d", c.level)
	}

	env.C3 = residue.EncodeElement(c.c3)

	return cbor.Marshal(&env)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *Ciphertext) UnmarshalBinary(data []byte) error {
	var env ciphertextBinary
	if err := cbor.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	switch env.Level {
	case LevelOriginal:
		return c.decodeOriginal(env.C1, env.C3)
	case LevelTransformed:
		return c.decodeTransformed(env.C2, env.C3)
	default:
		return fmt.Errorf("%w: unknown ciphertext level %d", ErrMalformedEnvelope, env.Level)
	}
}

func (c *Ciphertext) decodeOriginal(c1, c3 []byte) error {
	e1, err := pairing.DecodeG1(c1)
	if err != nil {
		return fmt.Errorf("error decoding c1: %w", err)
	}

	e3, err := residue.DecodeElement(c3)
	if err != nil {
		return fmt.Errorf("error decoding c3: %w", err)
	}

	c.level, c.c1, c.c2, c.c3 = LevelOriginal, e1, pairing.GT{}, e3

	return nil
}

func (c *Ciphertext) decodeTransformed(c2, c3 []byte) error {
	e2, err := pairing.DecodeGT(c2)
	if err != nil {
		return fmt.Errorf("error decoding c2: %w", err)
	}

	e3, err := residue.DecodeElement(c3)
	if err != nil {
		return fmt.Errorf("error decoding c3: %w", err)
	}

	c.level, c.c1, c.c2, c.c3 = LevelTransformed, pairing.G1{}, e2, e3

	return nil
}

var (
	_ json.Marshaler             = &Ciphertext{}
	_ json.Unmarshaler           = &Ciphertext{}
	_ encoding.BinaryMarshaler   = &Ciphertext{}
	_ encoding.BinaryUnmarshaler = &Ciphertext{}
)
