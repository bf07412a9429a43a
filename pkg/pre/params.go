package pre

import (
	"encoding"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/mr-tron/base58"

	"github.com/seitlab/recrypt/pkg/pre/internal/pairing"
)

// Params are the public parameters shared by everyone participating in a
// deployment of the scheme. All keys and ciphertexts are bound to the
// parameters they were created under and are useless under any other set.
type Params struct {
	g1 pairing.G1
	g2 pairing.G2
	z  pairing.GT
}

// Setup generates a fresh set of public parameters: a random generator of
// each source group and the pairing of the two.
func Setup() (*Params, error) {
	u, err := pairing.RandomScalar()
	if err != nil {
		return nil, fmt.Errorf("error generating parameters: %w", err)
	}

	v, err := pairing.RandomScalar()
	if err != nil {
		return nil, fmt.Errorf("error generating parameters: %w", err)
	}

	h1, h2 := pairing.Generators()
	g1 := pairing.G1Exp(h1, u)
	g2 := pairing.G2Exp(h2, v)

	z, err := pairing.Pair(g1, g2)
	if err != nil {
		return nil, fmt.Errorf("error generating parameters: %w", err)
	}

	return &Params{g1: g1, g2: g2, z: z}, nil
}

type paramsJSON struct {
	G1 string `json:"g1"`
	G2 string `json:"g2"`
	Z  string `json:"z"`
}

type paramsBinary struct {
	G1 []byte `cbor:"g1"`
	G2 []byte `cbor:"g2"`
	Z  []byte `cbor:"z"`
}

// MarshalJSON implements json.Marshaler.
func (p *Params) MarshalJSON() ([]byte, error) {
	return json.Marshal(&paramsJSON{
		G1: base58.Encode(pairing.EncodeG1(p.g1)),
		G2: base58.Encode(pairing.EncodeG2(p.g2)),
		Z:  base58.Encode(pairing.EncodeGT(p.z)),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Params) UnmarshalJSON(data []byte) error {
	var env paramsJSON
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	g1, err := base58.Decode(env.G1)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	g2, err := base58.Decode(env.G2)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	z, err := base58.Decode(env.Z)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	return p.decode(g1, g2, z)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p *Params) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(&paramsBinary{
		G1: pairing.EncodeG1(p.g1),
		G2: pairing.EncodeG2(p.g2),
		Z:  pairing.EncodeGT(p.z),
	})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Params) UnmarshalBinary(data []byte) error {
	var env paramsBinary
	if err := cbor.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	return p.decode(env.G1, env.G2, env.Z)
}

func (p *Params) decode(g1, g2, z []byte) error {
	e1, err := pairing.DecodeG1(g1)
	if err != nil {
		return fmt.Errorf("error decoding g1: %w", err)
	}

	e2, err := pairing.DecodeG2(g2)
	if err != nil {
		return fmt.Errorf("error decoding g2: %w", err)
	}

	et, err := pairing.DecodeGT(z)
	if err != nil {
		return fmt.Errorf("error decoding z: %w", err)
	}

	p.g1, p.g2, p.z = e1, e2, et

	return nil
}

var (
	_ json.Marshaler             = &Params{}
	_ json.Unmarshaler           = &Params{}
	_ encoding.BinaryMarshaler   = &Params{}
	_ encoding.BinaryUnmarshaler = &Params{}
)
