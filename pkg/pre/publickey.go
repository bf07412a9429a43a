package pre

import (
	"encoding"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/seitlab/recrypt/pkg/pre/internal/pairing"
)

// PublicKeySize is the length of an encoded public key in bytes.
const PublicKeySize = pairing.G1Size + pairing.G2Size

// PublicKey is the public half of a key pair. Messages are encrypted to it,
// and delegations are granted to it.
type PublicKey struct {
	p1 pairing.G1
	p2 pairing.G2
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, PublicKeySize)
	out = append(out, pairing.EncodeG1(pk.p1)...)
	out = append(out, pairing.EncodeG2(pk.p2)...)

	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	if len(data) != PublicKeySize {
		return fmt.Errorf("%w: public key must be %d bytes, got %d",
			ErrInvalidElement, PublicKeySize, len(data))
	}

	p1, err := pairing.DecodeG1(data[:pairing.G1Size])
	if err != nil {
		return fmt.Errorf("error decoding public key: %w", err)
	}

	p2, err := pairing.DecodeG2(data[pairing.G1Size:])
	if err != nil {
		return fmt.Errorf("error decoding public key: %w", err)
	}

	pk.p1, pk.p2 = p1, p2

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (pk *PublicKey) MarshalText() ([]byte, error) {
	b, err := pk.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return []byte(base58.Encode(b)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	b, err := base58.Decode(string(text))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	return pk.UnmarshalBinary(b)
}

// String returns the public key as unpadded base58 text.
func (pk *PublicKey) String() string {
	t, err := pk.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(t)
}

var (
	_ encoding.BinaryMarshaler   = &PublicKey{}
	_ encoding.BinaryUnmarshaler = &PublicKey{}
	_ encoding.TextMarshaler     = &PublicKey{}
	_ encoding.TextUnmarshaler   = &PublicKey{}
	_ fmt.Stringer               = &PublicKey{}
)
