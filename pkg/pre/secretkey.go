package pre

import (
	"encoding"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/seitlab/recrypt/pkg/pre/internal/maskdf"
	"github.com/seitlab/recrypt/pkg/pre/internal/pairing"
)

// SecretKeySize is the length of an encoded secret key in bytes.
const SecretKeySize = pairing.ScalarSize

// SecretKey is the secret half of a key pair. It decrypts transformed
// ciphertexts and grants delegations.
type SecretKey struct {
	a pairing.Scalar
}

// KeyGen generates a new key pair under the given parameters.
func KeyGen(params *Params) (*PublicKey, *SecretKey, error) {
	a, err := pairing.RandomScalar()
	if err != nil {
		return nil, nil, fmt.Errorf("error generating key pair: %w", err)
	}

	pk := &PublicKey{
		p1: pairing.G1Exp(params.g1, a),
		p2: pairing.G2Exp(params.g2, a),
	}

	return pk, &SecretKey{a: a}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (sk *SecretKey) MarshalBinary() ([]byte, error) {
	return pairing.EncodeScalar(sk.a), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (sk *SecretKey) UnmarshalBinary(data []byte) error {
	a, err := pairing.DecodeScalar(data)
	if err != nil {
		return fmt.Errorf("error decoding secret key: %w", err)
	}

	sk.a = a

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (sk *SecretKey) MarshalText() ([]byte, error) {
	b, err := sk.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return []byte(base58.Encode(b)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (sk *SecretKey) UnmarshalText(text []byte) error {
	b, err := base58.Decode(string(text))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	return sk.UnmarshalBinary(b)
}

// String returns a short fingerprint of the key, never the key itself, and
// is safe to include in logs and error messages.
func (sk *SecretKey) String() string {
	return base58.Encode(maskdf.KeyID(pairing.EncodeScalar(sk.a)))
}

var (
	_ encoding.BinaryMarshaler   = &SecretKey{}
	_ encoding.BinaryUnmarshaler = &SecretKey{}
	_ encoding.TextMarshaler     = &SecretKey{}
	_ encoding.TextUnmarshaler   = &SecretKey{}
	_ fmt.Stringer               = &SecretKey{}
)
