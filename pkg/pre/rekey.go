package pre

import (
	"encoding"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/seitlab/recrypt/pkg/pre/internal/pairing"
)

// ReEncryptionKeySize is the length of an encoded re-encryption key in
// bytes.
const ReEncryptionKeySize = pairing.G2Size

// ReEncryptionKey lets a proxy transform ciphertexts encrypted to the
// delegator into ciphertexts the delegatee can decrypt. It does not let the
// proxy decrypt anything, and it does not work in the reverse direction.
type ReEncryptionKey struct {
	r pairing.G2
}

// ReKeyGen derives the re-encryption key for a delegation. It requires the
// delegator's secret key and the delegatee's public key only; the delegatee
// does not participate.
//
// A delegator may delegate to themselves. Deriving a key from a secret key
// and the matching public key yields the re-encryption key used to make
// original ciphertexts readable by their owner.
func ReKeyGen(delegator *SecretKey, delegatee *PublicKey) *ReEncryptionKey {
	return &ReEncryptionKey{
		r: pairing.G2Exp(delegatee.p2, pairing.InvertScalar(delegator.a)),
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (rk *ReEncryptionKey) MarshalBinary() ([]byte, error) {
	return pairing.EncodeG2(rk.r), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (rk *ReEncryptionKey) UnmarshalBinary(data []byte) error {
	r, err := pairing.DecodeG2(data)
	if err != nil {
		return fmt.Errorf("error decoding re-encryption key: %w", err)
	}

	rk.r = r

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (rk *ReEncryptionKey) MarshalText() ([]byte, error) {
	b, err := rk.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return []byte(base58.Encode(b)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (rk *ReEncryptionKey) UnmarshalText(text []byte) error {
	b, err := base58.Decode(string(text))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	return rk.UnmarshalBinary(b)
}

// String returns the re-encryption key as unpadded base58 text.
func (rk *ReEncryptionKey) String() string {
	t, err := rk.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(t)
}

var (
	_ encoding.BinaryMarshaler   = &ReEncryptionKey{}
	_ encoding.BinaryUnmarshaler = &ReEncryptionKey{}
	_ encoding.TextMarshaler     = &ReEncryptionKey{}
	_ encoding.TextUnmarshaler   = &ReEncryptionKey{}
	_ fmt.Stringer               = &ReEncryptionKey{}
)
