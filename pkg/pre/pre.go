// Package pre implements a unidirectional, single-hop proxy re-encryption
// scheme over a bilinear pairing.
//
// A message is encrypted to the public key of its owner, producing an
// original ciphertext which only the owner can use. The owner may delegate
// the ability to read their messages to another party by deriving a
// re-encryption key from their own secret key and the delegatee's public
// key. A proxy in possession of that re-encryption key can transform
// original ciphertexts into transformed ciphertexts which the delegatee can
// decrypt with their own secret key. The proxy learns nothing about the
// message, and the re-encryption key gives it no ability to decrypt.
//
// Delegation is unidirectional: a re-encryption key from Alice to Bea gives
// the proxy no ability to transform Bea's ciphertexts for Alice. It is also
// single-hop: a transformed ciphertext cannot be transformed again.
//
// Decrypt accepts transformed ciphertexts only. Owners read their own
// original ciphertexts by deriving a re-encryption key to themselves,
// transforming, and decrypting the result.
//
// Ciphertexts carry no integrity protection. Decrypting with the wrong
// secret key, or decrypting a ciphertext which was modified in transit,
// returns an arbitrary payload rather than an error. Callers who need
// authenticity must provide it at another layer.
package pre

import (
	"errors"

	"github.com/seitlab/recrypt/pkg/pre/internal"
	"github.com/seitlab/recrypt/pkg/pre/internal/residue"
)

// MaxMessageSize is the longest payload, in bytes, which Encrypt will
// accept.
const MaxMessageSize = residue.MaxMessageSize

var (
	// ErrInvalidElement is returned when decoded bytes do not represent a
	// valid element of the group they were decoded for.
	ErrInvalidElement = internal.ErrInvalidElement

	// ErrPayloadTooLarge is returned by Encrypt when a payload exceeds
	// MaxMessageSize.
	ErrPayloadTooLarge = residue.ErrPayloadTooLarge

	// ErrWrongLevel is returned when a ciphertext is passed to an operation
	// which handles the other ciphertext level.
	ErrWrongLevel = errors.New("wrong ciphertext level")

	// ErrMalformedEnvelope is returned when a serialized value cannot be
	// parsed.
	ErrMalformedEnvelope = errors.New("malformed envelope")
)
