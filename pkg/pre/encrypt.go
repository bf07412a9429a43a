package pre

import (
	"fmt"

	"github.com/seitlab/recrypt/pkg/pre/internal/maskdf"
	"github.com/seitlab/recrypt/pkg/pre/internal/pairing"
	"github.com/seitlab/recrypt/pkg/pre/internal/residue"
)

// Encrypt encrypts a payload of at most MaxMessageSize bytes to the given
// public key, producing an original ciphertext.
//
// The payload is embedded in the residue group and masked with a value
// derived from an ephemeral pairing which only the key's owner, or a
// delegatee of the owner, can recover. Returns ErrPayloadTooLarge if the
// payload does not fit.
func Encrypt(params *Params, pk *PublicKey, payload []byte) (*Ciphertext, error) {
	em, err := residue.EncodeMessage(payload)
	if err != nil {
		return nil, err
	}

	k, err := pairing.RandomScalar()
	if err != nil {
		return nil, fmt.Errorf("error encrypting: %w", err)
	}

	// The shared secret z^k is recoverable from c1 by the recipient alone.
	c1 := pairing.G1Exp(pk.p1, k)
	s := pairing.GTExp(params.z, k)

	mask := residue.Mask(maskdf.MaskExponent(pairing.EncodeGT(s)))

	return &Ciphertext{
		level: LevelOriginal,
		c1:    c1,
		c3:    residue.Mul(em, mask),
	}, nil
}
