package pre

import (
	"fmt"

	"github.com/seitlab/recrypt/pkg/pre/internal/maskdf"
	"github.com/seitlab/recrypt/pkg/pre/internal/pairing"
	"github.com/seitlab/recrypt/pkg/pre/internal/residue"
)

// Decrypt recovers the payload of a transformed ciphertext with the
// delegatee's secret key.
//
// Returns ErrWrongLevel if the ciphertext is an original. Original
// ciphertexts are decrypted by transforming them with a self-delegated
// re-encryption key first.
//
// Decrypting with a secret key the ciphertext was not transformed for does
// not fail. It returns an arbitrary payload, as does decrypting a ciphertext
// which was modified in transit.
func Decrypt(params *Params, sk *SecretKey, ct *Ciphertext) ([]byte, error) {
	if ct.level != LevelTransformed {
		return nil, fmt.Errorf("%w: decryption requires a transformed ciphertext", ErrWrongLevel)
	}

	s := pairing.GTExp(ct.c2, pairing.InvertScalar(sk.a))
	mask := residue.Mask(maskdf.MaskExponent(pairing.EncodeGT(s)))

	return residue.DecodeMessage(residue.Mul(ct.c3, residue.Inv(mask))), nil
}
