package pre

import (
	"fmt"

	"github.com/seitlab/recrypt/pkg/pre/internal/pairing"
)

// ReEncrypt transforms an original ciphertext into a transformed ciphertext
// decryptable by the delegatee the re-encryption key was derived for. The
// masked payload is untouched; only the key material it is bound to changes.
//
// Returns ErrWrongLevel if the ciphertext has already been transformed.
// Transformation cannot be repeated or reversed.
func ReEncrypt(params *Params, rk *ReEncryptionKey, ct *Ciphertext) (*Ciphertext, error) {
	if ct.level != LevelOriginal {
		return nil, fmt.Errorf("%w: re-encryption requires an original ciphertext", ErrWrongLevel)
	}

	c2, err := pairing.Pair(ct.c1, rk.r)
	if err != nil {
		return nil, fmt.Errorf("error re-encrypting: %w", err)
	}

	return &Ciphertext{
		level: LevelTransformed,
		c2:    c2,
		c3:    ct.c3,
	}, nil
}
