// Package maskdf derives mask exponents, which bind recrypt payloads to
// pairing values, and short display fingerprints for secret keys.
//
// Mask exponents are derived from the canonical encoding of a target-group
// element with the following protocol:
//
//	INIT('recrypt.mask', level=256)
//	AD(element)
//	PRF(64)
//
// Fingerprints are derived from the canonical encoding of a secret key:
//
//	INIT('recrypt.skid', level=256)
//	AD(key)
//	PRF(8)
package maskdf

import "github.com/sammyne/strobe"

const (
	// ExponentSize is the length of a derived mask exponent in bytes.
	ExponentSize = 64

	// KeyIDSize is the length of a derived key fingerprint in bytes.
	KeyIDSize = 8
)

// MaskExponent derives the mask exponent bound to the canonical encoding of
// a target-group element.
func MaskExponent(element []byte) []byte {
	s := newProtocol("recrypt.mask")
	ad(s, element)

	return prf(s, ExponentSize)
}

// KeyID derives a short fingerprint of an encoded secret key, suitable for
// display in place of the key itself.
func KeyID(key []byte) []byte {
	s := newProtocol("recrypt.skid")
	ad(s, key)

	return prf(s, KeyIDSize)
}

func newProtocol(name string) *strobe.Strobe {
	s, err := strobe.New(name, strobe.Bit256)
	if err != nil {
		panic(err)
	}

	return s
}

func ad(s *strobe.Strobe, data []byte) {
	if err := s.AD(data, &strobe.Options{}); err != nil {
		panic(err)
	}
}

func prf(s *strobe.Strobe, n int) []byte {
	out := make([]byte, n)
	if err := s.PRF(out, false); err != nil {
		panic(err)
	}

	return out
}
