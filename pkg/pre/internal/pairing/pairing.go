// Package pairing adapts the BLS12-381 suite to the operations the recrypt
// scheme needs: sampling and inverting scalars, exponentiation in the three
// pairing groups, the pairing itself, and a canonical byte codec for each
// group.
//
// Encodings are fixed width. G1 and G2 elements use the standard compressed
// forms, scalars and target-group elements the canonical big-endian forms.
// Decoding verifies length, range and subgroup membership, so callers may
// treat a decoded element as a member of its group without further checks.
package pairing

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/seitlab/recrypt/pkg/pre/internal"
)

// Element and scalar types of the pairing suite.
type (
	// Scalar is an element of the common scalar field of G1, G2 and GT.
	Scalar = fr.Element

	// G1 is an element of the first source group.
	G1 = bls12381.G1Affine

	// G2 is an element of the second source group.
	G2 = bls12381.G2Affine

	// GT is an element of the target group.
	GT = bls12381.GT
)

// Canonical encoded lengths in bytes.
const (
	ScalarSize = fr.Bytes
	G1Size     = bls12381.SizeOfG1AffineCompressed
	G2Size     = bls12381.SizeOfG2AffineCompressed
	GTSize     = bls12381.SizeOfGT
)

// Generators returns the conventional generators of G1 and G2.
func Generators() (G1, G2) {
	_, _, g1, g2 := bls12381.Generators()

	return g1, g2
}

// RandomScalar returns a uniformly random non-zero scalar.
func RandomScalar() (Scalar, error) {
	var s Scalar

	for {
		if _, err := s.SetRandom(); err != nil {
			return Scalar{}, fmt.Errorf("error generating random scalar: %w", err)
		}

		if !s.IsZero() {
			return s, nil
		}
	}
}

// InvertScalar returns the multiplicative inverse of s. s must be non-zero.
func InvertScalar(s Scalar) Scalar {
	var inv Scalar

	inv.Inverse(&s)

	return inv
}

// G1Exp returns g^e.
func G1Exp(g G1, e Scalar) G1 {
	var (
		k   big.Int
		out G1
	)

	e.BigInt(&k)
	out.ScalarMultiplication(&g, &k)

	return out
}

// G2Exp returns g^e.
func G2Exp(g G2, e Scalar) G2 {
	var (
		k   big.Int
		out G2
	)

	e.BigInt(&k)
	out.ScalarMultiplication(&g, &k)

	return out
}

// GTExp returns t^e.
func GTExp(t GT, e Scalar) GT {
	var (
		k   big.Int
		out GT
	)

	e.BigInt(&k)
	out.Exp(t, &k)

	return out
}

// GTMul returns the product x*y.
func GTMul(x, y GT) GT {
	var out GT

	out.Mul(&x, &y)

	return out
}

// GTInv returns the multiplicative inverse of t.
func GTInv(t GT) GT {
	var out GT

	out.Inverse(&t)

	return out
}

// Pair returns the pairing e(p, q).
func Pair(p G1, q G2) (GT, error) {
	t, err := bls12381.Pair([]bls12381.G1Affine{p}, []bls12381.G2Affine{q})
	if err != nil {
		return GT{}, fmt.Errorf("error computing pairing: %w", err)
	}

	return t, nil
}

// EncodeScalar returns the canonical big-endian encoding of s.
func EncodeScalar(s Scalar) []byte {
	b := s.Bytes()

	return b[:]
}

// DecodeScalar decodes a scalar, rejecting encodings which are zero or not in
// canonical reduced form.
func DecodeScalar(data []byte) (Scalar, error) {
	if len(data) != ScalarSize {
		return Scalar{}, fmt.Errorf("%w: scalar must be %d bytes, got %d",
			internal.ErrInvalidElement, ScalarSize, len(data))
	}

	v := new(big.Int).SetBytes(data)
	if v.Sign() == 0 || v.Cmp(fr.Modulus()) >= 0 {
		return Scalar{}, fmt.Errorf("%w: scalar out of range", internal.ErrInvalidElement)
	}

	var s Scalar

	s.SetBigInt(v)

	return s, nil
}

// EncodeG1 returns the compressed encoding of p.
func EncodeG1(p G1) []byte {
	b := p.Bytes()

	return b[:]
}

// DecodeG1 decodes a compressed G1 element, verifying curve and subgroup
// membership.
func DecodeG1(data []byte) (G1, error) {
	if len(data) != G1Size {
		return G1{}, fmt.Errorf("%w: G1 element must be %d bytes, got %d",
			internal.ErrInvalidElement, G1Size, len(data))
	}

	var p G1
	if _, err := p.SetBytes(data); err != nil {
		return G1{}, fmt.Errorf("%w: %v", internal.ErrInvalidElement, err)
	}

	return p, nil
}

// EncodeG2 returns the compressed encoding of p.
func EncodeG2(p G2) []byte {
	b := p.Bytes()

	return b[:]
}

// DecodeG2 decodes a compressed G2 element, verifying curve and subgroup
// membership.
func DecodeG2(data []byte) (G2, error) {
	if len(data) != G2Size {
		return G2{}, fmt.Errorf("%w: G2 element must be %d bytes, got %d",
			internal.ErrInvalidElement, G2Size, len(data))
	}

	var p G2
	if _, err := p.SetBytes(data); err != nil {
		return G2{}, fmt.Errorf("%w: %v", internal.ErrInvalidElement, err)
	}

	return p, nil
}

// EncodeGT returns the canonical encoding of t.
func EncodeGT(t GT) []byte {
	return t.Marshal()
}

// DecodeGT decodes a target-group element, verifying subgroup membership.
func DecodeGT(data []byte) (GT, error) {
	if len(data) != GTSize {
		return GT{}, fmt.Errorf("%w: GT element must be %d bytes, got %d",
			internal.ErrInvalidElement, GTSize, len(data))
	}

	var t GT
	if err := t.SetBytes(data); err != nil {
		return GT{}, fmt.Errorf("%w: %v", internal.ErrInvalidElement, err)
	}

	// SetBytes checks only that the coordinates are canonical. Membership in
	// the order-r subgroup needs a separate check, and that check's Frobenius
	// identities hold at zero, so zero is rejected explicitly.
	if t.IsZero() || !t.IsInSubGroup() {
		return GT{}, fmt.Errorf("%w: GT element is not in the subgroup",
			internal.ErrInvalidElement)
	}

	return t, nil
}
