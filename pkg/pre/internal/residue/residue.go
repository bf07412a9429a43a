// Package residue implements the multiplicative group of integers modulo the
// 2048-bit MODP prime of RFC 3526, the group recrypt payloads live in.
//
// Group elements have a fixed-width 256-byte big-endian encoding. Decoding
// rejects values outside [1, p-1]. Messages are embedded as integers by
// prefixing a non-zero marker byte, which caps payloads at MaxMessageSize
// bytes and keeps leading zero bytes of the payload intact.
package residue

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"

	"github.com/seitlab/recrypt/pkg/pre/internal"
)

const (
	// ElementSize is the length of an encoded group element in bytes.
	ElementSize = 256

	// MaxMessageSize is the longest payload which can be embedded as a
	// group element.
	MaxMessageSize = ElementSize - 1

	// marker precedes embedded payloads so that zero-valued and
	// zero-prefixed payloads survive the integer round trip.
	marker = 0x01

	// primeHex is the 2048-bit MODP prime of RFC 3526, section 3.
	primeHex = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD129024E088A67CC74" +
		"020BBEA63B139B22514A08798E3404DDEF9519B3CD3A431B302B0A6DF25F1437" +
		"4FE1356D6D51C245E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7ED" +
		"EE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3DC2007CB8A163BF05" +
		"98DA48361C55D39A69163FA8FD24CF5F83655D23DCA3AD961C62F356208552BB" +
		"9ED529077096966D670C354E4ABC9804F1746C08CA18217C32905E462E36CE3B" +
		"E39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9DE2BCBF695581718" +
		"3995497CEA956AE515D2261898FA051015728E5A8AACAA68FFFFFFFFFFFFFFFF"
)

// ErrPayloadTooLarge is returned when a payload exceeds MaxMessageSize.
var ErrPayloadTooLarge = errors.New("payload too large")

var (
	prime     *big.Int
	modulus   *saferith.Modulus
	generator *saferith.Nat
)

func init() {
	p, ok := new(big.Int).SetString(primeHex, 16)
	if !ok {
		panic("residue: invalid prime constant")
	}

	prime = p
	modulus = saferith.ModulusFromBytes(p.Bytes())
	generator = new(saferith.Nat).SetUint64(2)
}

// Element is an element of the group.
type Element struct {
	n *saferith.Nat
}

// RandomElement returns a uniformly random group element.
func RandomElement() (Element, error) {
	v, err := rand.Int(rand.Reader, new(big.Int).Sub(prime, big.NewInt(1)))
	if err != nil {
		return Element{}, fmt.Errorf("error generating random element: %w", err)
	}

	v.Add(v, big.NewInt(1))

	buf := make([]byte, ElementSize)
	v.FillBytes(buf)

	return Element{n: new(saferith.Nat).SetBytes(buf)}, nil
}

// Mask returns the group generator raised to the integer formed from the
// given big-endian exponent bytes.
func Mask(exponent []byte) Element {
	e := new(saferith.Nat).SetBytes(exponent)

	return Element{n: new(saferith.Nat).Exp(generator, e, modulus)}
}

// Mul returns the product x*y.
func Mul(x, y Element) Element {
	return Element{n: new(saferith.Nat).ModMul(x.n, y.n, modulus)}
}

// Inv returns the multiplicative inverse of x.
func Inv(x Element) Element {
	return Element{n: new(saferith.Nat).ModInverse(x.n, modulus)}
}

// Equal returns true if x and y are the same group element.
func Equal(x, y Element) bool {
	return x.n.Eq(y.n) == 1
}

// EncodeElement returns the fixed-width big-endian encoding of x.
func EncodeElement(x Element) []byte {
	out := make([]byte, ElementSize)
	x.n.Big().FillBytes(out)

	return out
}

// DecodeElement decodes a fixed-width group element, rejecting zero and
// values not reduced modulo the group prime.
func DecodeElement(data []byte) (Element, error) {
	if len(data) != ElementSize {
		return Element{}, fmt.Errorf("%w: group element must be %d bytes, got %d",
			internal.ErrInvalidElement, ElementSize, len(data))
	}

	v := new(big.Int).SetBytes(data)
	if v.Sign() == 0 || v.Cmp(prime) >= 0 {
		return Element{}, fmt.Errorf("%w: group element out of range", internal.ErrInvalidElement)
	}

	return Element{n: new(saferith.Nat).SetBytes(data)}, nil
}

// EncodeMessage embeds a payload of at most MaxMessageSize bytes as a group
// element.
func EncodeMessage(payload []byte) (Element, error) {
	if len(payload) > MaxMessageSize {
		return Element{}, fmt.Errorf("%w: %d bytes exceeds limit of %d",
			ErrPayloadTooLarge, len(payload), MaxMessageSize)
	}

	buf := make([]byte, 0, len(payload)+1)
	buf = append(buf, marker)
	buf = append(buf, payload...)

	return Element{n: new(saferith.Nat).SetBytes(buf)}, nil
}

// DecodeMessage extracts the payload embedded in a group element. An element
// which was not produced by EncodeMessage decodes to an arbitrary byte
// string rather than an error.
func DecodeMessage(x Element) []byte {
	buf := EncodeElement(x)

	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}

	if i < len(buf) && buf[i] == marker {
		i++
	}

	return buf[i:]
}
