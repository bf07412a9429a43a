package residue

import (
	"bytes"
	"errors"
	"testing"

	"github.com/codahale/gubbins/assert"

	"github.com/seitlab/recrypt/pkg/pre/internal"
)

func TestMessageRoundTrip(t *testing.T) {
	t.Parallel()

	payloads := [][]byte{
		[]byte("this is a test"),
		{},
		{0x00, 0x00, 0x07},
		bytes.Repeat([]byte{0xa5}, MaxMessageSize),
	}

	for _, payload := range payloads {
		el, err := EncodeMessage(payload)
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, "payload", payload, DecodeMessage(el))
	}
}

func TestEncodeMessageTooLarge(t *testing.T) {
	t.Parallel()

	if _, err := EncodeMessage(make([]byte, MaxMessageSize+1)); !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("expected ErrPayloadTooLarge, got %v", err)
	}
}

func TestElementRoundTrip(t *testing.T) {
	t.Parallel()

	el, err := RandomElement()
	if err != nil {
		t.Fatal(err)
	}

	got, err := DecodeElement(EncodeElement(el))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "element", true, Equal(el, got))
	assert.Equal(t, "encoded length", ElementSize, len(EncodeElement(el)))
}

func TestRandomElement(t *testing.T) {
	t.Parallel()

	a, err := RandomElement()
	if err != nil {
		t.Fatal(err)
	}

	b, err := RandomElement()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "distinct elements", false, Equal(a, b))

	// A random element times its inverse is the identity.
	assert.Equal(t, "a * 1/a", true, Equal(Mul(a, Inv(a)), Mul(b, Inv(b))))
}

func TestDecodeElementInvalid(t *testing.T) {
	t.Parallel()

	if _, err := DecodeElement(make([]byte, ElementSize)); !errors.Is(err, internal.ErrInvalidElement) {
		t.Errorf("zero element: expected ErrInvalidElement, got %v", err)
	}

	if _, err := DecodeElement(bytes.Repeat([]byte{0xff}, ElementSize)); !errors.Is(err, internal.ErrInvalidElement) {
		t.Errorf("unreduced element: expected ErrInvalidElement, got %v", err)
	}

	if _, err := DecodeElement(make([]byte, ElementSize-1)); !errors.Is(err, internal.ErrInvalidElement) {
		t.Errorf("short element: expected ErrInvalidElement, got %v", err)
	}
}

func TestMaskDeterministic(t *testing.T) {
	t.Parallel()

	a := Mask([]byte("one exponent"))
	b := Mask([]byte("one exponent"))
	c := Mask([]byte("another exponent"))

	assert.Equal(t, "same exponent", true, Equal(a, b))
	assert.Equal(t, "different exponent", false, Equal(a, c))
}

func TestMaskUnmask(t *testing.T) {
	t.Parallel()

	payload := []byte("a very secret payload")

	el, err := EncodeMessage(payload)
	if err != nil {
		t.Fatal(err)
	}

	mask := Mask([]byte("shared exponent"))
	masked := Mul(el, mask)

	assert.Equal(t, "masked element differs", false, Equal(el, masked))

	unmasked := Mul(masked, Inv(mask))

	assert.Equal(t, "payload", payload, DecodeMessage(unmasked))
}
