package pre_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/codahale/gubbins/assert"

	"github.com/seitlab/recrypt/pkg/pre"
)

func TestReEncryptionKey_MarshalText(t *testing.T) {
	t.Parallel()

	params, alicePub, aliceSec := newKeyPair(t)

	beaPub, beaSec, err := pre.KeyGen(params)
	if err != nil {
		t.Fatal(err)
	}

	rk := pre.ReKeyGen(aliceSec, beaPub)

	text, err := rk.MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	var decoded pre.ReEncryptionKey
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}

	// The decoded key must transform, not merely parse.
	payload := []byte("delegations survive the trip")

	original, err := pre.Encrypt(params, alicePub, payload)
	if err != nil {
		t.Fatal(err)
	}

	transformed, err := pre.ReEncrypt(params, &decoded, original)
	if err != nil {
		t.Fatal(err)
	}

	got, err := pre.Decrypt(params, beaSec, transformed)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "payload", payload, got)
	assert.Equal(t, "string form", string(text), rk.String())
}

func TestReEncryptionKey_MarshalBinary(t *testing.T) {
	t.Parallel()

	_, alicePub, aliceSec := newKeyPair(t)

	rk := pre.ReKeyGen(aliceSec, alicePub)

	b, err := rk.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "encoded length", pre.ReEncryptionKeySize, len(b))

	var decoded pre.ReEncryptionKey
	if err := decoded.UnmarshalBinary(b); err != nil {
		t.Fatal(err)
	}

	rt, err := decoded.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "stable encoding", b, rt)
}

func TestReEncryptionKey_Secrecy(t *testing.T) {
	t.Parallel()

	params, _, aliceSec := newKeyPair(t)

	beaPub, beaSec, err := pre.KeyGen(params)
	if err != nil {
		t.Fatal(err)
	}

	carolPub, _, err := pre.KeyGen(params)
	if err != nil {
		t.Fatal(err)
	}

	toBea, err := pre.ReKeyGen(aliceSec, beaPub).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	toCarol, err := pre.ReKeyGen(aliceSec, carolPub).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(toBea, toCarol) {
		t.Error("re-encryption keys do not depend on the delegatee")
	}

	aliceBytes, err := aliceSec.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	beaBytes, err := beaSec.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Contains(toBea, aliceBytes) {
		t.Error("re-encryption key contains the delegator's secret key")
	}

	if bytes.Contains(toBea, beaBytes) {
		t.Error("re-encryption key contains the delegatee's secret key")
	}
}

func TestReEncryptionKey_UnmarshalInvalid(t *testing.T) {
	t.Parallel()

	var rk pre.ReEncryptionKey

	if err := rk.UnmarshalBinary(make([]byte, pre.ReEncryptionKeySize)); !errors.Is(err, pre.ErrInvalidElement) {
		t.Errorf("zero binary: expected ErrInvalidElement, got %v", err)
	}

	if err := rk.UnmarshalText([]byte("0OIl not base58")); !errors.Is(err, pre.ErrMalformedEnvelope) {
		t.Errorf("bad text: expected ErrMalformedEnvelope, got %v", err)
	}
}
