package pre_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/mr-tron/base58"

	"github.com/seitlab/recrypt/pkg/pre"
)

func TestParamsJSONRoundTrip(t *testing.T) {
	t.Parallel()

	params, err := pre.Setup()
	if err != nil {
		t.Fatal(err)
	}

	j, err := json.Marshal(params)
	if err != nil {
		t.Fatal(err)
	}

	var decoded pre.Params
	if err := json.Unmarshal(j, &decoded); err != nil {
		t.Fatal(err)
	}

	// The decoded parameters must work, not merely parse.
	pub, sec, err := pre.KeyGen(&decoded)
	if err != nil {
		t.Fatal(err)
	}

	payload := []byte("parameters survive the trip")

	original, err := pre.Encrypt(&decoded, pub, payload)
	if err != nil {
		t.Fatal(err)
	}

	transformed, err := pre.ReEncrypt(&decoded, pre.ReKeyGen(sec, pub), original)
	if err != nil {
		t.Fatal(err)
	}

	got, err := pre.Decrypt(&decoded, sec, transformed)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "payload", payload, got)

	rt, err := json.Marshal(&decoded)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "stable encoding", j, rt)
}

func TestParamsJSONEnvelope(t *testing.T) {
	t.Parallel()

	params, err := pre.Setup()
	if err != nil {
		t.Fatal(err)
	}

	j, err := json.Marshal(params)
	if err != nil {
		t.Fatal(err)
	}

	var env map[string]string
	if err := json.Unmarshal(j, &env); err != nil {
		t.Fatal(err)
	}

	for _, field := range []string{"g1", "g2", "z"} {
		if env[field] == "" {
			t.Errorf("envelope is missing %q", field)
		}
	}
}

func TestParamsBinaryRoundTrip(t *testing.T) {
	t.Parallel()

	params, err := pre.Setup()
	if err != nil {
		t.Fatal(err)
	}

	b, err := params.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var decoded pre.Params
	if err := decoded.UnmarshalBinary(b); err != nil {
		t.Fatal(err)
	}

	rt, err := decoded.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "stable encoding", b, rt)
}

func TestParamsUnmarshalInvalid(t *testing.T) {
	t.Parallel()

	var params pre.Params

	if err := params.UnmarshalJSON([]byte(`{`)); !errors.Is(err, pre.ErrMalformedEnvelope) {
		t.Errorf("truncated JSON: expected ErrMalformedEnvelope, got %v", err)
	}

	if err := json.Unmarshal([]byte(`{"g1":"","g2":"","z":""}`), &params); !errors.Is(err, pre.ErrMalformedEnvelope) {
		t.Errorf("empty elements: expected ErrMalformedEnvelope, got %v", err)
	}

	short := base58.Encode(bytes.Repeat([]byte{0x2a}, 47))
	envelope := []byte(`{"g1":"` + short + `","g2":"` + short + `","z":"` + short + `"}`)

	if err := json.Unmarshal(envelope, &params); !errors.Is(err, pre.ErrInvalidElement) {
		t.Errorf("short elements: expected ErrInvalidElement, got %v", err)
	}

	if err := params.UnmarshalBinary([]byte("not cbor")); !errors.Is(err, pre.ErrMalformedEnvelope) {
		t.Errorf("garbage binary: expected ErrMalformedEnvelope, got %v", err)
	}
}
