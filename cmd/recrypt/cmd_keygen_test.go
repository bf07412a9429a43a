package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codahale/gubbins/assert"

	"github.com/seitlab/recrypt/pkg/pre"
)

func TestKeygenOutputFile(t *testing.T) {
	t.Parallel()

	params, err := pre.Setup()
	if err != nil {
		t.Fatal(err)
	}

	j, err := json.Marshal(params)
	if err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(t.TempDir(), "keypair")
	cmd := keygenCmd{Params: string(j), Output: output}

	if err := cmd.Run(nil); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(output)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "file mode", os.FileMode(0600), info.Mode().Perm())

	b, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(string(b), "\n")

	assert.Equal(t, "line count", 2, len(lines))

	var pub pre.PublicKey
	if err := pub.UnmarshalText([]byte(lines[0])); err != nil {
		t.Errorf("error decoding public key: %v", err)
	}

	var sec pre.SecretKey
	if err := sec.UnmarshalText([]byte(lines[1])); err != nil {
		t.Errorf("error decoding secret key: %v", err)
	}
}
