package crypto

import (
	"bytes"
	"testing"

	"github.com/NebulousLabs/fastrand"
)

func TestChacha8RoundTrip(t *testing.T) {
	key, err := DeriveChacha8Key([]byte("correct horse battery staple"), []byte("salt-for-this-wallet"))
	if err != nil {
		t.Fatalf("derive key: %v", err)
	}
	var iv Chacha8IV
	fastrand.Read(iv[:])

	plaintext := []byte("the quick brown fox jumps over the lazy dog")
	ciphertext, err := key.EncryptBytes(iv, plaintext)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if bytes.Equal(ciphertext, plaintext) {
		t.Fatalf("ciphertext must not equal plaintext")
	}

	decrypted, err := key.DecryptBytes(iv, ciphertext)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Fatalf("round trip mismatch: got %q want %q", decrypted, plaintext)
	}
}

func TestDeriveChacha8KeyDeterministic(t *testing.T) {
	k1, err := DeriveChacha8Key([]byte("password"), []byte("salt"))
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	k2, err := DeriveChacha8Key([]byte("password"), []byte("salt"))
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if k1 != k2 {
		t.Fatalf("KDF must be deterministic for the same password+salt")
	}

	k3, err := DeriveChacha8Key([]byte("different"), []byte("salt"))
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if k1 == k3 {
		t.Fatalf("different passwords must not derive the same key")
	}
}
