package crypto

import "testing"

func TestStealthAddressRoundTrip(t *testing.T) {
	spendSecret, spendPublic := GenerateKeyPair()
	viewSecret, viewPublic := GenerateKeyPair()
	txSecret, txPublic := GenerateKeyPair()

	const outputIndex = 3

	// sender side: D = r * V, computed from the tx secret key and the
	// recipient's view public key.
	dSender, err := GenerateKeyDerivation(viewPublic, txSecret)
	if err != nil {
		t.Fatalf("sender derivation: %v", err)
	}
	stealthKey, err := DerivePublicKey(dSender, outputIndex, spendPublic)
	if err != nil {
		t.Fatalf("derive public key: %v", err)
	}

	// receiver side: D = a * R, computed from the account's view secret
	// key and the transaction's published public key.
	dReceiver, err := GenerateKeyDerivation(txPublic, viewSecret)
	if err != nil {
		t.Fatalf("receiver derivation: %v", err)
	}
	if dSender != dReceiver {
		t.Fatalf("shared secret mismatch: sender %x receiver %x", dSender, dReceiver)
	}

	recomputed, err := DerivePublicKey(dReceiver, outputIndex, spendPublic)
	if err != nil {
		t.Fatalf("receiver derive public key: %v", err)
	}
	if recomputed != stealthKey {
		t.Fatalf("stealth key mismatch: sender computed %x, receiver computed %x", stealthKey, recomputed)
	}

	ephSecret, err := DeriveSecretKey(dReceiver, outputIndex, spendSecret)
	if err != nil {
		t.Fatalf("derive secret key: %v", err)
	}
	if got := PublicFromSecret(ephSecret); got != stealthKey {
		t.Fatalf("ephemeral secret does not correspond to stealth key: got %x want %x", got, stealthKey)
	}
}

func TestDeriveKeyImageDeterministic(t *testing.T) {
	sk, pk := GenerateKeyPair()
	i1, err := DeriveKeyImage(sk, pk)
	if err != nil {
		t.Fatalf("derive key image: %v", err)
	}
	i2, err := DeriveKeyImage(sk, pk)
	if err != nil {
		t.Fatalf("derive key image: %v", err)
	}
	if i1 != i2 {
		t.Fatalf("key image derivation is not deterministic")
	}

	_, pk2 := GenerateKeyPair()
	i3, err := DeriveKeyImage(sk, pk2)
	if err != nil {
		t.Fatalf("derive key image: %v", err)
	}
	if i1 == i3 {
		t.Fatalf("key image must depend on the one-time public key")
	}
}
