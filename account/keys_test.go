package account

import "testing"

func TestCreateUnrecoverableHasIndependentKeys(t *testing.T) {
	acc := CreateUnrecoverable(1000)
	if acc.Keys.SpendSecret == acc.Keys.ViewSecret {
		t.Fatalf("unrecoverable account must not derive one key from the other")
	}
	if acc.CreationTimestamp != 1000 {
		t.Fatalf("expected creation timestamp 1000, got %d", acc.CreationTimestamp)
	}
}

func TestCreateRecoverableViewKeyDerivation(t *testing.T) {
	acc, seed := CreateRecoverable(1000)
	if seed != [32]byte(acc.Keys.SpendSecret) {
		t.Fatalf("seed must equal the spend secret key")
	}
	wantView, _ := deriveViewKeys(acc.Keys.SpendSecret)
	if wantView != acc.Keys.ViewSecret {
		t.Fatalf("view secret was not derived as reduce(Keccak(spend_secret))")
	}
}

func TestRecoverRoundTrip(t *testing.T) {
	original, seed := CreateRecoverable(1000)
	recovered := Recover(seed)

	if recovered.Keys != original.Keys {
		t.Fatalf("recover(seed) did not reproduce the original keys")
	}
	if recovered.CreationTimestamp != NetworkGenesisEpoch {
		t.Fatalf("recovered account must pin its creation timestamp to the network genesis epoch, got %d", recovered.CreationTimestamp)
	}
}

func TestGetSeedRecoverRoundTrip(t *testing.T) {
	original, _ := CreateRecoverable(1000)
	seed := original.GetSeed()
	recovered := Recover(seed)
	if recovered.Keys != original.Keys {
		t.Fatalf("recover(get_seed(A)) must equal A's keys")
	}
}
