package wallet

import (
	"context"
	"testing"
)

func newTestWallet(t *testing.T) *Wallet {
	t.Helper()
	node := &fakeNode{}
	w, err := New(node, t.TempDir(), 0, Callbacks{}, DustPolicy{Threshold: 10}, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestCreateAndUnlockThenClose(t *testing.T) {
	w := newTestWallet(t)
	if _, err := w.CreateAndUnlock([]byte("hunter2"), true); err != nil {
		t.Fatalf("CreateAndUnlock: %v", err)
	}

	if _, err := w.Address(); err != nil {
		t.Fatalf("Address: %v", err)
	}
	if balance, err := w.Balance(); err != nil || balance != 0 {
		t.Fatalf("expected zero balance on a fresh wallet, got %d (err=%v)", balance, err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOperationsRejectedWhenLocked(t *testing.T) {
	w := newTestWallet(t)
	defer w.Close()

	if _, err := w.Balance(); err != errLocked {
		t.Fatalf("expected errLocked, got %v", err)
	}
	if _, err := w.Address(); err != errLocked {
		t.Fatalf("expected errLocked, got %v", err)
	}
	if _, err := w.CreateTransactions(context.Background(), nil, 0, 0, 0, nil); err != errLocked {
		t.Fatalf("expected errLocked, got %v", err)
	}
}

func TestUnlockPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	node := &fakeNode{}

	w1, err := New(node, dir, 0, Callbacks{}, DustPolicy{Threshold: 10}, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := w1.CreateAndUnlock([]byte("hunter2"), true); err != nil {
		t.Fatalf("CreateAndUnlock: %v", err)
	}
	addr1, err := w1.Address()
	if err != nil {
		t.Fatalf("Address: %v", err)
	}
	if err := w1.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	w2, err := New(node, dir, 0, Callbacks{}, DustPolicy{Threshold: 10}, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w2.Close()
	if err := w2.Unlock([]byte("hunter2")); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	addr2, err := w2.Address()
	if err != nil {
		t.Fatalf("Address: %v", err)
	}
	if addr1.String() != addr2.String() {
		t.Fatalf("address changed across reopen: %s != %s", addr1, addr2)
	}
}

func TestRescanningFalseBeforeAndAfterRefresh(t *testing.T) {
	w := newTestWallet(t)
	defer w.Close()
	if _, err := w.CreateAndUnlock([]byte("hunter2"), false); err != nil {
		t.Fatalf("CreateAndUnlock: %v", err)
	}
	if w.Rescanning() {
		t.Fatal("expected no rescan in flight initially")
	}

	if err := w.Refresh(context.Background(), nil); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if w.Rescanning() {
		t.Fatal("expected scanLock released after Refresh returns")
	}
}
