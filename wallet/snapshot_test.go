package wallet

import (
	"path/filepath"
	"testing"

	"github.com/cnwallet/walletcore/account"
	"github.com/cnwallet/walletcore/chain"
	"github.com/cnwallet/walletcore/persist"
)

func populatedState(t *testing.T) *State {
	t.Helper()
	var genesis chain.Hash
	s := NewState(genesis)
	s.appendBlock(chain.Hash{1})
	s.appendBlock(chain.Hash{2})

	s.addTransfer(transferAt(1, 1000, 0))

	var txHash chain.Hash
	txHash[0] = 9
	s.addUnconfirmed(txHash, UnconfirmedTransferDetail{
		Tx:           chain.Transaction{Version: 1, Outs: []chain.TxOut{{Amount: 500, TargetType: chain.TxOutToKey}}},
		ChangeAmount: 123,
		SentTime:     1700000000,
	})

	var payID [32]byte
	payID[0] = 5
	s.indexPayment(payID, PaymentDetail{TxHash: txHash, Amount: 500, BlockHeight: 1, UnlockTime: 0})

	return s
}

func TestSaveLoadSnapshotRoundTrip(t *testing.T) {
	acc := account.CreateUnrecoverable(0)
	addr := acc.Address(7)
	state := populatedState(t)

	path := filepath.Join(t.TempDir(), "wallet.snapshot")
	if err := saveSnapshot(path, state, addr); err != nil {
		t.Fatalf("saveSnapshot: %v", err)
	}

	loaded, loadedAddr, err := loadSnapshot(path)
	if err != nil {
		t.Fatalf("loadSnapshot: %v", err)
	}

	if loadedAddr.String() != addr.String() {
		t.Fatalf("address mismatch: got %s want %s", loadedAddr, addr)
	}
	if loaded.Height() != state.Height() {
		t.Fatalf("height mismatch: got %d want %d", loaded.Height(), state.Height())
	}

	wantTransfers := state.Transfers()
	gotTransfers := loaded.Transfers()
	if len(gotTransfers) != len(wantTransfers) {
		t.Fatalf("transfer count mismatch: got %d want %d", len(gotTransfers), len(wantTransfers))
	}
	if gotTransfers[0].KeyImage != wantTransfers[0].KeyImage || gotTransfers[0].Amount() != wantTransfers[0].Amount() {
		t.Fatalf("transfer mismatch: got %+v want %+v", gotTransfers[0], wantTransfers[0])
	}

	if got := loaded.Balance(); got != state.Balance() {
		t.Fatalf("balance mismatch: got %d want %d", got, state.Balance())
	}

	var payID [32]byte
	payID[0] = 5
	payments := loaded.GetPayments(payID)
	if len(payments) != 1 || payments[0].Amount != 500 {
		t.Fatalf("expected the payment to round trip, got %+v", payments)
	}
}

// encodeSnapshot writes a snapshot at the given version, stopping after
// whichever sections that version carries (mirroring saveSnapshot, but
// parameterized so tests can produce older-version files directly instead
// of through saveSnapshot, which always writes the newest version).
func encodeSnapshot(t *testing.T, version uint32, state *State, addr account.Address) []byte {
	t.Helper()
	enc := persist.NewEncoder(version)

	blockchain := state.Blockchain
	enc.WriteUint64(uint64(len(blockchain)))
	for _, h := range blockchain {
		enc.WriteFixed(h[:])
	}

	transfers := state.Transfers()
	enc.WriteUint64(uint64(len(transfers)))
	for _, td := range transfers {
		writeTransferDetail(enc, td)
	}

	enc.WriteFixed([]byte{addr.Network})
	enc.WriteFixed(addr.SpendPublic[:])
	enc.WriteFixed(addr.ViewPublic[:])

	enc.WriteUint64(0) // key images: none, to keep the fixture minimal

	if version >= versionUnconfirmed {
		enc.WriteUint64(0)
	}
	if version >= versionPayments {
		enc.WriteUint64(0)
	}

	return enc.Bytes()
}

func TestLoadSnapshotRejectsTooOldVersion(t *testing.T) {
	var genesis chain.Hash
	state := NewState(genesis)
	acc := account.CreateUnrecoverable(0)

	raw := encodeSnapshot(t, versionTransfers-1, state, acc.Address(0))
	path := filepath.Join(t.TempDir(), "wallet.snapshot")
	if err := persist.AtomicWriteFile(path, raw); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, _, err := loadSnapshot(path); err == nil {
		t.Fatal("expected an error loading a snapshot version older than this build supports")
	}
}

func TestLoadSnapshotWithoutUnconfirmedOrPaymentsSections(t *testing.T) {
	acc := account.CreateUnrecoverable(0)
	addr := acc.Address(0)
	var genesis chain.Hash
	state := NewState(genesis)
	state.addTransfer(transferAt(0, 42, 0))

	raw := encodeSnapshot(t, versionTransfers, state, addr)
	path := filepath.Join(t.TempDir(), "wallet.snapshot")
	if err := persist.AtomicWriteFile(path, raw); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	loaded, loadedAddr, err := loadSnapshot(path)
	if err != nil {
		t.Fatalf("loadSnapshot on a v5 file: %v", err)
	}
	if loadedAddr.String() != addr.String() {
		t.Fatalf("address mismatch reading a v5 snapshot")
	}
	if got := loaded.Balance(); got != 42 {
		t.Fatalf("expected balance 42 from the one transfer, got %d", got)
	}
}
