package wallet

import (
	"testing"

	"github.com/cnwallet/walletcore/chain"
	"github.com/cnwallet/walletcore/crypto"
)

func transferAt(height uint64, amount uint64, unlockTime uint64) TransferDetail {
	var ki crypto.KeyImage
	ki[0] = byte(height)
	ki[1] = byte(amount)
	ki[2] = byte(unlockTime)
	return TransferDetail{
		BlockHeight: height,
		Tx: chain.Transaction{
			Outs:       []chain.TxOut{{Amount: amount, TargetType: chain.TxOutToKey}},
			UnlockTime: unlockTime,
		},
		KeyImage: ki,
	}
}

func TestAddTransferPanicsOnDuplicateKeyImage(t *testing.T) {
	var genesis chain.Hash
	s := NewState(genesis)
	td := transferAt(0, 100, 0)
	s.addTransfer(td)

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic adding a duplicate key image")
		}
	}()
	s.addTransfer(td)
}

func TestMarkSpentFlipsFlagAndReportsFound(t *testing.T) {
	var genesis chain.Hash
	s := NewState(genesis)
	td := transferAt(0, 100, 0)
	s.addTransfer(td)

	spent, ok := s.markSpent(td.KeyImage)
	if !ok || !spent.Spent {
		t.Fatalf("expected transfer to be found and marked spent, got ok=%v spent=%+v", ok, spent)
	}

	var unknown crypto.KeyImage
	unknown[0] = 0xff
	if _, ok := s.markSpent(unknown); ok {
		t.Fatal("expected markSpent to report not-found for an unindexed key image")
	}
}

func TestIsSpendtimeUnlockedHeightInterpretation(t *testing.T) {
	var genesis chain.Hash
	s := NewState(genesis)
	for i := 0; i < 10; i++ {
		s.appendBlock(chain.Hash{byte(i + 1)})
	}
	// Height is now 10. A height-interpreted unlock_time just above
	// height+delta must not yet be unlocked; at or below it, it must be.
	if s.IsSpendtimeUnlocked(12, 0) {
		t.Fatal("expected unlock_time 12 to still be locked at height 10")
	}
	if !s.IsSpendtimeUnlocked(11, 0) {
		t.Fatal("expected unlock_time 11 to be unlocked at height 10 (height+delta=11)")
	}
}

func TestIsSpendtimeUnlockedUnixInterpretation(t *testing.T) {
	var genesis chain.Hash
	s := NewState(genesis)
	now := int64(BlockNumberThreshold + 1_000_000)
	unlockTime := uint64(now) + LockedDeltaSeconds
	if !s.IsSpendtimeUnlocked(unlockTime, now) {
		t.Fatal("expected unlock_time at now+delta to be unlocked")
	}
	if s.IsSpendtimeUnlocked(unlockTime+1, now) {
		t.Fatal("expected unlock_time one second past now+delta to still be locked")
	}
}

func TestIsSpendableRequiresAge(t *testing.T) {
	var genesis chain.Hash
	s := NewState(genesis)
	for i := 0; i < int(SpendableAge)-1; i++ {
		s.appendBlock(chain.Hash{byte(i + 1)})
	}
	td := transferAt(0, 100, 0)
	if s.IsSpendable(td, 0) {
		t.Fatal("expected a transfer younger than SpendableAge to be unspendable")
	}

	s.appendBlock(chain.Hash{99})
	if !s.IsSpendable(td, 0) {
		t.Fatal("expected the transfer to become spendable once SpendableAge confirmations have passed")
	}
}

func TestIsSpendableExcludesAlreadySpent(t *testing.T) {
	var genesis chain.Hash
	s := NewState(genesis)
	for i := 0; i < int(SpendableAge)+1; i++ {
		s.appendBlock(chain.Hash{byte(i + 1)})
	}
	td := transferAt(0, 100, 0)
	td.Spent = true
	if s.IsSpendable(td, 0) {
		t.Fatal("expected a spent transfer to never be spendable")
	}
}

func TestDetachBlockchainRemovesLaterTransfersAndPayments(t *testing.T) {
	var genesis chain.Hash
	s := NewState(genesis)
	for i := 0; i < 5; i++ {
		s.appendBlock(chain.Hash{byte(i + 1)})
	}

	keep := transferAt(1, 10, 0)
	drop := transferAt(3, 20, 0)
	s.addTransfer(keep)
	s.addTransfer(drop)

	var payID [32]byte
	payID[0] = 1
	s.indexPayment(payID, PaymentDetail{BlockHeight: 1})
	s.indexPayment(payID, PaymentDetail{BlockHeight: 3})

	s.detachBlockchain(3)

	if s.Height() != 2 {
		t.Fatalf("expected height 2 after detaching at 3, got %d", s.Height())
	}
	transfers := s.Transfers()
	if len(transfers) != 1 || transfers[0].KeyImage != keep.KeyImage {
		t.Fatalf("expected only the height-1 transfer to survive, got %+v", transfers)
	}
	if _, found := s.markSpent(drop.KeyImage); found {
		t.Fatal("expected the detached transfer's key image to be un-indexed")
	}

	payments := s.GetPayments(payID)
	if len(payments) != 1 || payments[0].BlockHeight != 1 {
		t.Fatalf("expected only the height-1 payment to survive, got %+v", payments)
	}
}

func TestDetachBlockchainLeavesUnconfirmedUntouched(t *testing.T) {
	var genesis chain.Hash
	s := NewState(genesis)
	s.appendBlock(chain.Hash{1})

	var txHash chain.Hash
	txHash[0] = 7
	s.addUnconfirmed(txHash, UnconfirmedTransferDetail{ChangeAmount: 50})

	s.detachBlockchain(1)

	if got := s.Balance(); got != 50 {
		t.Fatalf("expected unconfirmed change to survive a detach, got balance %d", got)
	}
}

func TestBalanceSumsUnspentAndUnconfirmedChange(t *testing.T) {
	var genesis chain.Hash
	s := NewState(genesis)
	s.addTransfer(transferAt(0, 100, 0))
	spentTD := transferAt(0, 999, 0)
	s.addTransfer(spentTD)
	s.markSpent(spentTD.KeyImage)

	var txHash chain.Hash
	txHash[0] = 1
	s.addUnconfirmed(txHash, UnconfirmedTransferDetail{ChangeAmount: 25})

	if got := s.Balance(); got != 125 {
		t.Fatalf("expected balance 100+25=125 excluding the spent output, got %d", got)
	}
}

func TestEvictUnconfirmedRemovesRecord(t *testing.T) {
	var genesis chain.Hash
	s := NewState(genesis)
	var txHash chain.Hash
	txHash[0] = 3
	s.addUnconfirmed(txHash, UnconfirmedTransferDetail{ChangeAmount: 10})
	s.evictUnconfirmed(txHash)
	if got := s.Balance(); got != 0 {
		t.Fatalf("expected balance 0 after evicting the only unconfirmed record, got %d", got)
	}
}

func TestTransferAtAndSetSpentAtStableIndices(t *testing.T) {
	var genesis chain.Hash
	s := NewState(genesis)
	s.addTransfer(transferAt(0, 100, 0))
	s.addTransfer(transferAt(1, 200, 0))

	td, ok := s.TransferAt(1)
	if !ok || td.Amount() != 200 {
		t.Fatalf("expected transfer 1 to be the 200-amount transfer, got %+v (ok=%v)", td, ok)
	}

	s.SetSpentAt(1, true)
	td, _ = s.TransferAt(1)
	if !td.Spent {
		t.Fatal("expected SetSpentAt to mark the transfer at index 1 as spent")
	}

	if _, ok := s.TransferAt(5); ok {
		t.Fatal("expected out-of-range TransferAt to report not-found")
	}
}

func TestSpendableTransfersSnapshotIsIndependent(t *testing.T) {
	var genesis chain.Hash
	s := NewState(genesis)
	for i := 0; i < int(SpendableAge)+1; i++ {
		s.appendBlock(chain.Hash{byte(i + 1)})
	}
	s.addTransfer(transferAt(0, 100, 0))

	snapshot := s.SpendableTransfers(0)
	if len(snapshot) != 1 {
		t.Fatalf("expected 1 spendable transfer, got %d", len(snapshot))
	}
	snapshot[0].Spent = true

	fresh := s.SpendableTransfers(0)
	if fresh[0].Spent {
		t.Fatal("mutating a snapshot must not affect the underlying state")
	}
}
