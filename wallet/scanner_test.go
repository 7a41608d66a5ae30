package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/NebulousLabs/threadgroup"
	"github.com/cnwallet/walletcore/account"
	"github.com/cnwallet/walletcore/chain"
	"github.com/cnwallet/walletcore/crypto"
	"github.com/cnwallet/walletcore/rpc"
)

// fakeScanNode serves a fixed sequence of GetBlocks responses (one per
// call) and counts GetOIndexes calls per transaction hash, so tests can
// assert on the scanner's caching behavior.
type fakeScanNode struct {
	pulls        []rpc.GetBlocksResponse
	pullIdx      int
	oIndexCalls  map[chain.Hash]int
	oIndexByHash map[chain.Hash]rpc.GetOIndexesResponse
}

func (f *fakeScanNode) GetBlocks(ctx context.Context, req rpc.GetBlocksRequest) (rpc.GetBlocksResponse, error) {
	if f.pullIdx >= len(f.pulls) {
		return rpc.GetBlocksResponse{StartHeight: req.StartHeight}, nil
	}
	resp := f.pulls[f.pullIdx]
	f.pullIdx++
	return resp, nil
}

func (f *fakeScanNode) GetOIndexes(ctx context.Context, txid chain.Hash) (rpc.GetOIndexesResponse, error) {
	if f.oIndexCalls == nil {
		f.oIndexCalls = make(map[chain.Hash]int)
	}
	f.oIndexCalls[txid]++
	return f.oIndexByHash[txid], nil
}

func (f *fakeScanNode) GetRandomOuts(ctx context.Context, amounts []uint64, outsCount int) (rpc.GetRandomOutsResponse, error) {
	return rpc.GetRandomOutsResponse{}, nil
}

func (f *fakeScanNode) SendRawTransaction(ctx context.Context, txHex string) (rpc.SendRawTransactionResponse, error) {
	return rpc.SendRawTransactionResponse{}, nil
}

func (f *fakeScanNode) CheckConnection(ctx context.Context) error { return nil }

func ownedBlock(t *testing.T, acc account.Account, height uint64, prevHash chain.Hash, amount uint64) chain.Block {
	t.Helper()
	txSecret, txPublic := crypto.GenerateKeyPair()
	derivation, err := crypto.GenerateKeyDerivation(acc.Keys.ViewPublic, txSecret)
	if err != nil {
		t.Fatalf("derivation: %v", err)
	}
	stealthKey, err := crypto.DerivePublicKey(derivation, 0, acc.Keys.SpendPublic)
	if err != nil {
		t.Fatalf("derive pub: %v", err)
	}

	tx := chain.Transaction{
		Version: 1,
		Outs:    []chain.TxOut{{Amount: amount, TargetType: chain.TxOutToKey, Key: stealthKey}},
		Extra:   chain.BuildExtra(txPublic, nil),
	}
	minerTx := chain.Transaction{Version: 1, Ins: []chain.TxIn{{Type: chain.TxInGen}}}

	hash := chain.Hash{byte(height)}
	block := chain.Block{
		Height:    height,
		Hash:      hash,
		PrevHash:  prevHash,
		Timestamp: time.Now().Unix(),
		MinerTx:   minerTx,
		TxHashes:  []chain.Hash{tx.Hash()},
		Txs:       []chain.Transaction{tx},
	}
	return block
}

func TestScannerProcessesOwnedOutput(t *testing.T) {
	acc := account.CreateUnrecoverable(time.Now().Unix() - int64(skipWindow.Seconds()) - 1)
	var genesis chain.Hash
	state := NewState(genesis)

	block := ownedBlock(t, acc, 1, genesis, 777)
	node := &fakeScanNode{
		pulls: []rpc.GetBlocksResponse{
			{StartHeight: 1, Blocks: []chain.Block{block}},
		},
		oIndexByHash: map[chain.Hash]rpc.GetOIndexesResponse{
			block.Txs[0].Hash(): {OIndexes: []uint64{42}},
		},
	}

	var tg threadgroup.ThreadGroup
	sc := NewScanner(state, node, acc, Callbacks{}, &tg)
	if err := sc.Refresh(context.Background(), 1, nil); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if state.Balance() != 777 {
		t.Fatalf("expected balance 777, got %d", state.Balance())
	}
	transfers := state.Transfers()
	if len(transfers) != 1 || transfers[0].GlobalOutputIndex != 42 {
		t.Fatalf("expected one transfer with global index 42, got %+v", transfers)
	}
}

func TestScannerCachesOIndexesAcrossReprocessing(t *testing.T) {
	acc := account.CreateUnrecoverable(time.Now().Unix() - int64(skipWindow.Seconds()) - 1)
	var genesis chain.Hash
	state := NewState(genesis)

	block := ownedBlock(t, acc, 1, genesis, 500)
	txHash := block.Txs[0].Hash()
	node := &fakeScanNode{
		oIndexByHash: map[chain.Hash]rpc.GetOIndexesResponse{txHash: {OIndexes: []uint64{7}}},
	}

	var tg threadgroup.ThreadGroup
	sc := NewScanner(state, node, acc, Callbacks{}, &tg)

	if err := sc.processBlock(context.Background(), block); err != nil {
		t.Fatalf("processBlock 1: %v", err)
	}
	if err := sc.processBlock(context.Background(), block); err != nil {
		t.Fatalf("processBlock 2: %v", err)
	}

	if got := node.oIndexCalls[txHash]; got != 1 {
		t.Fatalf("expected GetOIndexes to be called once (served from cache after), got %d", got)
	}
}

func TestScannerDetachPurgesOIndexCache(t *testing.T) {
	acc := account.CreateUnrecoverable(time.Now().Unix() - int64(skipWindow.Seconds()) - 1)
	var genesis chain.Hash
	state := NewState(genesis)

	block := ownedBlock(t, acc, 1, genesis, 500)
	txHash := block.Txs[0].Hash()
	node := &fakeScanNode{
		oIndexByHash: map[chain.Hash]rpc.GetOIndexesResponse{txHash: {OIndexes: []uint64{7}}},
	}

	var tg threadgroup.ThreadGroup
	sc := NewScanner(state, node, acc, Callbacks{}, &tg)

	if err := sc.processBlock(context.Background(), block); err != nil {
		t.Fatalf("processBlock: %v", err)
	}
	sc.DetachBlockchain(1)
	if err := sc.processBlock(context.Background(), block); err != nil {
		t.Fatalf("processBlock after detach: %v", err)
	}

	if got := node.oIndexCalls[txHash]; got != 2 {
		t.Fatalf("expected the detach to force a second GetOIndexes call, got %d", got)
	}
}

func TestShortChainHistoryIncludesGenesisAndRecentDensely(t *testing.T) {
	var blockchain []chain.Hash
	for i := 0; i < 100; i++ {
		blockchain = append(blockchain, chain.Hash{byte(i), byte(i >> 8)})
	}

	history := shortChainHistory(blockchain)
	if history[0] != blockchain[99] {
		t.Fatalf("expected most recent hash first, got %x", history[0])
	}
	if history[len(history)-1] != blockchain[0] {
		t.Fatalf("expected genesis hash last, got %x", history[len(history)-1])
	}
}
