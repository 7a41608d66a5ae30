package wallet

import (
	"context"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/NebulousLabs/threadgroup"
	"github.com/cnwallet/walletcore/account"
	"github.com/cnwallet/walletcore/chain"
	"github.com/cnwallet/walletcore/rpc"
	"github.com/cnwallet/walletcore/walleterrors"
)

// oIndexCacheSize bounds the scanner's global-output-index cache.
// Processing a transaction calls get_o_indexes once per owned-output
// transaction; caching the responses avoids asking the node for the same
// answer twice when a block is processed again without an intervening
// detach. DetachBlockchain empties the cache.
const oIndexCacheSize = 256

// maxPullRetries is the number of consecutive pull exceptions the scanner
// swallows before propagating the error.
const maxPullRetries = 3

// skipWindow is the margin before the account's creation time: blocks
// timestamped earlier than creation time minus skipWindow are skipped
// outright, blocks inside the margin are scanned.
const skipWindow = 24 * time.Hour

// Scanner is the chain-scanning and reorganization engine (C4). It owns no
// state of its own beyond its dependencies: the transfer State it mutates,
// the node client it pulls from, and the account whose outputs it
// recognizes.
type Scanner struct {
	state     *State
	node      rpc.Client
	account   account.Account
	callbacks Callbacks
	tg        *threadgroup.ThreadGroup

	oIndexCache *lru.Cache
}

// NewScanner builds a scanner over state using node as the remote
// collaborator.
func NewScanner(state *State, node rpc.Client, acc account.Account, callbacks Callbacks, tg *threadgroup.ThreadGroup) *Scanner {
	cache, _ := lru.New(oIndexCacheSize)
	return &Scanner{state: state, node: node, account: acc, callbacks: callbacks, tg: tg, oIndexCache: cache}
}

// ShortChainHistory builds the density-decaying block-hash list the node
// uses to find the wallet's divergence point: the most recent 10 hashes
// densely, then offset-doubling (20, 40, 80, ...) back through history,
// always including genesis.
func (sc *Scanner) ShortChainHistory() []chain.Hash {
	sc.state.mu.RLock()
	defer sc.state.mu.RUnlock()
	return shortChainHistory(sc.state.Blockchain)
}

func shortChainHistory(blockchain []chain.Hash) []chain.Hash {
	n := len(blockchain)
	if n == 0 {
		return nil
	}

	var hashes []chain.Hash
	seen := make(map[int]bool)
	add := func(idx int) {
		if idx < 0 || idx >= n || seen[idx] {
			return
		}
		seen[idx] = true
		hashes = append(hashes, blockchain[idx])
	}

	for i := 0; i < 10; i++ {
		add(n - 1 - i)
	}
	for step := 20; ; step *= 2 {
		idx := n - 1 - step
		if idx <= 0 {
			break
		}
		add(idx)
	}
	add(0) // genesis always included
	return hashes
}

// Refresh implements refresh(start_height): pulls
// blocks from the node until a pull returns zero new blocks, processing
// each one in order and handling fork detection as it goes. stopFlag, if
// non-nil, is polled at the top of each iteration so an outside caller can
// ask the loop to exit after its current block.
func (sc *Scanner) Refresh(ctx context.Context, startHeight uint64, stopFlag *StopFlag) error {
	if err := sc.tg.Add(); err != nil {
		return err
	}
	defer sc.tg.Done()

	height := startHeight
	retries := 0

	for {
		if stopFlag != nil && stopFlag.Stopped() {
			return nil
		}

		history := sc.ShortChainHistory()
		resp, err := sc.node.GetBlocks(ctx, rpc.GetBlocksRequest{
			ShortChainHistory: history,
			StartHeight:       height,
		})
		if err != nil {
			if kind, ok := walleterrors.Of(err); ok && kind == walleterrors.InternalError {
				return err
			}
			retries++
			if retries > maxPullRetries {
				return err
			}
			continue
		}
		retries = 0

		if len(resp.Blocks) == 0 {
			return nil
		}

		added := 0
		for _, block := range resp.Blocks {
			currentIndex := block.Height
			switch {
			case currentIndex >= uint64(len(sc.state.Blockchain)):
				if err := sc.processBlock(ctx, block); err != nil {
					return err
				}
				added++
			case block.Hash == sc.state.Blockchain[currentIndex]:
				continue
			default:
				if currentIndex == resp.StartHeight {
					return walleterrors.New(walleterrors.InternalError, "wallet.Scanner.Refresh",
						"node's answer disagrees with the short chain history at its own start height")
				}
				sc.DetachBlockchain(currentIndex)
				if err := sc.processBlock(ctx, block); err != nil {
					return err
				}
				added++
			}
		}
		if added == 0 {
			return nil
		}

		height = resp.StartHeight + uint64(len(resp.Blocks))
	}
}

// processBlock runs output detection and spend detection over one block's
// miner transaction and regular transactions, in inclusion order: no
// ordering is guaranteed across blocks, only within one block, in the
// order (miner_tx, then regular txs in inclusion order).
func (sc *Scanner) processBlock(ctx context.Context, block chain.Block) error {
	sc.callbacks.newBlock(block.Height, block)

	sc.appendOrOverwrite(block)

	if sc.skipBlock(block) {
		return nil
	}

	if err := sc.processTransaction(ctx, block, block.MinerTx); err != nil {
		return err
	}
	for _, tx := range block.Txs {
		if err := sc.processTransaction(ctx, block, tx); err != nil {
			return err
		}
	}
	return nil
}

func (sc *Scanner) skipBlock(block chain.Block) bool {
	cutoff := sc.account.CreationTimestamp - int64(skipWindow.Seconds())
	return block.Timestamp < cutoff
}

func (sc *Scanner) appendOrOverwrite(block chain.Block) {
	sc.state.mu.Lock()
	defer sc.state.mu.Unlock()
	if block.Height < uint64(len(sc.state.Blockchain)) {
		sc.state.Blockchain[block.Height] = block.Hash
		return
	}
	sc.state.Blockchain = append(sc.state.Blockchain, block.Hash)
}

func (sc *Scanner) processTransaction(ctx context.Context, block chain.Block, tx chain.Transaction) error {
	owned, received, err := DetectOwnedOutputs(sc.account, tx)
	if err != nil {
		sc.callbacks.skipTransaction(block.Height, tx)
	} else if len(owned) > 0 {
		resp, err := sc.getOIndexes(ctx, tx.Hash())
		if err != nil {
			return err
		}
		for _, oo := range owned {
			sc.state.mu.RLock()
			_, known := sc.state.keyImages[oo.KeyImage]
			sc.state.mu.RUnlock()
			if known {
				// Already recorded by an earlier pass over this block.
				continue
			}
			global := uint64(oo.Index)
			if oo.Index < len(resp.OIndexes) {
				global = resp.OIndexes[oo.Index]
			}
			sc.state.addTransfer(TransferDetail{
				BlockHeight:         block.Height,
				Tx:                  tx,
				InternalOutputIndex: oo.Index,
				GlobalOutputIndex:   global,
				KeyImage:            oo.KeyImage,
			})
			sc.callbacks.moneyReceived(block.Height, tx, oo.Index)
		}
	}

	var spent uint64
	for _, in := range tx.Ins {
		if in.Type != chain.TxInToKey {
			continue
		}
		if spentTransfer, ok := sc.state.markSpent(in.KeyImage); ok {
			spent += spentTransfer.Amount()
			sc.callbacks.moneySpent(block.Height, spentTransfer.Tx, spentTransfer.InternalOutputIndex, tx)
		}
	}

	sc.state.evictUnconfirmed(tx.Hash())

	// Only a net receipt (money_received > money_spent, e.g. change coming
	// back to this same wallet) is worth recording against the payment id;
	// a purely outgoing or pass-through transaction is not a payment to us.
	if net := int64(received) - int64(spent); net > 0 {
		if id, ok := chain.ExtractPaymentID(tx.Extra); ok {
			sc.state.indexPayment(id, PaymentDetail{
				TxHash:      tx.Hash(),
				Amount:      uint64(net),
				BlockHeight: block.Height,
				UnlockTime:  tx.UnlockTime,
			})
		}
	}

	return nil
}

// getOIndexes fetches the global output indexes for txHash, serving a
// cached answer when the scanner has already resolved it since the last
// DetachBlockchain.
func (sc *Scanner) getOIndexes(ctx context.Context, txHash chain.Hash) (rpc.GetOIndexesResponse, error) {
	if sc.oIndexCache != nil {
		if cached, ok := sc.oIndexCache.Get(txHash); ok {
			return cached.(rpc.GetOIndexesResponse), nil
		}
	}

	resp, err := sc.node.GetOIndexes(ctx, txHash)
	if err != nil {
		return rpc.GetOIndexesResponse{}, err
	}
	if sc.oIndexCache != nil {
		sc.oIndexCache.Add(txHash, resp)
	}
	return resp, nil
}

// DetachBlockchain implements detach_blockchain(h), exposed so
// callers driving a manual resync can invoke it directly.
func (sc *Scanner) DetachBlockchain(h uint64) {
	sc.state.detachBlockchain(h)
	if sc.oIndexCache != nil {
		// A detached output's global index can come back different on the
		// replacing fork; drop every cached answer rather than risk serving
		// a stale one.
		sc.oIndexCache.Purge()
	}
}

// StopFlag is a caller-visible flag that lets an outside agent ask the
// scan loop to exit after its current block.
type StopFlag struct {
	stopped atomic.Bool
}

// NewStopFlag returns a fresh, unset stop flag.
func NewStopFlag() *StopFlag {
	return &StopFlag{}
}

// Stop requests the scan loop exit at its next opportunity. Safe to call
// more than once.
func (f *StopFlag) Stop() { f.stopped.Store(true) }

// Stopped reports whether Stop has been called.
func (f *StopFlag) Stopped() bool { return f.stopped.Load() }
