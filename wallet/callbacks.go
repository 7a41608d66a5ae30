package wallet

import "github.com/cnwallet/walletcore/chain"

// Callbacks is the capability record the scanner invokes synchronously
//. Any nil field is treated as a no-op.
type Callbacks struct {
	OnNewBlock        func(height uint64, block chain.Block)
	OnMoneyReceived   func(height uint64, tx chain.Transaction, outIdx int)
	OnMoneySpent      func(height uint64, inTx chain.Transaction, outIdx int, spendTx chain.Transaction)
	OnSkipTransaction func(height uint64, tx chain.Transaction)
	// OnPendingTxCommitted is a supplemented callback (not in the original
	// four) fired when Wallet.Commit successfully relays a tx, so a
	// caller can react to its own sends the same way it reacts to
	// receiving money from someone else.
	OnPendingTxCommitted func(tx chain.Transaction, changeAmount uint64)
}

func (c Callbacks) newBlock(height uint64, block chain.Block) {
	if c.OnNewBlock != nil {
		c.OnNewBlock(height, block)
	}
}

func (c Callbacks) moneyReceived(height uint64, tx chain.Transaction, outIdx int) {
	if c.OnMoneyReceived != nil {
		c.OnMoneyReceived(height, tx, outIdx)
	}
}

func (c Callbacks) moneySpent(height uint64, inTx chain.Transaction, outIdx int, spendTx chain.Transaction) {
	if c.OnMoneySpent != nil {
		c.OnMoneySpent(height, inTx, outIdx, spendTx)
	}
}

func (c Callbacks) skipTransaction(height uint64, tx chain.Transaction) {
	if c.OnSkipTransaction != nil {
		c.OnSkipTransaction(height, tx)
	}
}

func (c Callbacks) pendingTxCommitted(tx chain.Transaction, changeAmount uint64) {
	if c.OnPendingTxCommitted != nil {
		c.OnPendingTxCommitted(tx, changeAmount)
	}
}
