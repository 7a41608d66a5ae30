// Package wallet implements the wallet core: transfer state, output
// detection, the chain scanner, and the transaction builder, tied
// together by the Wallet type. It is grounded on the modules/wallet
// package (wallet.go's mutex-guarded long-lived Wallet object, update.go's
// diff-driven state mutation, transactionbuilder.go's input-selection/
// signing split), generalized from Sia's UnlockHash/SiacoinOutput model
// to CryptoNote's stealth-address/ring-signature model.
package wallet

import (
	"sort"
	"sync"

	"github.com/cnwallet/walletcore/account"
	"github.com/cnwallet/walletcore/chain"
	"github.com/cnwallet/walletcore/crypto"
	"github.com/mitchellh/copystructure"
)

// Dual-interpretation unlock-time constants. These must match
// the network's protocol exactly: changing them would silently change
// which outputs a wallet considers spendable.
const (
	// BlockNumberThreshold is the boundary below which unlock_time is a
	// block height and at or above which it is Unix seconds.
	BlockNumberThreshold = 500000000
	// LockedDeltaBlocks is the safety margin (in blocks) added when
	// unlock_time is interpreted as a height.
	LockedDeltaBlocks = 1
	// LockedDeltaSeconds is the safety margin (in seconds) added when
	// unlock_time is interpreted as Unix time.
	LockedDeltaSeconds = 60 * 10
	// SpendableAge is the number of confirmations an output needs before
	// it is eligible for spending.
	SpendableAge = 10
)

// TransferDetail is one owned output: block height, owning transaction,
// internal and global output index, spent flag, and key image.
type TransferDetail struct {
	BlockHeight         uint64
	Tx                  chain.Transaction
	InternalOutputIndex int
	GlobalOutputIndex   uint64
	Spent               bool
	KeyImage            crypto.KeyImage
}

// Amount returns the amount of the owned output this detail describes.
func (td TransferDetail) Amount() uint64 {
	return td.Tx.Outs[td.InternalOutputIndex].Amount
}

// PaymentDetail is one payment keyed by payment id.
type PaymentDetail struct {
	TxHash      chain.Hash
	Amount      uint64
	BlockHeight uint64
	UnlockTime  uint64
}

// UnconfirmedTransferDetail is a locally-submitted, not-yet-confirmed
// transaction.
type UnconfirmedTransferDetail struct {
	Tx           chain.Transaction
	ChangeAmount uint64
	SentTime     int64
}

// State is the transfer-state component (C5): the set of owned outputs,
// the key-image index, the payment multimap, the unconfirmed-send table,
// and the local view of the best chain. All mutation happens through its
// methods, which the caller (Wallet) serializes with a mutex.
type State struct {
	Blockchain  []chain.Hash
	transfers   []TransferDetail
	keyImages   map[crypto.KeyImage]int // index into transfers
	payments    map[[32]byte][]PaymentDetail
	unconfirmed map[chain.Hash]UnconfirmedTransferDetail

	mu sync.RWMutex
}

// NewState returns an empty state seeded with the deterministic genesis
// hash at height 0.
func NewState(genesis chain.Hash) *State {
	return &State{
		Blockchain:  []chain.Hash{genesis},
		keyImages:   make(map[crypto.KeyImage]int),
		payments:    make(map[[32]byte][]PaymentDetail),
		unconfirmed: make(map[chain.Hash]UnconfirmedTransferDetail),
	}
}

// Height returns the height of the local best chain (len(blockchain) - 1).
func (s *State) Height() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.Blockchain)) - 1
}

// addTransfer records a newly-detected owned output and indexes its key
// image. It panics, in every build, if the key image is already present, since that would mean the same output was
// detected twice — a detector or scanner bug, not a runtime condition
// callers can recover from.
func (s *State) addTransfer(td TransferDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.keyImages[td.KeyImage]; exists {
		panic("wallet: duplicate key image added to transfer state")
	}
	s.transfers = append(s.transfers, td)
	s.keyImages[td.KeyImage] = len(s.transfers) - 1
}

// markSpent flips the spent flag of the transfer owning keyImage and
// reports whether one was found.
func (s *State) markSpent(keyImage crypto.KeyImage) (TransferDetail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, exists := s.keyImages[keyImage]
	if !exists {
		return TransferDetail{}, false
	}
	s.transfers[idx].Spent = true
	return s.transfers[idx], true
}

// indexPayment adds a payment detail under its payment id.
func (s *State) indexPayment(id [32]byte, pd PaymentDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[id] = append(s.payments[id], pd)
}

// GetPayments returns every payment detail recorded under id, newest last.
func (s *State) GetPayments(id [32]byte) []PaymentDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]PaymentDetail, len(s.payments[id]))
	copy(out, s.payments[id])
	return out
}

// appendBlock appends hash to the local best chain at the next height.
func (s *State) appendBlock(hash chain.Hash) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Blockchain = append(s.Blockchain, hash)
}

// detachBlockchain implements detach_blockchain(h): removes
// every transfer (and its key-image entry) at height ≥ h, truncates the
// chain to height h-1 inclusive (len == h), and purges payments at height
// ≥ h. Unconfirmed transfers are untouched.
func (s *State) detachBlockchain(h uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cut := len(s.transfers)
	for i, td := range s.transfers {
		if td.BlockHeight >= h {
			cut = i
			break
		}
	}
	for _, td := range s.transfers[cut:] {
		delete(s.keyImages, td.KeyImage)
	}
	s.transfers = s.transfers[:cut]

	if h < uint64(len(s.Blockchain)) {
		s.Blockchain = s.Blockchain[:h]
	}

	for id, pds := range s.payments {
		kept := pds[:0:0]
		for _, pd := range pds {
			if pd.BlockHeight < h {
				kept = append(kept, pd)
			}
		}
		if len(kept) == 0 {
			delete(s.payments, id)
		} else {
			s.payments[id] = kept
		}
	}
}

// addUnconfirmed records a just-submitted transaction's pending state.
func (s *State) addUnconfirmed(txHash chain.Hash, u UnconfirmedTransferDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unconfirmed[txHash] = u
}

// evictUnconfirmed removes the unconfirmed record for txHash, if any, once
// the scanner has seen it confirmed on chain.
func (s *State) evictUnconfirmed(txHash chain.Hash) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.unconfirmed, txHash)
}

// IsSpendtimeUnlocked implements is_tx_spendtime_unlocked: the
// dual block-height/Unix-time interpretation of unlock_time.
func (s *State) IsSpendtimeUnlocked(unlockTime uint64, now int64) bool {
	height := s.Height()
	if unlockTime < BlockNumberThreshold {
		return height+LockedDeltaBlocks >= unlockTime
	}
	return uint64(now)+LockedDeltaSeconds >= unlockTime
}

// IsSpendable reports whether td is spendable: unspent, old enough, and
// unlock-time-elapsed.
func (s *State) IsSpendable(td TransferDetail, now int64) bool {
	if td.Spent {
		return false
	}
	if td.BlockHeight+SpendableAge > s.Height() {
		return false
	}
	return s.IsSpendtimeUnlocked(td.Tx.UnlockTime, now)
}

// SpendableTransfers returns a snapshot copy of every currently-spendable
// transfer, using mitchellh/copystructure so callers can freely mutate
// their copy without racing the scan loop.
func (s *State) SpendableTransfers(now int64) []TransferDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []TransferDetail
	for _, td := range s.transfers {
		if s.isSpendableLocked(td, now) {
			out = append(out, td)
		}
	}
	cloned, err := copystructure.Copy(out)
	if err != nil {
		// copystructure only fails on cyclic or unsupported types; a
		// slice of TransferDetail is neither.
		panic("wallet: failed to snapshot transfer state: " + err.Error())
	}
	return cloned.([]TransferDetail)
}

func (s *State) isSpendableLocked(td TransferDetail, now int64) bool {
	if td.Spent {
		return false
	}
	height := uint64(len(s.Blockchain)) - 1
	if td.BlockHeight+SpendableAge > height {
		return false
	}
	if td.Tx.UnlockTime < BlockNumberThreshold {
		return height+LockedDeltaBlocks >= td.Tx.UnlockTime
	}
	return uint64(now)+LockedDeltaSeconds >= td.Tx.UnlockTime
}

// Balance implements balance(): the sum of unspent
// transfer amounts plus the sum of unconfirmed change amounts.
func (s *State) Balance() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total uint64
	for _, td := range s.transfers {
		if !td.Spent {
			total += td.Amount()
		}
	}
	for _, u := range s.unconfirmed {
		total += u.ChangeAmount
	}
	return total
}

// Transfers returns a snapshot copy of every transfer detail, in scan
// order.
func (s *State) Transfers() []TransferDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]TransferDetail, len(s.transfers))
	copy(out, s.transfers)
	return out
}

// TransferAt returns the transfer at the given stable index, used by
// pending-tx bookkeeping to reference transfers without holding iterators
// across persistence boundaries.
func (s *State) TransferAt(i int) (TransferDetail, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.transfers) {
		return TransferDetail{}, false
	}
	return s.transfers[i], true
}

// SetSpentAt flips the spent flag of the transfer at stable index i,
// removing its key-image entry is not performed (spend, unlike detach,
// never un-indexes a key image).
func (s *State) SetSpentAt(i int, spent bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.transfers) {
		return
	}
	s.transfers[i].Spent = spent
}

// AccountAddress renders acc's public address, persisted alongside the
// snapshot so a wallet file can be identified without the keys file.
func AccountAddress(acc account.Account, network byte) account.Address {
	return acc.Address(network)
}

// sortByGlobalIndex is used by the decoy-interleaving step in the
// transaction builder.
func sortByGlobalIndex(entries []indexedKey) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].GlobalIndex < entries[j].GlobalIndex
	})
}

type indexedKey struct {
	GlobalIndex uint64
	Key         crypto.PublicKey
}
