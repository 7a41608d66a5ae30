// Package chain models the wire-level block and transaction shapes the
// wallet core scans and builds. It follows the same tagged-sum-type
// modeling the module's types package (types/transactions.go) uses for
// Sia's multi-condition UnlockHash transactions with tagged
// unlock-condition variants; a CryptoNote transaction is shaped
// differently (ring-signed key-image inputs, one-time stealth-key
// outputs, a free-form "extra" field), so polymorphic input/output
// variants (txin_v, txout_target_v) are modeled the same way, as tagged
// sum types.
package chain

import "github.com/cnwallet/walletcore/crypto"

// Hash identifies a block or a transaction by the Keccak-256 of its
// canonical serialization.
type Hash = crypto.Hash

// TxInType is the tag of a transaction input variant.
type TxInType byte

const (
	// TxInGen marks a miner/coinbase input, only valid as a transaction's
	// sole input in the first position of a block's miner transaction.
	TxInGen TxInType = iota
	// TxInToKey is the only input variant the wallet core accepts
	// outside of TxInGen.
	TxInToKey
)

// TxIn is a tagged-union transaction input.
type TxIn struct {
	Type TxInType

	// Gen fields (TxInGen).
	Height uint64

	// ToKey fields (TxInToKey).
	Amount        uint64
	KeyOffsets    []uint64 // relative (delta-encoded) global output offsets, wire form
	KeyImage      crypto.KeyImage
	RingSignature crypto.RingSignature
}

// TxOutTargetType is the tag of a transaction output target variant.
type TxOutTargetType byte

const (
	// TxOutToKey is the only output target variant the wallet core
	// accepts; any other variant is fatal when validating a transaction
	// the wallet is about to build, and skip-and-log when scanning one
	// built by someone else").
	TxOutToKey TxOutTargetType = iota
	TxOutUnsupported
)

// TxOut is one transaction output: an amount and a stealth target key.
type TxOut struct {
	Amount     uint64
	TargetType TxOutTargetType
	Key        crypto.PublicKey // the published one-time stealth key P
}

// Transaction is a CryptoNote-shaped transaction: ring-signed key-image
// inputs, stealth-key outputs, and a free-form "extra" byte field carrying
// the per-tx public key and an optional payment-id nonce.
type Transaction struct {
	Version    uint64
	UnlockTime uint64
	Ins        []TxIn
	Outs       []TxOut
	Extra      []byte
}

// Hash returns the Keccak-256 hash identifying this transaction, computed
// over its full serialization (including signatures). Callers that need
// the *prefix* hash used to produce/verify ring signatures must use
// PrefixHash instead.
func (tx Transaction) Hash() Hash {
	return crypto.HashBytes(Marshal(tx))
}

// PrefixHash returns the hash of everything in the transaction except the
// per-input ring signatures").
func (tx Transaction) PrefixHash() Hash {
	stripped := tx
	stripped.Ins = make([]TxIn, len(tx.Ins))
	for i, in := range tx.Ins {
		cp := in
		cp.RingSignature = nil
		stripped.Ins[i] = cp
	}
	return crypto.HashBytes(Marshal(stripped))
}

// IsMinerTransaction reports whether tx is a block's coinbase transaction
// (its sole input is TxInGen).
func (tx Transaction) IsMinerTransaction() bool {
	return len(tx.Ins) == 1 && tx.Ins[0].Type == TxInGen
}

// Block is one block of the scanned chain: a height-addressed miner
// transaction plus the regular transactions it includes, and the
// timestamp the scan-skip heuristic compares against the
// account's creation time.
type Block struct {
	Height    uint64
	Hash      Hash
	PrevHash  Hash
	Timestamp int64
	MinerTx   Transaction
	TxHashes  []Hash // hashes of the regular (non-miner) transactions included
	Txs       []Transaction
}
