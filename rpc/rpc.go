// Package rpc implements the wallet core's only collaborator across a
// process boundary: the four node operations (getblocks, get_o_indexes,
// getrandom_outs, sendrawtransaction), plus the check_connection
// reconnect helper. It is grounded on modules/wallet's use of a
// modules.ConsensusSet/TransactionPool dependency-injected interface (the
// wallet never reaches into the consensus set's internals, only calls its
// exported methods) generalized to an HTTP+JSON node client, with a
// second binary transport using vmihailenco/msgpack/v5.
package rpc

import (
	"context"

	"github.com/cnwallet/walletcore/chain"
	"github.com/cnwallet/walletcore/crypto"
)

// Status is the daemon-level result code the wallet reacts to.
type Status string

const (
	StatusOK   Status = "OK"
	StatusBusy Status = "BUSY"
)

// GetBlocksRequest is the batched chain-pull request.
type GetBlocksRequest struct {
	ShortChainHistory []chain.Hash
	StartHeight       uint64
}

// GetBlocksResponse carries the blocks the node has past the caller's
// divergence point, or a resync point if the caller has forked away.
type GetBlocksResponse struct {
	StartHeight uint64
	Blocks      []chain.Block
	Status      Status
}

// GetOIndexesResponse carries the global output indices of one
// transaction's outputs.
type GetOIndexesResponse struct {
	OIndexes []uint64
	Status   Status
}

// RandomOutEntry is one candidate decoy output of a requested amount.
type RandomOutEntry struct {
	GlobalAmountIndex uint64
	OutKey            crypto.PublicKey
}

// RandomOutsForAmount groups the decoy candidates returned for one
// requested amount.
type RandomOutsForAmount struct {
	Amount uint64
	Outs   []RandomOutEntry
}

// GetRandomOutsResponse is the decoy-sampling response.
type GetRandomOutsResponse struct {
	Outs   []RandomOutsForAmount
	Status Status
}

// SendRawTransactionResponse is the relay response.
type SendRawTransactionResponse struct {
	Status Status
}

// Client is the interface the wallet core consumes; it is satisfied by
// both the JSON and the msgpack implementation in this package, and by any
// fake a test wants to substitute for the real transport.
type Client interface {
	GetBlocks(ctx context.Context, req GetBlocksRequest) (GetBlocksResponse, error)
	GetOIndexes(ctx context.Context, txid chain.Hash) (GetOIndexesResponse, error)
	GetRandomOuts(ctx context.Context, amounts []uint64, outsCount int) (GetRandomOutsResponse, error)
	SendRawTransaction(ctx context.Context, txHex string) (SendRawTransactionResponse, error)
	// CheckConnection points the client at the daemon's default port when
	// no daemon address is configured. It does not probe the daemon and
	// does not re-dial a configured address.
	CheckConnection(ctx context.Context) error
}

// DefaultDaemonPort is the fixed port check_connection falls back to when
// no explicit daemon base URL is configured.
const DefaultDaemonPort = 8080
