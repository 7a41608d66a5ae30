package rpc

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/cnwallet/walletcore/chain"
	"github.com/cnwallet/walletcore/crypto"
	"github.com/cnwallet/walletcore/walleterrors"
)

// JSONClient is the default node client: each of the four operations is a
// POST of a JSON request body to a fixed path under baseURL. The
// underlying *http.Client is reused across calls.
type JSONClient struct {
	mu      sync.Mutex
	baseURL string
	http    *http.Client
}

// NewJSONClient returns a client talking to baseURL (e.g.
// "http://localhost:8080").
func NewJSONClient(baseURL string) *JSONClient {
	return &JSONClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *JSONClient) post(ctx context.Context, path string, req, resp interface{}) error {
	c.mu.Lock()
	baseURL := c.baseURL
	httpClient := c.http
	c.mu.Unlock()

	body, err := json.Marshal(req)
	if err != nil {
		return walleterrors.Wrap(walleterrors.DaemonError, "rpc.JSONClient", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, bytes.NewReader(body))
	if err != nil {
		return walleterrors.Wrap(walleterrors.NoConnectionToDaemon, "rpc.JSONClient", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := httpClient.Do(httpReq)
	if err != nil {
		return walleterrors.Wrap(walleterrors.NoConnectionToDaemon, "rpc.JSONClient", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return walleterrors.New(walleterrors.DaemonError, "rpc.JSONClient", fmt.Sprintf("http status %d", httpResp.StatusCode))
	}

	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return walleterrors.Wrap(walleterrors.DaemonError, "rpc.JSONClient", err)
	}
	return nil
}

type getBlocksWire struct {
	BlockIDs    []string `json:"block_ids"`
	StartHeight uint64   `json:"start_height"`
}

type blockWire struct {
	Height    uint64 `json:"height"`
	Hash      string `json:"hash"`
	PrevHash  string `json:"prev_hash"`
	Timestamp int64  `json:"timestamp"`
	// MinerTx and Txs are left as opaque placeholders: the node transport
	// format for full transaction bodies is out of scope; a real
	// deployment's transport layer decodes these into chain.Transaction.
}

type getBlocksRespWire struct {
	StartHeight uint64      `json:"start_height"`
	Blocks      []blockWire `json:"blocks"`
	Status      string      `json:"status"`
}

// GetBlocks implements the batched chain-pull operation.
func (c *JSONClient) GetBlocks(ctx context.Context, req GetBlocksRequest) (GetBlocksResponse, error) {
	wireReq := getBlocksWire{StartHeight: req.StartHeight}
	for _, h := range req.ShortChainHistory {
		wireReq.BlockIDs = append(wireReq.BlockIDs, hex.EncodeToString(h[:]))
	}

	var wireResp getBlocksRespWire
	if err := c.post(ctx, "/getblocks.bin", wireReq, &wireResp); err != nil {
		return GetBlocksResponse{}, err
	}

	resp := GetBlocksResponse{StartHeight: wireResp.StartHeight, Status: Status(wireResp.Status)}
	for _, b := range wireResp.Blocks {
		var h, prev chain.Hash
		if decoded, err := hex.DecodeString(b.Hash); err == nil {
			copy(h[:], decoded)
		}
		if decoded, err := hex.DecodeString(b.PrevHash); err == nil {
			copy(prev[:], decoded)
		}
		resp.Blocks = append(resp.Blocks, chain.Block{
			Height:    b.Height,
			Hash:      h,
			PrevHash:  prev,
			Timestamp: b.Timestamp,
		})
	}
	if resp.Status != StatusOK {
		return resp, walleterrors.New(walleterrors.GetBlocksError, "rpc.JSONClient.GetBlocks", string(resp.Status))
	}
	return resp, nil
}

type getOIndexesWire struct {
	TxID string `json:"txid"`
}

type getOIndexesRespWire struct {
	OIndexes []uint64 `json:"o_indexes"`
	Status   string   `json:"status"`
}

// GetOIndexes implements the per-tx global output index lookup.
func (c *JSONClient) GetOIndexes(ctx context.Context, txid chain.Hash) (GetOIndexesResponse, error) {
	var wireResp getOIndexesRespWire
	req := getOIndexesWire{TxID: hex.EncodeToString(txid[:])}
	if err := c.post(ctx, "/get_o_indexes.bin", req, &wireResp); err != nil {
		return GetOIndexesResponse{}, err
	}
	resp := GetOIndexesResponse{OIndexes: wireResp.OIndexes, Status: Status(wireResp.Status)}
	if resp.Status != StatusOK {
		return resp, walleterrors.New(walleterrors.DaemonError, "rpc.JSONClient.GetOIndexes", string(resp.Status))
	}
	return resp, nil
}

type getRandomOutsWire struct {
	Amounts   []uint64 `json:"amounts"`
	OutsCount int      `json:"outs_count"`
}

type randomOutEntryWire struct {
	GlobalAmountIndex uint64 `json:"global_amount_index"`
	OutKey            string `json:"out_key"`
}

type randomOutsForAmountWire struct {
	Amount uint64               `json:"amount"`
	Outs   []randomOutEntryWire `json:"outs"`
}

type getRandomOutsRespWire struct {
	Outs   []randomOutsForAmountWire `json:"outs"`
	Status string                    `json:"status"`
}

// GetRandomOuts implements decoy sampling.
func (c *JSONClient) GetRandomOuts(ctx context.Context, amounts []uint64, outsCount int) (GetRandomOutsResponse, error) {
	req := getRandomOutsWire{Amounts: amounts, OutsCount: outsCount}
	var wireResp getRandomOutsRespWire
	if err := c.post(ctx, "/getrandom_outs.bin", req, &wireResp); err != nil {
		return GetRandomOutsResponse{}, err
	}

	resp := GetRandomOutsResponse{Status: Status(wireResp.Status)}
	for _, group := range wireResp.Outs {
		g := RandomOutsForAmount{Amount: group.Amount}
		for _, o := range group.Outs {
			var key crypto.PublicKey
			if decoded, err := hex.DecodeString(o.OutKey); err == nil {
				copy(key[:], decoded)
			}
			g.Outs = append(g.Outs, RandomOutEntry{GlobalAmountIndex: o.GlobalAmountIndex, OutKey: key})
		}
		resp.Outs = append(resp.Outs, g)
	}
	if resp.Status != StatusOK {
		return resp, walleterrors.New(walleterrors.GetRandomOutsError, "rpc.JSONClient.GetRandomOuts", string(resp.Status))
	}
	return resp, nil
}

type sendRawTxWire struct {
	TxAsHex string `json:"tx_as_hex"`
}

type sendRawTxRespWire struct {
	Status string `json:"status"`
}

// SendRawTransaction implements transaction relay.
func (c *JSONClient) SendRawTransaction(ctx context.Context, txHex string) (SendRawTransactionResponse, error) {
	req := sendRawTxWire{TxAsHex: txHex}
	var wireResp sendRawTxRespWire
	if err := c.post(ctx, "/sendrawtransaction", req, &wireResp); err != nil {
		return SendRawTransactionResponse{}, err
	}
	resp := SendRawTransactionResponse{Status: Status(wireResp.Status)}
	switch resp.Status {
	case StatusOK:
		return resp, nil
	case StatusBusy:
		return resp, walleterrors.New(walleterrors.DaemonBusy, "rpc.JSONClient.SendRawTransaction", string(resp.Status))
	default:
		return resp, walleterrors.New(walleterrors.TxRejected, "rpc.JSONClient.SendRawTransaction", string(resp.Status))
	}
}

// CheckConnection sets baseURL to http://localhost:DefaultDaemonPort when
// it is empty. It sends no request to the daemon, and a non-empty baseURL
// is left as it is whether or not the daemon there is reachable; the
// underlying http.Client dials afresh on the next request.
func (c *JSONClient) CheckConnection(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.baseURL == "" {
		c.baseURL = fmt.Sprintf("http://localhost:%d", DefaultDaemonPort)
	}
	return nil
}
