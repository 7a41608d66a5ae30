package rpc

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/cnwallet/walletcore/chain"
	"github.com/cnwallet/walletcore/walleterrors"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackClient is the binary-transport sibling of JSONClient, used by deployments that prefer the more compact
// msgpack encoding over JSON for the same four operations. It implements
// the same Client interface and reuses the same request/response shapes —
// only the wire encoding differs.
type MsgpackClient struct {
	mu      sync.Mutex
	baseURL string
	http    *http.Client
}

// NewMsgpackClient returns a client talking to baseURL via msgpack bodies.
func NewMsgpackClient(baseURL string) *MsgpackClient {
	return &MsgpackClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *MsgpackClient) post(ctx context.Context, path string, req, resp interface{}) error {
	c.mu.Lock()
	baseURL := c.baseURL
	httpClient := c.http
	c.mu.Unlock()

	body, err := msgpack.Marshal(req)
	if err != nil {
		return walleterrors.Wrap(walleterrors.DaemonError, "rpc.MsgpackClient", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, bytes.NewReader(body))
	if err != nil {
		return walleterrors.Wrap(walleterrors.NoConnectionToDaemon, "rpc.MsgpackClient", err)
	}
	httpReq.Header.Set("Content-Type", "application/msgpack")

	httpResp, err := httpClient.Do(httpReq)
	if err != nil {
		return walleterrors.Wrap(walleterrors.NoConnectionToDaemon, "rpc.MsgpackClient", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return walleterrors.New(walleterrors.DaemonError, "rpc.MsgpackClient", fmt.Sprintf("http status %d", httpResp.StatusCode))
	}

	return msgpack.NewDecoder(httpResp.Body).Decode(resp)
}

// GetBlocks implements the batched chain-pull operation over msgpack.
func (c *MsgpackClient) GetBlocks(ctx context.Context, req GetBlocksRequest) (GetBlocksResponse, error) {
	var resp GetBlocksResponse
	if err := c.post(ctx, "/getblocks.bin", req, &resp); err != nil {
		return GetBlocksResponse{}, err
	}
	if resp.Status != StatusOK {
		return resp, walleterrors.New(walleterrors.GetBlocksError, "rpc.MsgpackClient.GetBlocks", string(resp.Status))
	}
	return resp, nil
}

// GetOIndexes implements the per-tx global output index lookup over msgpack.
func (c *MsgpackClient) GetOIndexes(ctx context.Context, txid chain.Hash) (GetOIndexesResponse, error) {
	var resp GetOIndexesResponse
	if err := c.post(ctx, "/get_o_indexes.bin", txid[:], &resp); err != nil {
		return GetOIndexesResponse{}, err
	}
	if resp.Status != StatusOK {
		return resp, walleterrors.New(walleterrors.DaemonError, "rpc.MsgpackClient.GetOIndexes", string(resp.Status))
	}
	return resp, nil
}

// GetRandomOuts implements decoy sampling over msgpack.
func (c *MsgpackClient) GetRandomOuts(ctx context.Context, amounts []uint64, outsCount int) (GetRandomOutsResponse, error) {
	req := struct {
		Amounts   []uint64
		OutsCount int
	}{amounts, outsCount}
	var resp GetRandomOutsResponse
	if err := c.post(ctx, "/getrandom_outs.bin", req, &resp); err != nil {
		return GetRandomOutsResponse{}, err
	}
	if resp.Status != StatusOK {
		return resp, walleterrors.New(walleterrors.GetRandomOutsError, "rpc.MsgpackClient.GetRandomOuts", string(resp.Status))
	}
	return resp, nil
}

// SendRawTransaction implements transaction relay over msgpack.
func (c *MsgpackClient) SendRawTransaction(ctx context.Context, txHex string) (SendRawTransactionResponse, error) {
	var resp SendRawTransactionResponse
	if err := c.post(ctx, "/sendrawtransaction", txHex, &resp); err != nil {
		return SendRawTransactionResponse{}, err
	}
	switch resp.Status {
	case StatusOK:
		return resp, nil
	case StatusBusy:
		return resp, walleterrors.New(walleterrors.DaemonBusy, "rpc.MsgpackClient.SendRawTransaction", string(resp.Status))
	default:
		return resp, walleterrors.New(walleterrors.TxRejected, "rpc.MsgpackClient.SendRawTransaction", string(resp.Status))
	}
}

// CheckConnection resets the client onto the fixed default port if it has
// no base URL configured.
func (c *MsgpackClient) CheckConnection(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.baseURL == "" {
		c.baseURL = fmt.Sprintf("http://localhost:%d", DefaultDaemonPort)
	}
	return nil
}
