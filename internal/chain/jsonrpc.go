package chain

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// RPCMetrics records metrics for JSON-RPC calls against the chain node.
type RPCMetrics interface {
	Observe(operation string, err error, started time.Time)
}

// TxOutcome is the observed commit result of one broadcast attempt. A
// non-zero Code is a normal, successfully delivered outcome carrying
// ledger-level failure detail; it is not a transport error.
type TxOutcome struct {
	Code      uint32
	RawLog    string
	Info      string
	GasWanted int64
	GasUsed   int64
	Data      []byte
	Hash      string
	Height    int64
}

// Succeeded reports whether the transaction executed without an
// on-chain failure.
func (o *TxOutcome) Succeeded() bool { return o.Code == 0 }

// commitClient speaks the Tendermint JSON-RPC protocol over HTTP.
// broadcast_tx_commit blocks server-side until the transaction is
// included in a block, so the HTTP timeout must cover a full commit.
type commitClient struct {
	endpoint string
	http     *http.Client
	metrics  RPCMetrics
}

func newCommitClient(endpoint string, timeout time.Duration, metrics RPCMetrics) *commitClient {
	return &commitClient{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		metrics:  metrics,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("json-rpc error %d: %s (%s)", e.Code, e.Message, e.Data)
}

type rpcResponse struct {
	Error  *rpcError       `json:"error"`
	Result json.RawMessage `json:"result"`
}

type txResult struct {
	Code      uint32 `json:"code"`
	Data      string `json:"data"`
	Log       string `json:"log"`
	Info      string `json:"info"`
	GasWanted string `json:"gas_wanted"`
	GasUsed   string `json:"gas_used"`
}

type broadcastCommitResult struct {
	CheckTx   txResult  `json:"check_tx"`
	DeliverTx *txResult `json:"deliver_tx"`
	// CometBFT 0.38 renamed deliver_tx to tx_result.
	TxResult *txResult `json:"tx_result"`
	Hash     string    `json:"hash"`
	Height   string    `json:"height"`
}

// BroadcastCommit submits a signed transaction and blocks until its
// commit result is known. A returned error is always transport or node
// level; ledger-level failure lives inside the TxOutcome.
func (c *commitClient) BroadcastCommit(ctx context.Context, txBytes []byte) (outcome *TxOutcome, err error) {
	const op = "broadcast_tx_commit"

	started := time.Now()
	defer func() {
		c.metrics.Observe(op, err, started)
	}()

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  op,
		Params:  map[string]string{"tx": base64.StdEncoding.EncodeToString(txBytes)},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &RemoteError{Op: op, Err: fmt.Errorf("unexpected http status %s", resp.Status)}
	}

	var envelope rpcResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &RemoteError{Op: op, Err: fmt.Errorf("malformed json-rpc response: %w", err)}
	}
	if envelope.Error != nil {
		return nil, &RemoteError{Op: op, Err: envelope.Error}
	}

	var result broadcastCommitResult
	if err := json.Unmarshal(envelope.Result, &result); err != nil {
		return nil, &RemoteError{Op: op, Err: fmt.Errorf("malformed broadcast result: %w", err)}
	}

	return result.outcome(), nil
}

func (r *broadcastCommitResult) outcome() *TxOutcome {
	delivered := r.DeliverTx
	if delivered == nil {
		delivered = r.TxResult
	}
	if delivered == nil {
		delivered = &txResult{}
	}

	// A mempool rejection never reaches delivery; its code and log are
	// the outcome then.
	source := delivered
	if r.CheckTx.Code != 0 {
		source = &r.CheckTx
	}

	// The data field is base64; malformed data degrades to an empty
	// payload, which downstream decoding treats as zero processed.
	data, err := base64.StdEncoding.DecodeString(source.Data)
	if err != nil {
		data = nil
	}

	return &TxOutcome{
		Code:      source.Code,
		RawLog:    source.Log,
		Info:      source.Info,
		GasWanted: parseInt64(source.GasWanted),
		GasUsed:   parseInt64(source.GasUsed),
		Data:      data,
		Hash:      r.Hash,
		Height:    parseInt64(r.Height),
	}
}

// Tendermint encodes 64-bit integers as JSON strings; absent or
// malformed values degrade to zero.
func parseInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
